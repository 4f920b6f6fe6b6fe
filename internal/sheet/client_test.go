package sheet

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFetchRows(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("type,subtype,text,criteria\nintro,daily,오늘의 기록,ALWAYS_MATCH\n"))
	}))
	defer srv.Close()

	rows, err := NewClient(srv.Client()).FetchRows(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("FetchRows: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0][0] != "intro" || rows[0][2] != "오늘의 기록" {
		t.Errorf("unexpected row: %v", rows[0])
	}
}

func TestFetchRowsNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	if _, err := NewClient(srv.Client()).FetchRows(context.Background(), srv.URL); err == nil {
		t.Fatal("expected an error for a non-2xx response")
	}
}

func TestFetchRowsBadURL(t *testing.T) {
	if _, err := NewClient(nil).FetchRows(context.Background(), "http://127.0.0.1:0/nope"); err == nil {
		t.Fatal("expected an error for an unreachable URL")
	}
}
