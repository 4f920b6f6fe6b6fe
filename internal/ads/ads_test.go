package ads

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"go.uber.org/zap"

	"github.com/maumlab/maumlog/internal/sheet"
)

const bannersCSV = `title,image,link
"마음 일기장","https://cdn.example.com/diary.png","https://shop.example.com/diary"
"감정 카드","https://cdn.example.com/cards.png","https://shop.example.com/cards"
`

func newTestRotation(t *testing.T, body string, status int) (*Rotation, *atomic.Int32) {
	t.Helper()
	var fetches atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fetches.Add(1)
		if status != http.StatusOK {
			w.WriteHeader(status)
			return
		}
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return NewRotation(sheet.NewClient(srv.Client()), srv.URL, zap.NewNop()), &fetches
}

func TestBannersFromRows(t *testing.T) {
	rows := [][]string{
		{"title", "img", "link"},
		{"", "img", "link"},  // no title: dropped
		{"title only", "im"}, // short row: dropped
	}
	banners := BannersFromRows(rows)
	if len(banners) != 1 {
		t.Fatalf("expected 1 banner, got %d", len(banners))
	}
	if banners[0].ImageURL != "img" {
		t.Errorf("unexpected banner: %+v", banners[0])
	}
}

func TestRotationRoundRobin(t *testing.T) {
	rotation, fetches := newTestRotation(t, bannersCSV, http.StatusOK)

	first := rotation.Next(context.Background())
	second := rotation.Next(context.Background())
	third := rotation.Next(context.Background())

	if first == nil || second == nil || third == nil {
		t.Fatal("expected banners from a loaded rotation")
	}
	if first.Title != "마음 일기장" || second.Title != "감정 카드" {
		t.Errorf("unexpected rotation order: %q, %q", first.Title, second.Title)
	}
	if third.Title != first.Title {
		t.Errorf("expected the rotation to wrap, got %q", third.Title)
	}
	if got := fetches.Load(); got != 1 {
		t.Errorf("expected 1 fetch, got %d", got)
	}
}

func TestRotationFailedLoadReturnsNil(t *testing.T) {
	rotation, fetches := newTestRotation(t, "", http.StatusInternalServerError)

	if rotation.Next(context.Background()) != nil {
		t.Error("expected nil banner after a failed load")
	}
	// The failure is cached; no retry on the next request.
	if rotation.Next(context.Background()) != nil {
		t.Error("expected nil banner from the cached failure")
	}
	if got := fetches.Load(); got != 1 {
		t.Errorf("expected 1 fetch, got %d", got)
	}
}

func TestRotationEmptySheetReturnsNil(t *testing.T) {
	rotation, _ := newTestRotation(t, "title,image,link\n", http.StatusOK)
	if rotation.Next(context.Background()) != nil {
		t.Error("expected nil banner for an empty sheet")
	}
}
