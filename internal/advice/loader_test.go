package advice

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"go.uber.org/zap"

	"github.com/maumlab/maumlog/internal/sheet"
)

const testCSV = `type,subtype,text,criteria
intro,weekly,"{periodLabel} 기록이에요.",ALWAYS_MATCH
strength,thoughts,"좋은 생각이 많았어요.",goodThoughts > badThoughts
tip,maintainStrengths,"지금처럼 이어 가세요.",ALWAYS_MATCH
closing,default,"내일도 함께해요.",ALWAYS_MATCH
`

func TestConcurrentGenerateFetchesOnce(t *testing.T) {
	var fetches atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fetches.Add(1)
		_, _ = w.Write([]byte(testCSV))
	}))
	defer srv.Close()

	loader := NewLoader(sheet.NewClient(srv.Client()), srv.URL, zap.NewNop())
	engine := NewEngine(loader, zap.NewNop())

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			text := engine.Generate(context.Background(), testSummary(), "이번 주")
			if text == MsgDataUnavailable || text == MsgGenerationFailed {
				t.Errorf("unexpected fallback message: %q", text)
			}
		}()
	}
	wg.Wait()

	if got := fetches.Load(); got != 1 {
		t.Errorf("expected exactly 1 fetch, got %d", got)
	}
}

func TestLoaderCachesFailureUntilReload(t *testing.T) {
	var fetches atomic.Int32
	var fail atomic.Bool
	fail.Store(true)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fetches.Add(1)
		if fail.Load() {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(testCSV))
	}))
	defer srv.Close()

	loader := NewLoader(sheet.NewClient(srv.Client()), srv.URL, zap.NewNop())

	if _, err := loader.Records(context.Background()); err == nil {
		t.Fatal("expected the first load to fail")
	}
	// Failure is cached: no second fetch on re-read.
	if _, err := loader.Records(context.Background()); err == nil {
		t.Fatal("expected the cached failure to persist")
	}
	if got := fetches.Load(); got != 1 {
		t.Fatalf("expected 1 fetch before reload, got %d", got)
	}

	fail.Store(false)
	records, err := loader.Reload(context.Background())
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if len(records) != 4 {
		t.Errorf("expected 4 records after reload, got %d", len(records))
	}
	if !strings.Contains(records[0].Text, "{periodLabel}") {
		t.Errorf("unexpected first record text: %q", records[0].Text)
	}
}
