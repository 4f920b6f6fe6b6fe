package advice

import (
	"context"

	"go.uber.org/zap"

	"github.com/maumlab/maumlog/internal/sheet"
)

// Loader caches the advice dataset for the life of the process. The
// first call fetches the published sheet; concurrent callers share the
// in-flight fetch. A failed fetch is cached as failed and only retried
// through Reload.
type Loader struct {
	cache *sheet.Cache[[]Record]
	log   *zap.Logger
}

// NewLoader creates a loader that fetches the advice sheet at url with
// the given client.
func NewLoader(client *sheet.Client, url string, log *zap.Logger) *Loader {
	if log == nil {
		log = zap.NewNop()
	}
	l := &Loader{log: log}
	l.cache = sheet.NewCache(func(ctx context.Context) ([]Record, error) {
		rows, err := client.FetchRows(ctx, url)
		if err != nil {
			l.log.Warn("fetching advice dataset", zap.String("url", url), zap.Error(err))
			return nil, err
		}
		records := RecordsFromRows(rows)
		l.log.Info("advice dataset loaded",
			zap.Int("rows", len(rows)),
			zap.Int("records", len(records)))
		return records, nil
	})
	return l
}

// Records returns the cached dataset, loading it on first use.
func (l *Loader) Records(ctx context.Context) ([]Record, error) {
	return l.cache.EnsureLoaded(ctx)
}

// Reload refetches the dataset, replacing the cached result. This is
// the explicit recovery path after a failed or stale load.
func (l *Loader) Reload(ctx context.Context) ([]Record, error) {
	return l.cache.Reload(ctx)
}
