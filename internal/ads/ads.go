// Package ads serves the rotating ad banner sourced from the same
// published-sheet mechanism as the advice dataset.
package ads

import (
	"context"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/maumlab/maumlog/internal/sheet"
)

// Banner is one configured ad row.
type Banner struct {
	Title    string `json:"title"`
	ImageURL string `json:"imageUrl"`
	LinkURL  string `json:"linkUrl"`
}

// BannersFromRows converts parsed sheet rows (columns: title, image,
// link) into banners. Short rows and rows without a title are dropped.
func BannersFromRows(rows [][]string) []Banner {
	var banners []Banner
	for _, row := range rows {
		if len(row) < 3 || row[0] == "" {
			continue
		}
		banners = append(banners, Banner{Title: row[0], ImageURL: row[1], LinkURL: row[2]})
	}
	return banners
}

// Rotation serves banners round-robin from the lazily loaded set. The
// load failure policy matches the advice loader: a failed fetch is
// cached and only retried through Reload.
type Rotation struct {
	cache *sheet.Cache[[]Banner]
	log   *zap.Logger
	next  atomic.Uint64
}

// NewRotation creates a banner rotation over the ad sheet at url.
func NewRotation(client *sheet.Client, url string, log *zap.Logger) *Rotation {
	if log == nil {
		log = zap.NewNop()
	}
	r := &Rotation{log: log}
	r.cache = sheet.NewCache(func(ctx context.Context) ([]Banner, error) {
		rows, err := client.FetchRows(ctx, url)
		if err != nil {
			r.log.Warn("fetching ad banners", zap.String("url", url), zap.Error(err))
			return nil, err
		}
		banners := BannersFromRows(rows)
		r.log.Info("ad banners loaded", zap.Int("banners", len(banners)))
		return banners, nil
	})
	return r
}

// Next returns the next banner in rotation, or nil when the set is
// empty or failed to load.
func (r *Rotation) Next(ctx context.Context) *Banner {
	banners, err := r.cache.EnsureLoaded(ctx)
	if err != nil || len(banners) == 0 {
		return nil
	}
	idx := int((r.next.Add(1) - 1) % uint64(len(banners)))
	return &banners[idx]
}

// Reload refetches the banner set.
func (r *Rotation) Reload(ctx context.Context) error {
	_, err := r.cache.Reload(ctx)
	return err
}
