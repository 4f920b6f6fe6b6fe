// Package report aggregates stored daily logs into period reports.
package report

import (
	"time"

	"github.com/maumlab/maumlog/internal/journal"
	"github.com/maumlab/maumlog/internal/store"
)

// Report is the aggregated view of one reporting period.
type Report struct {
	Period  journal.Period   `json:"period"`
	Label   string           `json:"label"`
	From    string           `json:"from"`
	To      string           `json:"to"`
	Summary *journal.Summary `json:"summary"`
}

// Build resolves the period range containing anchor and sums the stored
// logs over it.
func Build(db *store.DB, period journal.Period, anchor time.Time) (*Report, error) {
	from, to := period.Range(anchor)
	fromKey := from.Format(store.DayFormat)
	toKey := to.Format(store.DayFormat)

	sum, err := db.SumRange(fromKey, toKey)
	if err != nil {
		return nil, err
	}

	return &Report{
		Period:  period,
		Label:   period.Label(anchor),
		From:    fromKey,
		To:      toKey,
		Summary: sum,
	}, nil
}
