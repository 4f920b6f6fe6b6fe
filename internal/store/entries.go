package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/maumlab/maumlog/internal/journal"
)

// DayFormat is the key format for daily_logs rows.
const DayFormat = "2006-01-02"

// fieldColumns maps counter field names to their daily_logs columns.
// Field names come from user input, so column names are resolved here
// rather than interpolated.
var fieldColumns = map[string]string{
	journal.FieldGoodThoughts:   "good_thoughts",
	journal.FieldBadThoughts:    "bad_thoughts",
	journal.FieldGoodActions:    "good_actions",
	journal.FieldBadActions:     "bad_actions",
	journal.FieldGoodWordsCount: "good_words_count",
	journal.FieldBadWordsCount:  "bad_words_count",
	journal.FieldHappyEvents:    "happy_events",
	journal.FieldToughEvents:    "tough_events",
}

const allColumns = `good_thoughts, bad_thoughts, good_actions, bad_actions,
	good_words_count, bad_words_count, happy_events, tough_events`

// AddDelta adjusts one counter for the given day, creating the row if
// needed. Counters are clamped at zero.
func (db *DB) AddDelta(day, field string, delta int) error {
	column, ok := fieldColumns[field]
	if !ok {
		return fmt.Errorf("unknown counter field %q", field)
	}

	// The raw delta is bound twice: excluded.<col> would carry the
	// already-clamped insert value, turning decrements into no-ops.
	now := time.Now().UTC().Format(time.RFC3339)
	query := fmt.Sprintf(`
		INSERT INTO daily_logs (day, %s, updated_at)
		VALUES (?, MAX(0, ?), ?)
		ON CONFLICT(day) DO UPDATE SET
			%s = MAX(0, %s + ?),
			updated_at = excluded.updated_at`,
		column, column, column)

	_, err := db.conn.Exec(query, day, delta, now, delta)
	return err
}

// GetDay returns the logged counters for one day. A day with no row
// returns a zero summary.
func (db *DB) GetDay(day string) (*journal.Summary, error) {
	query := fmt.Sprintf("SELECT %s FROM daily_logs WHERE day = ?", allColumns)
	sum, err := scanSummary(db.conn.QueryRow(query, day))
	if err == sql.ErrNoRows {
		return &journal.Summary{}, nil
	}
	if err != nil {
		return nil, err
	}
	return sum, nil
}

// SumRange aggregates the counters over the inclusive day range
// [from, to]. Days without rows contribute zero.
func (db *DB) SumRange(from, to string) (*journal.Summary, error) {
	query := `SELECT
		COALESCE(SUM(good_thoughts), 0),
		COALESCE(SUM(bad_thoughts), 0),
		COALESCE(SUM(good_actions), 0),
		COALESCE(SUM(bad_actions), 0),
		COALESCE(SUM(good_words_count), 0),
		COALESCE(SUM(bad_words_count), 0),
		COALESCE(SUM(happy_events), 0),
		COALESCE(SUM(tough_events), 0)
	FROM daily_logs WHERE day >= ? AND day <= ?`

	return scanSummary(db.conn.QueryRow(query, from, to))
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanSummary(row scanner) (*journal.Summary, error) {
	var s journal.Summary
	err := row.Scan(
		&s.GoodThoughts, &s.BadThoughts,
		&s.GoodActions, &s.BadActions,
		&s.GoodWordsCount, &s.BadWordsCount,
		&s.HappyEvents, &s.ToughEvents,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
