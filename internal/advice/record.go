// Package advice implements the coaching advice engine: criteria
// matching over journal summaries, record selection, and message
// composition from an externally configured dataset.
package advice

// Record roles. Type partitions the dataset into the sections of a
// composed advice message.
const (
	TypeIntro    = "intro"
	TypeStrength = "strength"
	TypeGrowth   = "growth"
	TypeTip      = "tip"
	TypeClosing  = "closing"
)

// Well-known subtypes referenced by the composition pipeline.
const (
	SubtypeDefault           = "default"
	SubtypeBalance           = "balance"
	SubtypeMaintainStrengths = "maintainStrengths"
)

// Record is one configured advice row: the text to show, its role, and
// the criteria under which it applies. Records are immutable once
// loaded.
type Record struct {
	Type     string `json:"type"`
	Subtype  string `json:"subtype"`
	Text     string `json:"text"`
	Criteria string `json:"criteria"`
}

// RecordsFromRows converts parsed sheet rows (columns: type, subtype,
// text, criteria) into records. Rows missing any of the four columns or
// with an empty type, subtype, or text are dropped; an empty criteria
// column is kept and treated as always matching.
func RecordsFromRows(rows [][]string) []Record {
	var records []Record
	for _, row := range rows {
		if len(row) < 4 {
			continue
		}
		r := Record{Type: row[0], Subtype: row[1], Text: row[2], Criteria: row[3]}
		if r.Type == "" || r.Subtype == "" || r.Text == "" {
			continue
		}
		records = append(records, r)
	}
	return records
}
