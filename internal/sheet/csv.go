// Package sheet fetches and caches tabular datasets published as CSV,
// the spreadsheet-as-database mechanism behind advice and ad records.
package sheet

import "strings"

// ParseRows parses published-CSV text into rows of fields. The dialect
// is deliberately narrow: the first row is a header and is discarded,
// blank lines are skipped, fields may be wrapped in one layer of double
// quotes (commas inside quotes are preserved), and embedded escaped
// quotes are not supported.
func ParseRows(data string) [][]string {
	lines := strings.Split(strings.ReplaceAll(data, "\r\n", "\n"), "\n")

	var rows [][]string
	header := true
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if header {
			header = false
			continue
		}
		rows = append(rows, splitLine(line))
	}
	return rows
}

// splitLine splits one CSV line on commas outside double quotes and
// strips a single layer of surrounding quotes per field.
func splitLine(line string) []string {
	var fields []string
	var buf strings.Builder
	inQuotes := false

	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
			buf.WriteRune(r)
		case r == ',' && !inQuotes:
			fields = append(fields, unquote(buf.String()))
			buf.Reset()
		default:
			buf.WriteRune(r)
		}
	}
	fields = append(fields, unquote(buf.String()))
	return fields
}

// unquote trims whitespace and removes one layer of surrounding double
// quotes, if present.
func unquote(field string) string {
	field = strings.TrimSpace(field)
	if len(field) >= 2 && field[0] == '"' && field[len(field)-1] == '"' {
		field = field[1 : len(field)-1]
	}
	return field
}
