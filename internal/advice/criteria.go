package advice

import (
	"strconv"
	"strings"

	"github.com/maumlab/maumlog/internal/journal"
)

// AlwaysMatch is the criteria sentinel for records that apply
// unconditionally.
const AlwaysMatch = "ALWAYS_MATCH"

// Evaluate reports whether a criteria expression matches the summary.
// The expression language is three whitespace-separated tokens:
// <field> <operator> <number-or-field>. An empty expression or the
// AlwaysMatch sentinel matches everything. Malformed expressions never
// match and never produce an error; bad configuration degrades to "no
// match" rather than breaking advice generation.
func Evaluate(criteria string, sum *journal.Summary) bool {
	criteria = strings.TrimSpace(criteria)
	if criteria == "" || criteria == AlwaysMatch {
		return true
	}
	if sum == nil {
		return false
	}

	tokens := strings.Fields(criteria)
	if len(tokens) != 3 {
		return false
	}

	left, ok := sum.Field(tokens[0])
	if !ok {
		return false
	}

	right, ok := resolveOperand(tokens[2], sum)
	if !ok {
		return false
	}

	switch tokens[1] {
	case ">":
		return float64(left) > right
	case "<":
		return float64(left) < right
	case ">=":
		return float64(left) >= right
	case "<=":
		return float64(left) <= right
	case "==":
		return float64(left) == right
	default:
		return false
	}
}

// resolveOperand parses the right-hand operand as a numeric literal, or
// failing that as a summary field name.
func resolveOperand(token string, sum *journal.Summary) (float64, bool) {
	if n, err := strconv.ParseFloat(token, 64); err == nil {
		return n, true
	}
	if v, ok := sum.Field(token); ok {
		return float64(v), true
	}
	return 0, false
}
