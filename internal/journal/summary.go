// Package journal defines the core domain types for maumlog: the daily
// counter summary and the reporting period model.
package journal

// Counter field names. These form a closed set: every field a criteria
// expression or placeholder may reference must appear here.
const (
	FieldGoodThoughts   = "goodThoughts"
	FieldBadThoughts    = "badThoughts"
	FieldGoodActions    = "goodActions"
	FieldBadActions     = "badActions"
	FieldGoodWordsCount = "goodWordsCount"
	FieldBadWordsCount  = "badWordsCount"
	FieldHappyEvents    = "happyEvents"
	FieldToughEvents    = "toughEvents"
)

// fieldOrder is the canonical field ordering used for display and
// placeholder substitution.
var fieldOrder = []string{
	FieldGoodThoughts,
	FieldBadThoughts,
	FieldGoodActions,
	FieldBadActions,
	FieldGoodWordsCount,
	FieldBadWordsCount,
	FieldHappyEvents,
	FieldToughEvents,
}

// Summary is an immutable snapshot of the counters for one reporting
// period. Counts are non-negative.
type Summary struct {
	GoodThoughts   int `json:"goodThoughts"`
	BadThoughts    int `json:"badThoughts"`
	GoodActions    int `json:"goodActions"`
	BadActions     int `json:"badActions"`
	GoodWordsCount int `json:"goodWordsCount"`
	BadWordsCount  int `json:"badWordsCount"`
	HappyEvents    int `json:"happyEvents"`
	ToughEvents    int `json:"toughEvents"`
}

// fieldAccessors maps a field name to its accessor. Unknown names are
// rejected at this boundary rather than relying on dynamic lookup.
var fieldAccessors = map[string]func(*Summary) *int{
	FieldGoodThoughts:   func(s *Summary) *int { return &s.GoodThoughts },
	FieldBadThoughts:    func(s *Summary) *int { return &s.BadThoughts },
	FieldGoodActions:    func(s *Summary) *int { return &s.GoodActions },
	FieldBadActions:     func(s *Summary) *int { return &s.BadActions },
	FieldGoodWordsCount: func(s *Summary) *int { return &s.GoodWordsCount },
	FieldBadWordsCount:  func(s *Summary) *int { return &s.BadWordsCount },
	FieldHappyEvents:    func(s *Summary) *int { return &s.HappyEvents },
	FieldToughEvents:    func(s *Summary) *int { return &s.ToughEvents },
}

// FieldNames returns the counter field names in canonical order.
func FieldNames() []string {
	names := make([]string, len(fieldOrder))
	copy(names, fieldOrder)
	return names
}

// IsField reports whether name is a valid counter field name.
func IsField(name string) bool {
	_, ok := fieldAccessors[name]
	return ok
}

// Field returns the value of the named counter. The second return is
// false when the name is not a valid field.
func (s *Summary) Field(name string) (int, bool) {
	acc, ok := fieldAccessors[name]
	if !ok {
		return 0, false
	}
	return *acc(s), true
}

// SetField sets the named counter. It reports false (and changes
// nothing) for unknown names.
func (s *Summary) SetField(name string, value int) bool {
	acc, ok := fieldAccessors[name]
	if !ok {
		return false
	}
	if value < 0 {
		value = 0
	}
	*acc(s) = value
	return true
}

// AddField adds delta to the named counter, clamping at zero. It
// reports false for unknown names.
func (s *Summary) AddField(name string, delta int) bool {
	acc, ok := fieldAccessors[name]
	if !ok {
		return false
	}
	v := *acc(s) + delta
	if v < 0 {
		v = 0
	}
	*acc(s) = v
	return true
}

// Total returns the sum of all counters. A zero total means no activity
// was logged for the period.
func (s *Summary) Total() int {
	total := 0
	for _, name := range fieldOrder {
		v, _ := s.Field(name)
		total += v
	}
	return total
}

// Add returns a new Summary with the counters of both summaries summed.
func (s *Summary) Add(other *Summary) *Summary {
	out := &Summary{}
	for _, name := range fieldOrder {
		a, _ := s.Field(name)
		b, _ := other.Field(name)
		out.SetField(name, a+b)
	}
	return out
}
