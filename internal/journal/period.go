package journal

import (
	"fmt"
	"strings"
	"time"
)

// Period classifies a report range.
type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
)

// Label markers used to infer the period from a display label. Weekly is
// checked before monthly so that week labels containing a month-day date
// still classify as weekly. The monthly marker is "월간" (not bare "월")
// because daily labels like "8월 23일" also contain "월".
var (
	weekMarkers  = []string{"주", "week"}
	monthMarkers = []string{"월간", "month"}
)

// ParsePeriod converts a period name to a Period. Unknown names fall
// back to daily.
func ParsePeriod(name string) Period {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case string(PeriodWeekly), "week":
		return PeriodWeekly
	case string(PeriodMonthly), "month":
		return PeriodMonthly
	default:
		return PeriodDaily
	}
}

// PeriodFromLabel infers the period type from a human-readable period
// label. Callers formatting their own labels must include one of the
// marker substrings for weekly and monthly labels.
func PeriodFromLabel(label string) Period {
	for _, m := range weekMarkers {
		if strings.Contains(label, m) {
			return PeriodWeekly
		}
	}
	for _, m := range monthMarkers {
		if strings.Contains(label, m) {
			return PeriodMonthly
		}
	}
	return PeriodDaily
}

// Range returns the inclusive day range [from, to] covered by the
// period containing anchor. Weeks run Monday through Sunday; months are
// calendar months.
func (p Period) Range(anchor time.Time) (time.Time, time.Time) {
	day := time.Date(anchor.Year(), anchor.Month(), anchor.Day(), 0, 0, 0, 0, anchor.Location())
	switch p {
	case PeriodWeekly:
		offset := int(day.Weekday()) - int(time.Monday)
		if offset < 0 {
			offset += 7 // Sunday
		}
		from := day.AddDate(0, 0, -offset)
		return from, from.AddDate(0, 0, 6)
	case PeriodMonthly:
		from := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location())
		return from, from.AddDate(0, 1, -1)
	default:
		return day, day
	}
}

// Label formats the display label for the period containing anchor.
// Weekly and monthly labels carry the marker substrings PeriodFromLabel
// looks for.
func (p Period) Label(anchor time.Time) string {
	switch p {
	case PeriodWeekly:
		from, to := p.Range(anchor)
		return fmt.Sprintf("%d월 %d일 ~ %d월 %d일 주간",
			int(from.Month()), from.Day(), int(to.Month()), to.Day())
	case PeriodMonthly:
		return fmt.Sprintf("%d년 %d월 월간", anchor.Year(), int(anchor.Month()))
	default:
		return fmt.Sprintf("%d월 %d일", int(anchor.Month()), anchor.Day())
	}
}
