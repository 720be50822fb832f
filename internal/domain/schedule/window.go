package schedule

import "time"

// Window selector names understood by ResolveWindow. Anything else,
// including the empty string, falls back to SelectorToday; an unknown
// selector is never an error.
const (
	SelectorToday    = "today"
	SelectorUpcoming = "upcoming"
	SelectorWeek     = "week"
	SelectorRange    = "range"
)

// Window is a concrete, inclusive calendar-day range. Start and End are
// midnight-anchored in the resolving location.
type Window struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// ResolveWindow maps a named or explicit selector onto a concrete
// inclusive day range, evaluated against now's calendar date in now's
// location:
//
//	today    -> [D, D]
//	upcoming -> [D, D+7]
//	week     -> [Monday of D's week, Sunday of D's week]
//	range    -> [start, end], end defaulting to start when nil
//
// A "range" selector without an explicit start degrades to today, as does
// any unrecognized selector.
func ResolveWindow(selector string, start, end *time.Time, now time.Time) Window {
	day := truncateToDay(now)

	switch selector {
	case SelectorUpcoming:
		return Window{Start: day, End: day.AddDate(0, 0, 7)}
	case SelectorWeek:
		monday := day.AddDate(0, 0, -mondayOffset(day.Weekday()))
		return Window{Start: monday, End: monday.AddDate(0, 0, 6)}
	case SelectorRange:
		if start == nil {
			return Window{Start: day, End: day}
		}
		from := truncateToDay(*start)
		to := from
		if end != nil {
			to = truncateToDay(*end)
		}
		return Window{Start: from, End: to}
	default:
		return Window{Start: day, End: day}
	}
}

// Days returns every calendar day of the window in ascending order. An
// inverted window yields nothing.
func (w Window) Days() []time.Time {
	var days []time.Time
	for d := w.Start; !d.After(w.End); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}

	return days
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func mondayOffset(weekday time.Weekday) int {
	if weekday == time.Sunday {
		return 6
	}

	return int(weekday) - 1
}
