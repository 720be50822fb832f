package schedule

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestResolveWindow(t *testing.T) {
	t.Parallel()

	// 2024-01-15 is a Monday.
	now := time.Date(2024, time.January, 15, 14, 30, 0, 0, time.UTC)
	rangeStart := date(2024, time.February, 1)
	rangeEnd := date(2024, time.February, 5)

	tests := []struct {
		name     string
		selector string
		start    *time.Time
		end      *time.Time
		expected Window
	}{
		{
			name:     "today is a single day",
			selector: SelectorToday,
			expected: Window{Start: date(2024, time.January, 15), End: date(2024, time.January, 15)},
		},
		{
			name:     "upcoming spans seven days ahead",
			selector: SelectorUpcoming,
			expected: Window{Start: date(2024, time.January, 15), End: date(2024, time.January, 22)},
		},
		{
			name:     "week runs monday through sunday",
			selector: SelectorWeek,
			expected: Window{Start: date(2024, time.January, 15), End: date(2024, time.January, 21)},
		},
		{
			name:     "explicit range",
			selector: SelectorRange,
			start:    &rangeStart,
			end:      &rangeEnd,
			expected: Window{Start: rangeStart, End: rangeEnd},
		},
		{
			name:     "range end defaults to start",
			selector: SelectorRange,
			start:    &rangeStart,
			expected: Window{Start: rangeStart, End: rangeStart},
		},
		{
			name:     "range without start degrades to today",
			selector: SelectorRange,
			expected: Window{Start: date(2024, time.January, 15), End: date(2024, time.January, 15)},
		},
		{
			name:     "empty selector defaults to today",
			selector: "",
			expected: Window{Start: date(2024, time.January, 15), End: date(2024, time.January, 15)},
		},
		{
			name:     "unknown selector defaults to today",
			selector: "fortnight",
			expected: Window{Start: date(2024, time.January, 15), End: date(2024, time.January, 15)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ResolveWindow(tt.selector, tt.start, tt.end, now)
			if !got.Start.Equal(tt.expected.Start) || !got.End.Equal(tt.expected.End) {
				t.Fatalf("ResolveWindow(%q) = [%s, %s], want [%s, %s]",
					tt.selector, got.Start, got.End, tt.expected.Start, tt.expected.End)
			}
		})
	}
}

func TestResolveWindow_WeekContainsSunday(t *testing.T) {
	t.Parallel()

	// On a Sunday the week window still starts the previous Monday.
	sunday := time.Date(2024, time.January, 21, 8, 0, 0, 0, time.UTC)
	got := ResolveWindow(SelectorWeek, nil, nil, sunday)

	if !got.Start.Equal(date(2024, time.January, 15)) || !got.End.Equal(date(2024, time.January, 21)) {
		t.Fatalf("week window on sunday = [%s, %s], want [2024-01-15, 2024-01-21]", got.Start, got.End)
	}
}

func TestWindowDays(t *testing.T) {
	t.Parallel()

	w := Window{Start: date(2024, time.March, 30), End: date(2024, time.April, 1)}
	days := w.Days()

	if len(days) != 3 {
		t.Fatalf("Days() returned %d days, want 3", len(days))
	}
	if !days[0].Equal(date(2024, time.March, 30)) || !days[2].Equal(date(2024, time.April, 1)) {
		t.Fatalf("Days() = %v, want 2024-03-30 through 2024-04-01", days)
	}

	inverted := Window{Start: date(2024, time.April, 2), End: date(2024, time.April, 1)}
	if got := inverted.Days(); got != nil {
		t.Fatalf("inverted window Days() = %v, want nil", got)
	}
}
