package schedule

import (
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestExpand_TwoTimesSingleDay(t *testing.T) {
	t.Parallel()

	medID := uuid.New()
	w := Window{Start: date(2024, time.January, 15), End: date(2024, time.January, 15)}

	got := Expand(medID, []string{"8:00", "20:00"}, nil, nil, w)

	expected := []Candidate{
		{MedicationID: medID, ScheduledAt: time.Date(2024, time.January, 15, 8, 0, 0, 0, time.UTC)},
		{MedicationID: medID, ScheduledAt: time.Date(2024, time.January, 15, 20, 0, 0, 0, time.UTC)},
	}
	if !reflect.DeepEqual(got, expected) {
		t.Fatalf("Expand = %v, want %v", got, expected)
	}
}

func TestExpand_SortedAndDeterministic(t *testing.T) {
	t.Parallel()

	medID := uuid.New()
	w := Window{Start: date(2024, time.January, 15), End: date(2024, time.January, 16)}

	first := Expand(medID, []string{"20:00", "8am"}, nil, nil, w)
	second := Expand(medID, []string{"20:00", "8am"}, nil, nil, w)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("identical inputs produced different candidate sets")
	}
	for i := 1; i < len(first); i++ {
		if first[i].ScheduledAt.Before(first[i-1].ScheduledAt) {
			t.Fatalf("candidates out of order at index %d: %v", i, first)
		}
	}
	if len(first) != 4 {
		t.Fatalf("expected 4 candidates over two days, got %d", len(first))
	}
}

func TestExpand_ActiveInterval(t *testing.T) {
	t.Parallel()

	medID := uuid.New()
	w := Window{Start: date(2024, time.January, 10), End: date(2024, time.January, 20)}
	from := date(2024, time.January, 12)
	to := date(2024, time.January, 14)

	tests := []struct {
		name    string
		from    *time.Time
		to      *time.Time
		expDays int
	}{
		{name: "unbounded", from: nil, to: nil, expDays: 11},
		{name: "start bound", from: &from, to: nil, expDays: 9},
		{name: "end bound", from: nil, to: &to, expDays: 5},
		{name: "both bounds inclusive", from: &from, to: &to, expDays: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Expand(medID, []string{"08:00"}, tt.from, tt.to, w)
			if len(got) != tt.expDays {
				t.Fatalf("got %d candidates, want %d", len(got), tt.expDays)
			}
		})
	}
}

func TestExpand_NoTimes(t *testing.T) {
	t.Parallel()

	w := Window{Start: date(2024, time.January, 15), End: date(2024, time.January, 15)}
	if got := Expand(uuid.New(), nil, nil, nil, w); got != nil {
		t.Fatalf("Expand with no times = %v, want nil", got)
	}
}
