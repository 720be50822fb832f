package schedule

import (
	"time"

	"github.com/google/uuid"
)

// Candidate is one prospective dose occurrence produced by expansion: a
// medication is due at ScheduledAt. Candidates carry no identity of their
// own; the persistence layer decides whether a matching dose record
// already exists.
type Candidate struct {
	MedicationID uuid.UUID
	ScheduledAt  time.Time
}

// Expand computes the candidate occurrences for one medication over a
// resolved window: one candidate per in-range calendar day per recurrence
// time, skipping days outside the medication's active interval
// (activeFrom/activeTo are inclusive date bounds; nil means unbounded).
//
// Expand is pure and deterministic: identical inputs yield the identical
// candidate sequence, sorted by scheduled timestamp. Times are
// re-canonicalized on the way in so callers holding raw input still get a
// stable result.
func Expand(medicationID uuid.UUID, times []string, activeFrom, activeTo *time.Time, w Window) []Candidate {
	clocks := canonicalize(times)
	if len(clocks) == 0 {
		return nil
	}

	var candidates []Candidate
	for _, day := range w.Days() {
		if !withinActiveInterval(day, activeFrom, activeTo) {
			continue
		}
		for _, clock := range clocks {
			candidates = append(candidates, Candidate{
				MedicationID: medicationID,
				ScheduledAt:  combine(day, clock),
			})
		}
	}

	return candidates
}

func withinActiveInterval(day time.Time, from, to *time.Time) bool {
	if from != nil && beforeDay(day, *from) {
		return false
	}
	if to != nil && beforeDay(*to, day) {
		return false
	}

	return true
}

// beforeDay compares calendar dates only, ignoring clock and location.
func beforeDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	if ay != by {
		return ay < by
	}
	if am != bm {
		return am < bm
	}

	return ad < bd
}

func combine(day time.Time, clock string) time.Time {
	hour := int(clock[0]-'0')*10 + int(clock[1]-'0')
	minute := int(clock[3]-'0')*10 + int(clock[4]-'0')

	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, day.Location())
}
