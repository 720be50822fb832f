package usecase

import (
	"context"
	"time"
)

// SweepResult summarizes one reminder sweep tick.
type SweepResult struct {
	UsersProcessed int // users iterated, including those with nothing due
	Sent           int // reminders dispatched and receipted
	Suppressed     int // due slots skipped because a receipt already existed
	Failures       int // per-user errors that were isolated and logged
}

// ReminderUsecase defines the interface for the reminder dispatch sweep.
type ReminderUsecase interface {
	// Sweep runs one reminder pass at the given instant: for every
	// notifiable user it materializes today's doses, finds recurrence
	// slots matching the current minute, and dispatches at most one push
	// per (user, medication, slot, day, dependent) key. A failing user
	// never aborts the remaining users.
	Sweep(ctx context.Context, now time.Time) (*SweepResult, error)
}
