package repository

import (
	"context"
	"time"

	"dosetrack/internal/domain/entity"
)

// ReminderReceiptRepository is the dedup boundary for reminder dispatch.
//
// Claim is a single atomic insert-if-absent, so for any key exactly one
// caller ever sees claimed=true. The claiming caller dispatches and keeps
// the receipt on success, or Releases it on failure so the next tick
// retries.
type ReminderReceiptRepository interface {
	// Claim atomically records the key as sent-in-progress. It returns
	// true only for the caller that inserted the receipt; false means the
	// reminder was already sent (or is being sent) for this key.
	Claim(ctx context.Context, key entity.ReminderKey, sentAt time.Time) (bool, error)

	// Release withdraws a claim after a failed dispatch, re-opening the
	// key for the next sweep.
	Release(ctx context.Context, key entity.ReminderKey) error

	// Exists reports whether a receipt is recorded for the key. It is the
	// read-side "already sent for this slot today" query offered to
	// external callers; the sweep itself never consults it and relies on
	// Claim's return value instead.
	Exists(ctx context.Context, key entity.ReminderKey) (bool, error)
}
