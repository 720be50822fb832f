package repository

import (
	"context"
	"time"

	"dosetrack/internal/domain/entity"
	"dosetrack/internal/domain/schedule"
	"dosetrack/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for dose persistence.
var (
	// ErrDoseNotFound is returned when a dose is not found.
	ErrDoseNotFound = errors.New("dose not found")
	// ErrDoseAlreadyTaken is returned by ConfirmDose when another writer
	// confirmed the dose first. The caller re-reads and returns the
	// winner's record; this is not a user-visible failure.
	ErrDoseAlreadyTaken = errors.New("dose already taken")
)

// DoseRepository defines the interface for dose-related database operations.
type DoseRepository interface {
	// MaterializeDoses inserts a dose row for every candidate that does
	// not already exist. Existing rows, including their confirmation
	// state, are left untouched: the (medication_id, scheduled_at) unique
	// constraint is the sole correctness mechanism, so the operation is
	// safe to repeat and to race against itself for overlapping windows.
	MaterializeDoses(ctx context.Context, candidates []schedule.Candidate) error

	// FindDoseByID retrieves a dose by its unique ID.
	FindDoseByID(ctx context.Context, id uuid.UUID) (*entity.Dose, error)

	// ListDoseRange retrieves all doses of the owner's medications
	// scheduled between the from and to days inclusive, merged with
	// medication display fields and sorted by scheduled timestamp
	// ascending. Both bounds are midnight-anchored dates.
	ListDoseRange(ctx context.Context, ownerID uuid.UUID, from, to time.Time) ([]*entity.DoseDetail, error)

	// ConfirmDose sets taken_at and source on a dose that is still
	// unconfirmed. It updates nothing and returns ErrDoseAlreadyTaken when
	// the dose was confirmed concurrently, which keeps the first
	// confirmation timestamp immutable without external locking.
	ConfirmDose(ctx context.Context, id uuid.UUID, takenAt time.Time, source string) error
}
