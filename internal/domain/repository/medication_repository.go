package repository

import (
	"context"

	"dosetrack/internal/domain/entity"
	"dosetrack/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for medication persistence.
var (
	// ErrMedicationNotFound is returned when a medication is not found.
	ErrMedicationNotFound = errors.New("medication not found")
)

// MedicationRepository defines the interface for medication-related database operations.
type MedicationRepository interface {
	// CreateMedication persists a new medication.
	CreateMedication(ctx context.Context, medication *entity.Medication) error

	// FindMedicationByID retrieves a medication by its unique ID.
	FindMedicationByID(ctx context.Context, id uuid.UUID) (*entity.Medication, error)

	// FindMedicationsByUser retrieves all medications owned by a user,
	// newest first.
	FindMedicationsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Medication, error)

	// DeleteMedication removes a medication and, by cascade, its doses.
	DeleteMedication(ctx context.Context, id uuid.UUID) error
}
