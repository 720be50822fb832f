// Package usecase defines the application's use case interfaces and
// their input/output types.
package usecase

import (
	"context"

	"dosetrack/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateMedicationInput represents the input for registering a medication.
// Times accepts whatever shape the client sends: a JSON array of strings,
// a comma-separated string, or a JSON-array-encoded string. The ingestion
// boundary normalizes it to the canonical "HH:MM" sequence. StartDate and
// EndDate are plain "YYYY-MM-DD" dates bounding the active interval.
type CreateMedicationInput struct {
	Name      string `json:"name" validate:"required"`
	Dosage    string `json:"dosage"`
	Times     any    `json:"times" validate:"required"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// MedicationUsecase defines the interface for medication management use cases
type MedicationUsecase interface {
	// CreateMedication registers a medication for the user. The recurrence
	// times are normalized before persistence; name and at least one
	// usable time are required.
	CreateMedication(ctx context.Context, userID uuid.UUID, input *CreateMedicationInput) (*entity.Medication, error)

	// ListMedications retrieves all medications owned by the user.
	ListMedications(ctx context.Context, userID uuid.UUID) ([]*entity.Medication, error)

	// DeleteMedication removes a medication the user owns.
	DeleteMedication(ctx context.Context, userID, medicationID uuid.UUID) error
}
