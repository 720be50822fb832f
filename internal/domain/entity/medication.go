package entity

import (
	"time"

	"github.com/google/uuid"
)

// Medication is a recurring prescription owned by exactly one user. Times
// always holds the canonical ordered "HH:MM" sequence produced by the
// ingestion boundary; raw input shapes never reach an entity.
type Medication struct {
	ID        uuid.UUID  `json:"id"`         // The Global Unique Identifier (GUID) for the medication.
	UserID    uuid.UUID  `json:"user_id"`    // The ID of the owning user.
	Name      string     `json:"name"`       // Display name, e.g. "Amoxicillin".
	Dosage    string     `json:"dosage"`     // Free-form dosage text, e.g. "500mg". May be empty.
	Times     []string   `json:"times"`      // Canonical recurrence times, ascending, duplicates removed.
	StartDate *time.Time `json:"start_date"` // First active calendar day (inclusive). Nil for no lower bound.
	EndDate   *time.Time `json:"end_date"`   // Last active calendar day (inclusive). Nil for no upper bound.
	CreatedAt time.Time  `json:"created_at"` // Timestamp of when this record was created.
}
