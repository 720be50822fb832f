package entity

import (
	"time"

	"github.com/google/uuid"
)

// Confirmation sources for a taken dose.
const (
	DoseSourceUser     = "user"
	DoseSourceGuardian = "guardian"
)

// Dose is one materialized occurrence of a medication schedule: the
// medication is due at ScheduledAt on a specific calendar day. At most
// one dose exists per (medication, scheduled timestamp); the persistence
// layer enforces this with a unique constraint rather than any
// check-then-insert dance.
type Dose struct {
	ID           uuid.UUID  `json:"id"`           // The Global Unique Identifier (GUID) for the dose.
	MedicationID uuid.UUID  `json:"medication_id"` // The medication this occurrence belongs to.
	ScheduledAt  time.Time  `json:"scheduled_at"` // The concrete date+time this dose is due.
	TakenAt      *time.Time `json:"taken_at"`     // Confirmation timestamp. Nil while Scheduled; immutable once set.
	Source       string     `json:"source"`       // Who confirmed: "user" or "guardian". Empty while Scheduled.
}

// Taken reports whether the dose has reached its terminal state.
func (d *Dose) Taken() bool {
	return d.TakenAt != nil
}

// DoseDetail is the read model for dose listings: a dose merged with its
// medication's display fields.
type DoseDetail struct {
	Dose
	MedicationName   string `json:"-"`
	MedicationDosage string `json:"-"`
}
