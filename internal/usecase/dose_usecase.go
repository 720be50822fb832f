package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// DoseQuery selects the date window for a dose listing. Selector is one
// of "today", "upcoming", "week" or "range"; Start and End only apply to
// "range" and carry plain "YYYY-MM-DD" dates, interpreted as calendar
// days in the service zone. An unknown selector falls back to "today".
type DoseQuery struct {
	Selector string `json:"selector" query:"window"`
	Start    string `json:"start" query:"start"`
	End      string `json:"end" query:"end"`
}

// ConfirmDoseInput carries the optional guardian code accompanying a
// dose confirmation.
type ConfirmDoseInput struct {
	GuardianCode string `json:"guardian_code" query:"guardian_code"`
}

// DoseMedication is the medication summary embedded in a dose item.
type DoseMedication struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Dosage string    `json:"dosage"`
}

// DoseItem is one dose occurrence in a listing.
type DoseItem struct {
	ID          uuid.UUID      `json:"id"`
	ScheduledAt time.Time      `json:"scheduled_at"`
	TakenAt     *time.Time     `json:"taken_at"`
	Source      string         `json:"source,omitempty"`
	Medication  DoseMedication `json:"medication"`
}

// DoseWindow reports the resolved date window of a listing.
type DoseWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// DoseCounts summarizes confirmation progress inside the window.
type DoseCounts struct {
	Taken int `json:"taken"`
	Total int `json:"total"`
}

// DoseListOutput is the dose listing response shape.
type DoseListOutput struct {
	Window DoseWindow  `json:"window"`
	Counts DoseCounts  `json:"counts"`
	Items  []*DoseItem `json:"items"`
}

// DoseUsecase defines the interface for dose tracking use cases
type DoseUsecase interface {
	// ListDoses materializes the user's dose occurrences for the queried
	// window and returns them with confirmation counts. Reading is what
	// creates missing occurrences; repeated reads never duplicate them.
	ListDoses(ctx context.Context, userID uuid.UUID, query *DoseQuery) (*DoseListOutput, error)

	// ConfirmDose marks a dose as taken. An already-taken dose is
	// returned unchanged before the guardian code is ever evaluated;
	// otherwise a configured guardian code must match and marks the
	// confirmation source as "guardian".
	ConfirmDose(ctx context.Context, userID uuid.UUID, doseID uuid.UUID, input *ConfirmDoseInput) (*DoseItem, error)
}
