package model

import (
	"time"

	"github.com/google/uuid"
)

// DoseModel mirrors the 'doses' table. One row per medication occurrence.
// The composite unique index makes materialization idempotent: expanding the
// same window twice inserts each occurrence at most once.
type DoseModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	MedicationID uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_doses_medication_scheduled"`
	ScheduledAt  time.Time  `gorm:"not null;uniqueIndex:idx_doses_medication_scheduled"`
	TakenAt      *time.Time `gorm:""`
	Source       string     `gorm:"type:varchar(20)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (DoseModel) TableName() string {
	return "doses"
}
