package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// MedicationModel mirrors the 'medications' table. Times holds the canonical
// "HH:MM" slot list as a JSON array.
type MedicationModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index"`
	Name      string         `gorm:"type:varchar(255);not null"`
	Dosage    string         `gorm:"type:varchar(255)"`
	Times     datatypes.JSON `gorm:"type:jsonb;not null"`
	StartDate *time.Time     `gorm:"type:date"`
	EndDate   *time.Time     `gorm:"type:date"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Doses []DoseModel `gorm:"foreignKey:MedicationID"`
}

// TableName explicitly sets the table name for GORM.
func (MedicationModel) TableName() string {
	return "medications"
}
