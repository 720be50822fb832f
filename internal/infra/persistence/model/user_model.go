package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type UserModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email        string     `gorm:"type:varchar(255);unique;not null"`
	Name         string     `gorm:"type:varchar(100)"`
	GuardianCode string     `gorm:"type:varchar(100)"`
	GuardianID   *uuid.UUID `gorm:"type:uuid;index"`
	DeviceToken  string     `gorm:"type:text"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Medications []MedicationModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
