package model

import (
	"time"

	"github.com/google/uuid"
)

// ReminderReceiptModel mirrors the 'reminder_receipts' table. A row records
// that a reminder for one recipient/medication/slot/day combination was
// dispatched. The composite unique index is the at-most-once guarantee:
// Claim inserts with ON CONFLICT DO NOTHING and treats zero affected rows
// as "someone else already sent this one".
type ReminderReceiptModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_receipts_dedup"`
	MedicationID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_receipts_dedup"`
	Slot         string    `gorm:"type:varchar(5);not null;uniqueIndex:idx_receipts_dedup"`
	Day          string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_receipts_dedup"`
	DependentID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_receipts_dedup"`
	SentAt       time.Time
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReminderReceiptModel) TableName() string {
	return "reminder_receipts"
}
