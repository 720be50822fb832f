package entity

import (
	"time"

	"github.com/google/uuid"
)

// ReminderKey is the identity of one reminder opportunity: recipient,
// medication, time slot and calendar day, plus the dependent the reminder
// concerns when a guardian is notified on a dependent's behalf.
// DependentID is uuid.Nil for a user's own medications; including it in
// the key keeps one dependent's send from suppressing a sibling's.
type ReminderKey struct {
	UserID       uuid.UUID // The recipient of the push notification.
	MedicationID uuid.UUID // The medication the reminder is about.
	Slot         string    // Canonical "HH:MM" recurrence slot.
	Day          string    // Calendar day "YYYY-MM-DD" in the service zone.
	DependentID  uuid.UUID // The dependent the medication belongs to; uuid.Nil for own medications.
}

// ReminderReceipt records that a reminder for a key was dispatched. Its
// existence is the authoritative "already sent for this slot today"
// signal; a receipt is only kept once the dispatch succeeded.
type ReminderReceipt struct {
	ID     uuid.UUID   `json:"id"`
	Key    ReminderKey `json:"key"`
	SentAt time.Time   `json:"sent_at"`
}
