// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account as this service sees it. Accounts are owned and
// mutated by the external identity system; here they are read-only
// context for dose confirmation and reminder fan-out.
type User struct {
	ID           uuid.UUID  `json:"id"`            // The Global Unique Identifier (GUID) for the user.
	Name         string     `json:"name"`          // The user's display name, used in reminder bodies.
	Email        string     `json:"email"`         // The user's primary contact email.
	GuardianCode string     `json:"-"`             // Shared secret gating dose confirmation; empty when no guardian is configured.
	GuardianID   *uuid.UUID `json:"guardian_id"`   // The user acting as this user's guardian. Nil for independent accounts.
	DeviceToken  string     `json:"-"`             // FCM registration token for reminder delivery; empty when the user has no push device.
	CreatedAt    time.Time  `json:"created_at"`    // Timestamp of when this account was created.
}

// HasGuardianCode reports whether dose confirmation on this account is
// gated behind a guardian code.
func (u *User) HasGuardianCode() bool {
	return u.GuardianCode != ""
}

// Notifiable reports whether the user can receive push reminders.
func (u *User) Notifiable() bool {
	return u.DeviceToken != ""
}
