// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"dosetrack/internal/domain/entity"
	"dosetrack/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
)

// UserRepository reads account data owned by the external identity
// system. This service never writes users except to clear a device token
// that the push provider reports as dead.
type UserRepository interface {
	// FindUserByID retrieves a user by their unique ID.
	FindUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindNotifiableUsers retrieves all users carrying a push device token.
	// The reminder sweep iterates exactly this set.
	FindNotifiableUsers(ctx context.Context) ([]*entity.User, error)

	// FindDependents retrieves the users whose guardian is the given user.
	// Used for guardian reminder fan-out.
	FindDependents(ctx context.Context, guardianID uuid.UUID) ([]*entity.User, error)

	// ClearDeviceToken removes a user's push token after the provider
	// reported it invalid or unregistered.
	ClearDeviceToken(ctx context.Context, id uuid.UUID) error
}
