// Package service defines interfaces for external collaborators the
// domain depends on.
package service

import (
	"context"

	"dosetrack/internal/errors"
)

// ErrTokenInvalid is returned by a NotificationService when the provider
// rejects the device token as invalid or unregistered. The caller should
// stop sending to the token and clear it from the account.
var ErrTokenInvalid = errors.New("device token invalid or unregistered")

// NotificationService is the push dispatch boundary. Delivery mechanics
// (FCM, APNs routing, retries inside the provider) are outside the core;
// it only needs a bounded call that reports definite success or failure,
// because a reminder receipt may only be kept after confirmed success.
type NotificationService interface {
	// SendReminder sends one push notification to a device token.
	// A nil return means the provider accepted the message.
	SendReminder(ctx context.Context, token, title, body string, data map[string]string) error
}
