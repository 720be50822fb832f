// Package notification implements push dispatch through Firebase Cloud
// Messaging.
package notification

import (
	"context"
	"fmt"

	"dosetrack/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

type firebaseService struct {
	client *messaging.Client
}

// NewFirebaseService creates a new Firebase notification service instance
func NewFirebaseService(ctx context.Context, credentialsPath string) (service.NotificationService, error) {
	opt := option.WithCredentialsFile(credentialsPath)
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messaging client: %w", err)
	}

	return &firebaseService{
		client: client,
	}, nil
}

// SendReminder sends a push notification to a single device token. A dead
// token is reported as service.ErrTokenInvalid so the caller can clear it
// from the account instead of retrying forever.
func (s *firebaseService) SendReminder(ctx context.Context, token, title, body string, data map[string]string) error {
	message := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	if _, err := s.client.Send(ctx, message); err != nil {
		if messaging.IsInvalidArgument(err) || messaging.IsUnregistered(err) {
			return service.ErrTokenInvalid
		}

		return fmt.Errorf("failed to send notification: %w", err)
	}

	return nil
}
