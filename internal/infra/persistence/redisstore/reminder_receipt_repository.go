package redisstore

import (
	"context"
	"fmt"
	"time"

	"dosetrack/internal/domain/entity"
	"dosetrack/internal/domain/repository"

	"github.com/redis/go-redis/v9"
)

const (
	receiptKeyPrefix = "reminder:receipt:"

	// Receipts only need to outlive the day they dedup, so they can
	// expire instead of accumulating.
	defaultReceiptTTL = 48 * time.Hour
)

// reminderReceiptRepository implements repository.ReminderReceiptRepository
// on Redis. SET NX carries the same at-most-once property as the unique
// index in the Postgres store: exactly one caller per key sees true.
type reminderReceiptRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewReminderReceiptRepository is the constructor for reminderReceiptRepository.
// A non-positive ttl falls back to the default.
func NewReminderReceiptRepository(client *redis.Client, ttl time.Duration) repository.ReminderReceiptRepository {
	if ttl <= 0 {
		ttl = defaultReceiptTTL
	}

	return &reminderReceiptRepository{
		client: client,
		ttl:    ttl,
	}
}

// Claim atomically records the key as sent-in-progress.
func (r *reminderReceiptRepository) Claim(ctx context.Context, key entity.ReminderKey, sentAt time.Time) (bool, error) {
	return r.client.SetNX(ctx, receiptKey(key), sentAt.UTC().Format(time.RFC3339), r.ttl).Result()
}

// Release withdraws a claim after a failed dispatch.
func (r *reminderReceiptRepository) Release(ctx context.Context, key entity.ReminderKey) error {
	return r.client.Del(ctx, receiptKey(key)).Err()
}

// Exists reports whether a receipt is recorded for the key.
func (r *reminderReceiptRepository) Exists(ctx context.Context, key entity.ReminderKey) (bool, error) {
	count, err := r.client.Exists(ctx, receiptKey(key)).Result()
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

func receiptKey(key entity.ReminderKey) string {
	return fmt.Sprintf("%s%s:%s:%s:%s:%s",
		receiptKeyPrefix, key.UserID, key.MedicationID, key.Slot, key.Day, key.DependentID)
}
