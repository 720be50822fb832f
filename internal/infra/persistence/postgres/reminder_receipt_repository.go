package postgres

import (
	"context"
	"time"

	"dosetrack/internal/domain/entity"
	"dosetrack/internal/domain/repository"
	"dosetrack/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// reminderReceiptRepository implements repository.ReminderReceiptRepository
// on top of the reminder_receipts unique index.
type reminderReceiptRepository struct {
	db *gorm.DB
}

// NewReminderReceiptRepository is the constructor for reminderReceiptRepository.
func NewReminderReceiptRepository(db *gorm.DB) repository.ReminderReceiptRepository {
	return &reminderReceiptRepository{
		db: db,
	}
}

// Claim atomically records the key as sent-in-progress. The insert runs
// with ON CONFLICT DO NOTHING, so for any key exactly one caller observes
// RowsAffected == 1 and wins the right to dispatch.
func (repo *reminderReceiptRepository) Claim(ctx context.Context, key entity.ReminderKey, sentAt time.Time) (bool, error) {
	receiptM := &model.ReminderReceiptModel{
		UserID:       key.UserID,
		MedicationID: key.MedicationID,
		Slot:         key.Slot,
		Day:          key.Day,
		DependentID:  key.DependentID,
		SentAt:       sentAt,
	}

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "user_id"}, {Name: "medication_id"},
				{Name: "slot"}, {Name: "day"}, {Name: "dependent_id"},
			},
			DoNothing: true,
		}).
		Create(receiptM)

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return false, nil
		}

		return false, errors.Wrap(result.Error, "failed to claim reminder receipt")
	}

	return result.RowsAffected == 1, nil
}

// Release withdraws a claim after a failed dispatch, re-opening the key
// for the next sweep.
func (repo *reminderReceiptRepository) Release(ctx context.Context, key entity.ReminderKey) error {
	if err := repo.db.WithContext(ctx).
		Where(repo.keyConditions(key)).
		Delete(&model.ReminderReceiptModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to release reminder receipt")
	}

	return nil
}

// Exists reports whether a receipt is recorded for the key.
func (repo *reminderReceiptRepository) Exists(ctx context.Context, key entity.ReminderKey) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ReminderReceiptModel{}).
		Where(repo.keyConditions(key)).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check reminder receipt")
	}

	return count > 0, nil
}

func (repo *reminderReceiptRepository) keyConditions(key entity.ReminderKey) map[string]interface{} {
	return map[string]interface{}{
		"user_id":       key.UserID,
		"medication_id": key.MedicationID,
		"slot":          key.Slot,
		"day":           key.Day,
		"dependent_id":  key.DependentID,
	}
}
