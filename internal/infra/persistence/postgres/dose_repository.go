package postgres

import (
	"context"
	"time"

	"dosetrack/internal/domain/entity"
	"dosetrack/internal/domain/repository"
	"dosetrack/internal/domain/schedule"
	"dosetrack/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// doseRepository implements the repository.DoseRepository interface.
type doseRepository struct {
	db *gorm.DB
}

// NewDoseRepository is the constructor for doseRepository.
func NewDoseRepository(db *gorm.DB) repository.DoseRepository {
	return &doseRepository{
		db: db,
	}
}

// MaterializeDoses inserts a dose row for every candidate that does not
// already exist. ON CONFLICT DO NOTHING against the (medication_id,
// scheduled_at) unique index makes the whole batch idempotent: existing
// rows keep their confirmation state, and two overlapping expansions can
// race without either failing.
func (repo *doseRepository) MaterializeDoses(ctx context.Context, candidates []schedule.Candidate) error {
	if len(candidates) == 0 {
		return nil
	}

	doseModels := make([]*model.DoseModel, 0, len(candidates))
	for _, candidate := range candidates {
		doseModels = append(doseModels, &model.DoseModel{
			MedicationID: candidate.MedicationID,
			ScheduledAt:  candidate.ScheduledAt,
		})
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "medication_id"}, {Name: "scheduled_at"}},
			DoNothing: true,
		}).
		CreateInBatches(doseModels, 100).Error; err != nil {
		return errors.Wrap(err, "failed to materialize doses")
	}

	return nil
}

// FindDoseByID retrieves a dose by its unique ID.
func (repo *doseRepository) FindDoseByID(ctx context.Context, id uuid.UUID) (*entity.Dose, error) {
	var doseM model.DoseModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&doseM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDoseNotFound
		}

		return nil, errors.Wrap(err, "failed to find dose by ID")
	}

	return toDoseDomain(&doseM), nil
}

// doseDetailRow is the scan target for the dose listing join.
type doseDetailRow struct {
	model.DoseModel
	MedicationName   string
	MedicationDosage string
}

// ListDoseRange retrieves all doses of the owner's medications scheduled
// between the from and to days inclusive, merged with medication display
// fields. Both bounds are midnight-anchored dates; the query covers
// [from, to+1d).
func (repo *doseRepository) ListDoseRange(ctx context.Context, ownerID uuid.UUID, from, to time.Time) ([]*entity.DoseDetail, error) {
	var rows []*doseDetailRow

	if err := repo.db.WithContext(ctx).
		Model(&model.DoseModel{}).
		Select("doses.*, medications.name AS medication_name, medications.dosage AS medication_dosage").
		Joins("JOIN medications ON medications.id = doses.medication_id").
		Where("medications.user_id = ?", ownerID).
		Where("doses.scheduled_at >= ? AND doses.scheduled_at < ?", from, to.AddDate(0, 0, 1)).
		Order("doses.scheduled_at ASC").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list doses in range")
	}

	details := make([]*entity.DoseDetail, 0, len(rows))
	for _, row := range rows {
		details = append(details, &entity.DoseDetail{
			Dose:             *toDoseDomain(&row.DoseModel),
			MedicationName:   row.MedicationName,
			MedicationDosage: row.MedicationDosage,
		})
	}

	return details, nil
}

// ConfirmDose sets taken_at and source on a dose that is still
// unconfirmed. The WHERE taken_at IS NULL guard makes the first writer
// win; a raced confirmation updates zero rows and is reported as
// ErrDoseAlreadyTaken so the caller can re-read the winner's record.
func (repo *doseRepository) ConfirmDose(ctx context.Context, id uuid.UUID, takenAt time.Time, source string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DoseModel{}).
		Where("id = ? AND taken_at IS NULL", id).
		Updates(map[string]interface{}{
			"taken_at": takenAt,
			"source":   source,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to confirm dose")
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := repo.db.WithContext(ctx).
			Model(&model.DoseModel{}).
			Where("id = ?", id).
			Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to check dose existence")
		}
		if count == 0 {
			return repository.ErrDoseNotFound
		}

		return repository.ErrDoseAlreadyTaken
	}

	return nil
}

// --- Mapper Functions ---

// toDoseDomain converts a GORM DoseModel to a domain Dose entity.
func toDoseDomain(data *model.DoseModel) *entity.Dose {
	if data == nil {
		return nil
	}

	return &entity.Dose{
		ID:           data.ID,
		MedicationID: data.MedicationID,
		ScheduledAt:  data.ScheduledAt,
		TakenAt:      data.TakenAt,
		Source:       data.Source,
	}
}
