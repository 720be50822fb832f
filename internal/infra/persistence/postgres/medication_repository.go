package postgres

import (
	"context"
	"encoding/json"

	"dosetrack/internal/domain/entity"
	domainerrors "dosetrack/internal/domain/errors"
	"dosetrack/internal/domain/repository"
	"dosetrack/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// medicationRepository implements the repository.MedicationRepository interface.
type medicationRepository struct {
	db *gorm.DB
}

// NewMedicationRepository is the constructor for medicationRepository.
func NewMedicationRepository(db *gorm.DB) repository.MedicationRepository {
	return &medicationRepository{
		db: db,
	}
}

// CreateMedication persists a new medication.
func (repo *medicationRepository) CreateMedication(ctx context.Context, medication *entity.Medication) error {
	medicationM, err := fromMedicationDomain(medication)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(medicationM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("medication references an unknown user")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required medication information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create medication")
	}

	// Update the entity with generated values
	medication.ID = medicationM.ID
	medication.CreatedAt = medicationM.CreatedAt

	return nil
}

// FindMedicationByID retrieves a medication by its unique ID.
func (repo *medicationRepository) FindMedicationByID(ctx context.Context, id uuid.UUID) (*entity.Medication, error) {
	var medicationM model.MedicationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&medicationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMedicationNotFound
		}

		return nil, errors.Wrap(err, "failed to find medication by ID")
	}

	return toMedicationDomain(&medicationM)
}

// FindMedicationsByUser retrieves all medications owned by a user, newest first.
func (repo *medicationRepository) FindMedicationsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Medication, error) {
	var medicationModels []*model.MedicationModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&medicationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find medications by user")
	}

	medications := make([]*entity.Medication, 0, len(medicationModels))
	for _, medicationM := range medicationModels {
		medication, err := toMedicationDomain(medicationM)
		if err != nil {
			return nil, err
		}
		medications = append(medications, medication)
	}

	return medications, nil
}

// DeleteMedication removes a medication and, by cascade, its doses.
func (repo *medicationRepository) DeleteMedication(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.MedicationModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete medication")
	}

	if result.RowsAffected == 0 {
		return repository.ErrMedicationNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toMedicationDomain converts a GORM MedicationModel to a domain Medication entity.
func toMedicationDomain(data *model.MedicationModel) (*entity.Medication, error) {
	if data == nil {
		return nil, nil
	}

	var times []string
	if len(data.Times) > 0 {
		if err := json.Unmarshal(data.Times, &times); err != nil {
			return nil, errors.Wrap(err, "failed to decode medication times")
		}
	}

	return &entity.Medication{
		ID:        data.ID,
		UserID:    data.UserID,
		Name:      data.Name,
		Dosage:    data.Dosage,
		Times:     times,
		StartDate: data.StartDate,
		EndDate:   data.EndDate,
		CreatedAt: data.CreatedAt,
	}, nil
}

// fromMedicationDomain converts a domain Medication entity to a GORM MedicationModel.
func fromMedicationDomain(data *entity.Medication) (*model.MedicationModel, error) {
	if data == nil {
		return nil, nil
	}

	times, err := json.Marshal(data.Times)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode medication times")
	}

	return &model.MedicationModel{
		ID:        data.ID,
		UserID:    data.UserID,
		Name:      data.Name,
		Dosage:    data.Dosage,
		Times:     datatypes.JSON(times),
		StartDate: data.StartDate,
		EndDate:   data.EndDate,
		CreatedAt: data.CreatedAt,
	}, nil
}
