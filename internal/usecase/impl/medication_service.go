// Package impl contains the concrete implementations of the use case interfaces.
package impl

import (
	"context"
	"strings"
	"time"

	"dosetrack/internal/domain/entity"
	domainerrors "dosetrack/internal/domain/errors"
	"dosetrack/internal/domain/repository"
	"dosetrack/internal/domain/schedule"
	"dosetrack/internal/errors"
	"dosetrack/internal/usecase"

	"github.com/google/uuid"
)

type medicationService struct {
	medicationRepo repository.MedicationRepository
	userRepo       repository.UserRepository
	location       *time.Location
}

// NewMedicationService creates a new medication service instance. Active
// interval dates are anchored in the given location.
func NewMedicationService(
	medicationRepo repository.MedicationRepository,
	userRepo repository.UserRepository,
	location *time.Location,
) usecase.MedicationUsecase {
	return &medicationService{
		medicationRepo: medicationRepo,
		userRepo:       userRepo,
		location:       location,
	}
}

// CreateMedication registers a medication for the user. Times are
// normalized here, at the ingestion boundary, so every stored medication
// carries only canonical "HH:MM" values.
func (s *medicationService) CreateMedication(ctx context.Context, userID uuid.UUID, input *usecase.CreateMedicationInput) (*entity.Medication, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, domainerrors.ErrMedicationNameRequired
	}

	times := schedule.CoerceTimes(input.Times)
	if len(times) == 0 {
		return nil, domainerrors.ErrMedicationTimesRequired
	}

	startDate, err := parseDay(input.StartDate, s.location)
	if err != nil {
		return nil, err
	}
	endDate, err := parseDay(input.EndDate, s.location)
	if err != nil {
		return nil, err
	}

	if _, err := s.userRepo.FindUserByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, err
	}

	medication := &entity.Medication{
		UserID:    userID,
		Name:      strings.TrimSpace(input.Name),
		Dosage:    strings.TrimSpace(input.Dosage),
		Times:     times,
		StartDate: startDate,
		EndDate:   endDate,
	}

	if err := s.medicationRepo.CreateMedication(ctx, medication); err != nil {
		return nil, err
	}

	return medication, nil
}

// ListMedications retrieves all medications owned by the user.
func (s *medicationService) ListMedications(ctx context.Context, userID uuid.UUID) ([]*entity.Medication, error) {
	return s.medicationRepo.FindMedicationsByUser(ctx, userID)
}

// DeleteMedication removes a medication the user owns. Ownership is
// verified first so a foreign medication id reads as not-found rather
// than leaking its existence.
func (s *medicationService) DeleteMedication(ctx context.Context, userID, medicationID uuid.UUID) error {
	medication, err := s.medicationRepo.FindMedicationByID(ctx, medicationID)
	if err != nil {
		if errors.Is(err, repository.ErrMedicationNotFound) {
			return domainerrors.ErrMedicationNotFound
		}

		return err
	}

	if medication.UserID != userID {
		return domainerrors.ErrMedicationNotFound
	}

	return s.medicationRepo.DeleteMedication(ctx, medicationID)
}

// parseDay parses an optional plain "YYYY-MM-DD" value as a
// midnight-anchored day in the given location. An empty value means the
// bound is absent.
func parseDay(raw string, location *time.Location) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	day, err := time.ParseInLocation("2006-01-02", raw, location)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("expected a YYYY-MM-DD date")
	}

	return &day, nil
}
