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

type doseService struct {
	doseRepo       repository.DoseRepository
	medicationRepo repository.MedicationRepository
	userRepo       repository.UserRepository
	location       *time.Location

	// now is swapped in tests to pin the clock.
	now func() time.Time
}

// NewDoseService creates a new dose service instance. All window math
// runs in the given location.
func NewDoseService(
	doseRepo repository.DoseRepository,
	medicationRepo repository.MedicationRepository,
	userRepo repository.UserRepository,
	location *time.Location,
) usecase.DoseUsecase {
	return &doseService{
		doseRepo:       doseRepo,
		medicationRepo: medicationRepo,
		userRepo:       userRepo,
		location:       location,
		now:            time.Now,
	}
}

// ListDoses materializes the user's dose occurrences for the queried
// window and returns them with confirmation counts. Materialization is
// insert-if-absent, so concurrent reads and the background sweep can
// cover the same window without duplicating rows.
func (s *doseService) ListDoses(ctx context.Context, userID uuid.UUID, query *usecase.DoseQuery) (*usecase.DoseListOutput, error) {
	now := s.now().In(s.location)

	// Explicit range dates are anchored in the service zone, so a range
	// for a calendar day lands on the same instants the today selector
	// and the background sweep materialize for it.
	start, err := parseDay(query.Start, s.location)
	if err != nil {
		return nil, err
	}
	end, err := parseDay(query.End, s.location)
	if err != nil {
		return nil, err
	}

	window := schedule.ResolveWindow(query.Selector, start, end, now)

	medications, err := s.medicationRepo.FindMedicationsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	var candidates []schedule.Candidate
	for _, medication := range medications {
		candidates = append(candidates, schedule.Expand(
			medication.ID, medication.Times, medication.StartDate, medication.EndDate, window)...)
	}

	if err := s.doseRepo.MaterializeDoses(ctx, candidates); err != nil {
		return nil, err
	}

	details, err := s.doseRepo.ListDoseRange(ctx, userID, window.Start, window.End)
	if err != nil {
		return nil, err
	}

	output := &usecase.DoseListOutput{
		Window: usecase.DoseWindow{Start: window.Start, End: window.End},
		Items:  make([]*usecase.DoseItem, 0, len(details)),
	}
	for _, detail := range details {
		output.Counts.Total++
		if detail.Taken() {
			output.Counts.Taken++
		}
		output.Items = append(output.Items, &usecase.DoseItem{
			ID:          detail.ID,
			ScheduledAt: detail.ScheduledAt,
			TakenAt:     detail.TakenAt,
			Source:      detail.Source,
			Medication: usecase.DoseMedication{
				ID:     detail.MedicationID,
				Name:   detail.MedicationName,
				Dosage: detail.MedicationDosage,
			},
		})
	}

	return output, nil
}

// ConfirmDose marks a dose as taken. The idempotence short-circuit comes
// first: an already-taken dose is returned unchanged without evaluating
// the guardian code at all. Only an unconfirmed dose goes through the
// code check and the conditional update.
func (s *doseService) ConfirmDose(ctx context.Context, userID uuid.UUID, doseID uuid.UUID, input *usecase.ConfirmDoseInput) (*usecase.DoseItem, error) {
	dose, err := s.doseRepo.FindDoseByID(ctx, doseID)
	if err != nil {
		if errors.Is(err, repository.ErrDoseNotFound) {
			return nil, domainerrors.ErrDoseNotFound
		}

		return nil, err
	}

	medication, err := s.medicationRepo.FindMedicationByID(ctx, dose.MedicationID)
	if err != nil {
		if errors.Is(err, repository.ErrMedicationNotFound) {
			return nil, domainerrors.ErrDoseNotFound
		}

		return nil, err
	}
	// A dose behind someone else's medication reads as absent.
	if medication.UserID != userID {
		return nil, domainerrors.ErrDoseNotFound
	}

	if dose.Taken() {
		return s.toDoseItem(dose, medication), nil
	}

	owner, err := s.userRepo.FindUserByID(ctx, medication.UserID)
	if err != nil {
		return nil, err
	}

	source := entity.DoseSourceUser
	if owner.HasGuardianCode() {
		if strings.TrimSpace(input.GuardianCode) != owner.GuardianCode {
			return nil, domainerrors.ErrGuardianCodeRequired
		}
		source = entity.DoseSourceGuardian
	}

	takenAt := s.now().In(s.location)
	if err := s.doseRepo.ConfirmDose(ctx, doseID, takenAt, source); err != nil {
		if !errors.Is(err, repository.ErrDoseAlreadyTaken) {
			return nil, err
		}
		// Raced with another confirmation; the winner's record stands.
	}

	confirmed, err := s.doseRepo.FindDoseByID(ctx, doseID)
	if err != nil {
		return nil, err
	}

	return s.toDoseItem(confirmed, medication), nil
}

func (s *doseService) toDoseItem(dose *entity.Dose, medication *entity.Medication) *usecase.DoseItem {
	return &usecase.DoseItem{
		ID:          dose.ID,
		ScheduledAt: dose.ScheduledAt,
		TakenAt:     dose.TakenAt,
		Source:      dose.Source,
		Medication: usecase.DoseMedication{
			ID:     medication.ID,
			Name:   medication.Name,
			Dosage: medication.Dosage,
		},
	}
}
