package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"dosetrack/internal/domain/entity"
	"dosetrack/internal/domain/repository"
	"dosetrack/internal/domain/schedule"
	"dosetrack/internal/domain/service"
	"dosetrack/internal/errors"
	"dosetrack/internal/usecase"

	"github.com/google/uuid"
)

type reminderService struct {
	userRepo        repository.UserRepository
	medicationRepo  repository.MedicationRepository
	doseRepo        repository.DoseRepository
	receiptRepo     repository.ReminderReceiptRepository
	notificationSvc service.NotificationService
	logger          *slog.Logger
	location        *time.Location
}

// NewReminderService creates a new reminder sweep instance.
func NewReminderService(
	userRepo repository.UserRepository,
	medicationRepo repository.MedicationRepository,
	doseRepo repository.DoseRepository,
	receiptRepo repository.ReminderReceiptRepository,
	notificationSvc service.NotificationService,
	logger *slog.Logger,
	location *time.Location,
) usecase.ReminderUsecase {
	return &reminderService{
		userRepo:        userRepo,
		medicationRepo:  medicationRepo,
		doseRepo:        doseRepo,
		receiptRepo:     receiptRepo,
		notificationSvc: notificationSvc,
		logger:          logger,
		location:        location,
	}
}

// Sweep runs one reminder pass. Users are processed independently: an
// error for one is logged and counted, never propagated, so a single bad
// account cannot starve everyone scheduled after it.
func (s *reminderService) Sweep(ctx context.Context, now time.Time) (*usecase.SweepResult, error) {
	now = now.In(s.location)

	users, err := s.userRepo.FindNotifiableUsers(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load notifiable users")
	}

	result := &usecase.SweepResult{}
	for _, user := range users {
		result.UsersProcessed++

		if err := s.sweepUser(ctx, user, now, result); err != nil {
			result.Failures++
			s.logger.LogAttrs(ctx, slog.LevelError, "reminder sweep failed for user",
				slog.String("userID", user.ID.String()),
				slog.String("error", err.Error()),
			)
		}
	}

	return result, nil
}

// sweepUser dispatches the user's own due reminders plus one per due
// medication of each dependent the user guards.
func (s *reminderService) sweepUser(ctx context.Context, user *entity.User, now time.Time, result *usecase.SweepResult) error {
	if err := s.sweepMedications(ctx, user, user, uuid.Nil, now, result); err != nil {
		return err
	}

	dependents, err := s.userRepo.FindDependents(ctx, user.ID)
	if err != nil {
		return errors.Wrap(err, "failed to load dependents")
	}

	for _, dependent := range dependents {
		if err := s.sweepMedications(ctx, user, dependent, dependent.ID, now, result); err != nil {
			return err
		}
	}

	return nil
}

// sweepMedications handles the medications owned by subject, notifying
// recipient. For the recipient's own medications subject == recipient and
// dependentID is uuid.Nil; for guardian fan-out the dependent's id is part
// of the dedup key so one dependent's send never suppresses a sibling's.
func (s *reminderService) sweepMedications(ctx context.Context, recipient, subject *entity.User, dependentID uuid.UUID, now time.Time, result *usecase.SweepResult) error {
	medications, err := s.medicationRepo.FindMedicationsByUser(ctx, subject.ID)
	if err != nil {
		return errors.Wrap(err, "failed to load medications")
	}

	slot := now.Format("15:04")
	day := now.Format("2006-01-02")
	window := schedule.ResolveWindow(schedule.SelectorToday, nil, nil, now)

	for _, medication := range medications {
		candidates := schedule.Expand(medication.ID, medication.Times, medication.StartDate, medication.EndDate, window)
		if len(candidates) == 0 {
			continue
		}

		// Occurrences exist before any reminder references them, whether
		// or not the owner ever opened a dose listing today.
		if err := s.doseRepo.MaterializeDoses(ctx, candidates); err != nil {
			return errors.Wrap(err, "failed to materialize doses")
		}

		due := false
		for _, candidate := range candidates {
			if candidate.ScheduledAt.Format("15:04") == slot {
				due = true

				break
			}
		}
		if !due {
			continue
		}

		key := entity.ReminderKey{
			UserID:       recipient.ID,
			MedicationID: medication.ID,
			Slot:         slot,
			Day:          day,
			DependentID:  dependentID,
		}

		if err := s.dispatch(ctx, recipient, subject, medication, key, now, result); err != nil {
			return err
		}
	}

	return nil
}

// dispatch claims the dedup key, sends, and releases the claim if the
// send did not definitely succeed. The claim is atomic, so under
// concurrent sweeps exactly one caller wins the key; the receipt only
// survives a confirmed dispatch.
func (s *reminderService) dispatch(ctx context.Context, recipient, subject *entity.User, medication *entity.Medication, key entity.ReminderKey, now time.Time, result *usecase.SweepResult) error {
	claimed, err := s.receiptRepo.Claim(ctx, key, now)
	if err != nil {
		return errors.Wrap(err, "failed to claim reminder receipt")
	}
	if !claimed {
		result.Suppressed++

		return nil
	}

	title, body := reminderContent(recipient, subject, medication)
	data := map[string]string{
		"medication_id": medication.ID.String(),
		"slot":          key.Slot,
		"day":           key.Day,
	}
	if key.DependentID != uuid.Nil {
		data["dependent_id"] = key.DependentID.String()
	}

	if err := s.notificationSvc.SendReminder(ctx, recipient.DeviceToken, title, body, data); err != nil {
		if releaseErr := s.receiptRepo.Release(ctx, key); releaseErr != nil {
			s.logger.LogAttrs(ctx, slog.LevelError, "failed to release reminder receipt",
				slog.String("userID", recipient.ID.String()),
				slog.String("medicationID", medication.ID.String()),
				slog.String("error", releaseErr.Error()),
			)
		}

		if errors.Is(err, service.ErrTokenInvalid) {
			if clearErr := s.userRepo.ClearDeviceToken(ctx, recipient.ID); clearErr != nil {
				return errors.Wrap(clearErr, "failed to clear dead device token")
			}

			return errors.Wrap(err, "device token rejected")
		}

		return errors.Wrap(err, "failed to dispatch reminder")
	}

	result.Sent++

	return nil
}

func reminderContent(recipient, subject *entity.User, medication *entity.Medication) (title, body string) {
	display := medication.Name
	if medication.Dosage != "" {
		display = fmt.Sprintf("%s (%s)", medication.Name, medication.Dosage)
	}

	if recipient.ID == subject.ID {
		return "Medication reminder", fmt.Sprintf("Time to take %s", display)
	}

	return "Medication reminder", fmt.Sprintf("Time for %s to take %s", subject.Name, display)
}
