package impl

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"dosetrack/internal/domain/entity"
	"dosetrack/internal/domain/service"
	mockRepo "dosetrack/internal/mocks/repository"
	mockService "dosetrack/internal/mocks/service"
	"dosetrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// reminderServiceFixtures holds all test dependencies for reminder sweep tests.
type reminderServiceFixtures struct {
	service         usecase.ReminderUsecase
	userRepo        *mockRepo.MockUserRepository
	medicationRepo  *mockRepo.MockMedicationRepository
	doseRepo        *mockRepo.MockDoseRepository
	receiptRepo     *mockRepo.MockReminderReceiptRepository
	notificationSvc *mockService.MockNotificationService
}

func createTestReminderService(t *testing.T) reminderServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	medicationRepo := mockRepo.NewMockMedicationRepository(t)
	doseRepo := mockRepo.NewMockDoseRepository(t)
	receiptRepo := mockRepo.NewMockReminderReceiptRepository(t)
	notificationSvc := mockService.NewMockNotificationService(t)

	service := NewReminderService(
		userRepo, medicationRepo, doseRepo, receiptRepo, notificationSvc,
		slog.New(slog.DiscardHandler), time.UTC,
	)

	return reminderServiceFixtures{
		service:         service,
		userRepo:        userRepo,
		medicationRepo:  medicationRepo,
		doseRepo:        doseRepo,
		receiptRepo:     receiptRepo,
		notificationSvc: notificationSvc,
	}
}

func sweepUser(id uuid.UUID, token string) *entity.User {
	return &entity.User{ID: id, Name: "Alice", DeviceToken: token}
}

func TestReminderService_Sweep_DispatchesDueSlot(t *testing.T) {
	fx := createTestReminderService(t)

	ctx := context.Background()
	now := time.Date(2024, 1, 15, 8, 0, 0, 0, time.UTC)
	userID := uuid.New()
	medicationID := uuid.New()
	user := sweepUser(userID, "token-1")

	fx.userRepo.EXPECT().FindNotifiableUsers(ctx).Return([]*entity.User{user}, nil)
	fx.medicationRepo.EXPECT().
		FindMedicationsByUser(ctx, userID).
		Return([]*entity.Medication{{
			ID:     medicationID,
			UserID: userID,
			Name:   "Amoxicillin",
			Dosage: "500mg",
			Times:  []string{"08:00", "20:00"},
		}}, nil)
	fx.doseRepo.EXPECT().MaterializeDoses(ctx, mock.Anything).Return(nil)

	expectedKey := entity.ReminderKey{
		UserID:       userID,
		MedicationID: medicationID,
		Slot:         "08:00",
		Day:          "2024-01-15",
		DependentID:  uuid.Nil,
	}
	fx.receiptRepo.EXPECT().Claim(ctx, expectedKey, now).Return(true, nil)
	fx.notificationSvc.EXPECT().
		SendReminder(ctx, "token-1", "Medication reminder", "Time to take Amoxicillin (500mg)", mock.Anything).
		Return(nil)
	fx.userRepo.EXPECT().FindDependents(ctx, userID).Return(nil, nil)

	result, err := fx.service.Sweep(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 1, result.UsersProcessed)
	assert.Equal(t, 1, result.Sent)
	assert.Equal(t, 0, result.Suppressed)
	assert.Equal(t, 0, result.Failures)
}

func TestReminderService_Sweep_SuppressesAlreadyClaimedKey(t *testing.T) {
	fx := createTestReminderService(t)

	ctx := context.Background()
	now := time.Date(2024, 1, 15, 8, 0, 0, 0, time.UTC)
	userID := uuid.New()
	user := sweepUser(userID, "token-1")

	fx.userRepo.EXPECT().FindNotifiableUsers(ctx).Return([]*entity.User{user}, nil)
	fx.medicationRepo.EXPECT().
		FindMedicationsByUser(ctx, userID).
		Return([]*entity.Medication{{
			ID:     uuid.New(),
			UserID: userID,
			Name:   "Amoxicillin",
			Times:  []string{"08:00"},
		}}, nil)
	fx.doseRepo.EXPECT().MaterializeDoses(ctx, mock.Anything).Return(nil)
	fx.receiptRepo.EXPECT().Claim(ctx, mock.Anything, now).Return(false, nil)
	fx.userRepo.EXPECT().FindDependents(ctx, userID).Return(nil, nil)

	result, err := fx.service.Sweep(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Sent)
	assert.Equal(t, 1, result.Suppressed)
}

func TestReminderService_Sweep_SkipsSlotNotDueNow(t *testing.T) {
	fx := createTestReminderService(t)

	ctx := context.Background()
	now := time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC)
	userID := uuid.New()
	user := sweepUser(userID, "token-1")

	fx.userRepo.EXPECT().FindNotifiableUsers(ctx).Return([]*entity.User{user}, nil)
	fx.medicationRepo.EXPECT().
		FindMedicationsByUser(ctx, userID).
		Return([]*entity.Medication{{
			ID:     uuid.New(),
			UserID: userID,
			Name:   "Amoxicillin",
			Times:  []string{"08:00", "20:00"},
		}}, nil)
	fx.doseRepo.EXPECT().MaterializeDoses(ctx, mock.Anything).Return(nil)
	fx.userRepo.EXPECT().FindDependents(ctx, userID).Return(nil, nil)

	result, err := fx.service.Sweep(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Sent)
	assert.Equal(t, 0, result.Suppressed)
}

// A failed dispatch releases the claim so the next tick can retry,
// instead of permanently suppressing the reminder.
func TestReminderService_Sweep_ReleasesClaimOnSendFailure(t *testing.T) {
	fx := createTestReminderService(t)

	ctx := context.Background()
	now := time.Date(2024, 1, 15, 8, 0, 0, 0, time.UTC)
	userID := uuid.New()
	medicationID := uuid.New()
	user := sweepUser(userID, "token-1")

	expectedKey := entity.ReminderKey{
		UserID:       userID,
		MedicationID: medicationID,
		Slot:         "08:00",
		Day:          "2024-01-15",
		DependentID:  uuid.Nil,
	}

	fx.userRepo.EXPECT().FindNotifiableUsers(ctx).Return([]*entity.User{user}, nil)
	fx.medicationRepo.EXPECT().
		FindMedicationsByUser(ctx, userID).
		Return([]*entity.Medication{{
			ID:     medicationID,
			UserID: userID,
			Name:   "Amoxicillin",
			Times:  []string{"08:00"},
		}}, nil)
	fx.doseRepo.EXPECT().MaterializeDoses(ctx, mock.Anything).Return(nil)
	fx.receiptRepo.EXPECT().Claim(ctx, expectedKey, now).Return(true, nil)
	fx.notificationSvc.EXPECT().
		SendReminder(ctx, "token-1", mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("fcm unavailable"))
	fx.receiptRepo.EXPECT().Release(ctx, expectedKey).Return(nil)

	result, err := fx.service.Sweep(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Sent)
	assert.Equal(t, 1, result.Failures)
}

func TestReminderService_Sweep_DeadTokenIsCleared(t *testing.T) {
	fx := createTestReminderService(t)

	ctx := context.Background()
	now := time.Date(2024, 1, 15, 8, 0, 0, 0, time.UTC)
	userID := uuid.New()
	medicationID := uuid.New()
	user := sweepUser(userID, "dead-token")

	fx.userRepo.EXPECT().FindNotifiableUsers(ctx).Return([]*entity.User{user}, nil)
	fx.medicationRepo.EXPECT().
		FindMedicationsByUser(ctx, userID).
		Return([]*entity.Medication{{
			ID:     medicationID,
			UserID: userID,
			Name:   "Amoxicillin",
			Times:  []string{"08:00"},
		}}, nil)
	fx.doseRepo.EXPECT().MaterializeDoses(ctx, mock.Anything).Return(nil)
	fx.receiptRepo.EXPECT().Claim(ctx, mock.Anything, now).Return(true, nil)
	fx.notificationSvc.EXPECT().
		SendReminder(ctx, "dead-token", mock.Anything, mock.Anything, mock.Anything).
		Return(service.ErrTokenInvalid)
	fx.receiptRepo.EXPECT().Release(ctx, mock.Anything).Return(nil)
	fx.userRepo.EXPECT().ClearDeviceToken(ctx, userID).Return(nil)

	result, err := fx.service.Sweep(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Failures)
}

// Guardian fan-out: the guardian receives one reminder per dependent, and
// each dependent's key carries that dependent's id so one send never
// suppresses a sibling's.
func TestReminderService_Sweep_GuardianFanOutKeysPerDependent(t *testing.T) {
	fx := createTestReminderService(t)

	ctx := context.Background()
	now := time.Date(2024, 1, 15, 8, 0, 0, 0, time.UTC)
	guardianID := uuid.New()
	childAID := uuid.New()
	childBID := uuid.New()
	medAID := uuid.New()
	medBID := uuid.New()
	guardian := sweepUser(guardianID, "guardian-token")

	fx.userRepo.EXPECT().FindNotifiableUsers(ctx).Return([]*entity.User{guardian}, nil)
	fx.medicationRepo.EXPECT().FindMedicationsByUser(ctx, guardianID).Return(nil, nil)
	fx.userRepo.EXPECT().FindDependents(ctx, guardianID).Return([]*entity.User{
		{ID: childAID, Name: "Bobby"},
		{ID: childBID, Name: "Cindy"},
	}, nil)
	fx.medicationRepo.EXPECT().
		FindMedicationsByUser(ctx, childAID).
		Return([]*entity.Medication{{ID: medAID, UserID: childAID, Name: "Ritalin", Times: []string{"08:00"}}}, nil)
	fx.medicationRepo.EXPECT().
		FindMedicationsByUser(ctx, childBID).
		Return([]*entity.Medication{{ID: medBID, UserID: childBID, Name: "Singulair", Times: []string{"08:00"}}}, nil)
	fx.doseRepo.EXPECT().MaterializeDoses(ctx, mock.Anything).Return(nil).Times(2)

	keyA := entity.ReminderKey{
		UserID: guardianID, MedicationID: medAID,
		Slot: "08:00", Day: "2024-01-15", DependentID: childAID,
	}
	keyB := entity.ReminderKey{
		UserID: guardianID, MedicationID: medBID,
		Slot: "08:00", Day: "2024-01-15", DependentID: childBID,
	}
	fx.receiptRepo.EXPECT().Claim(ctx, keyA, now).Return(true, nil)
	fx.receiptRepo.EXPECT().Claim(ctx, keyB, now).Return(true, nil)
	fx.notificationSvc.EXPECT().
		SendReminder(ctx, "guardian-token", "Medication reminder", "Time for Bobby to take Ritalin", mock.Anything).
		Return(nil)
	fx.notificationSvc.EXPECT().
		SendReminder(ctx, "guardian-token", "Medication reminder", "Time for Cindy to take Singulair", mock.Anything).
		Return(nil)

	result, err := fx.service.Sweep(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Sent)
}

// A failing user is logged and counted, never allowed to abort the
// remaining users in the same sweep.
func TestReminderService_Sweep_IsolatesPerUserFailures(t *testing.T) {
	fx := createTestReminderService(t)

	ctx := context.Background()
	now := time.Date(2024, 1, 15, 8, 0, 0, 0, time.UTC)
	brokenID := uuid.New()
	healthyID := uuid.New()
	medID := uuid.New()

	fx.userRepo.EXPECT().FindNotifiableUsers(ctx).Return([]*entity.User{
		sweepUser(brokenID, "token-1"),
		sweepUser(healthyID, "token-2"),
	}, nil)
	fx.medicationRepo.EXPECT().
		FindMedicationsByUser(ctx, brokenID).
		Return(nil, errors.New("connection reset"))
	fx.medicationRepo.EXPECT().
		FindMedicationsByUser(ctx, healthyID).
		Return([]*entity.Medication{{ID: medID, UserID: healthyID, Name: "Amoxicillin", Times: []string{"08:00"}}}, nil)
	fx.doseRepo.EXPECT().MaterializeDoses(ctx, mock.Anything).Return(nil)
	fx.receiptRepo.EXPECT().Claim(ctx, mock.Anything, now).Return(true, nil)
	fx.notificationSvc.EXPECT().
		SendReminder(ctx, "token-2", mock.Anything, mock.Anything, mock.Anything).
		Return(nil)
	fx.userRepo.EXPECT().FindDependents(ctx, healthyID).Return(nil, nil)

	result, err := fx.service.Sweep(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 2, result.UsersProcessed)
	assert.Equal(t, 1, result.Sent)
	assert.Equal(t, 1, result.Failures)
}
