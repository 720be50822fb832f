package impl

import (
	"context"
	"testing"
	"time"

	"dosetrack/internal/domain/entity"
	domainerrors "dosetrack/internal/domain/errors"
	mockRepo "dosetrack/internal/mocks/repository"
	"dosetrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// medicationServiceFixtures holds all test dependencies for medication service tests.
type medicationServiceFixtures struct {
	service        usecase.MedicationUsecase
	medicationRepo *mockRepo.MockMedicationRepository
	userRepo       *mockRepo.MockUserRepository
}

func createTestMedicationService(t *testing.T) medicationServiceFixtures {
	medicationRepo := mockRepo.NewMockMedicationRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	service := NewMedicationService(medicationRepo, userRepo, time.UTC)

	return medicationServiceFixtures{
		service:        service,
		medicationRepo: medicationRepo,
		userRepo:       userRepo,
	}
}

func TestMedicationService_CreateMedication_NormalizesTimes(t *testing.T) {
	fx := createTestMedicationService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().
		FindUserByID(ctx, userID).
		Return(&entity.User{ID: userID, Name: "Alice"}, nil)

	fx.medicationRepo.EXPECT().
		CreateMedication(ctx, mock.AnythingOfType("*entity.Medication")).
		Return(nil)

	medication, err := fx.service.CreateMedication(ctx, userID, &usecase.CreateMedicationInput{
		Name:   "Amoxicillin",
		Dosage: "500mg",
		Times:  "8am, 20:00, 8:00 AM",
	})
	require.NoError(t, err)
	require.NotNil(t, medication)
	assert.Equal(t, userID, medication.UserID)
	assert.Equal(t, []string{"08:00", "20:00"}, medication.Times)
}

func TestMedicationService_CreateMedication_AcceptsArrayTimes(t *testing.T) {
	fx := createTestMedicationService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().
		FindUserByID(ctx, userID).
		Return(&entity.User{ID: userID}, nil)

	fx.medicationRepo.EXPECT().
		CreateMedication(ctx, mock.AnythingOfType("*entity.Medication")).
		Return(nil)

	medication, err := fx.service.CreateMedication(ctx, userID, &usecase.CreateMedicationInput{
		Name:  "Metformin",
		Times: []any{"9:5", "21:00"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"09:05", "21:00"}, medication.Times)
}

func TestMedicationService_CreateMedication_ParsesPlainDates(t *testing.T) {
	fx := createTestMedicationService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().
		FindUserByID(ctx, userID).
		Return(&entity.User{ID: userID}, nil)

	fx.medicationRepo.EXPECT().
		CreateMedication(ctx, mock.AnythingOfType("*entity.Medication")).
		Return(nil)

	medication, err := fx.service.CreateMedication(ctx, userID, &usecase.CreateMedicationInput{
		Name:      "Amoxicillin",
		Times:     []any{"08:00"},
		StartDate: "2024-01-10",
		EndDate:   "2024-01-20",
	})
	require.NoError(t, err)
	require.NotNil(t, medication.StartDate)
	require.NotNil(t, medication.EndDate)
	assert.Equal(t, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), *medication.StartDate)
	assert.Equal(t, time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC), *medication.EndDate)
}

func TestMedicationService_CreateMedication_RejectsMalformedDate(t *testing.T) {
	fx := createTestMedicationService(t)

	_, err := fx.service.CreateMedication(context.Background(), uuid.New(), &usecase.CreateMedicationInput{
		Name:      "Amoxicillin",
		Times:     []any{"08:00"},
		StartDate: "01/10/2024",
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestMedicationService_CreateMedication_NameRequired(t *testing.T) {
	fx := createTestMedicationService(t)

	_, err := fx.service.CreateMedication(context.Background(), uuid.New(), &usecase.CreateMedicationInput{
		Name:  "   ",
		Times: []any{"08:00"},
	})
	assert.ErrorIs(t, err, domainerrors.ErrMedicationNameRequired)
}

func TestMedicationService_CreateMedication_TimesRequired(t *testing.T) {
	fx := createTestMedicationService(t)

	_, err := fx.service.CreateMedication(context.Background(), uuid.New(), &usecase.CreateMedicationInput{
		Name:  "Amoxicillin",
		Times: nil,
	})
	assert.ErrorIs(t, err, domainerrors.ErrMedicationTimesRequired)
}

func TestMedicationService_DeleteMedication_Success(t *testing.T) {
	fx := createTestMedicationService(t)

	ctx := context.Background()
	userID := uuid.New()
	medicationID := uuid.New()

	fx.medicationRepo.EXPECT().
		FindMedicationByID(ctx, medicationID).
		Return(&entity.Medication{ID: medicationID, UserID: userID}, nil)

	fx.medicationRepo.EXPECT().
		DeleteMedication(ctx, medicationID).
		Return(nil)

	err := fx.service.DeleteMedication(ctx, userID, medicationID)
	require.NoError(t, err)
}

func TestMedicationService_DeleteMedication_ForeignOwnerReadsAsNotFound(t *testing.T) {
	fx := createTestMedicationService(t)

	ctx := context.Background()
	medicationID := uuid.New()

	fx.medicationRepo.EXPECT().
		FindMedicationByID(ctx, medicationID).
		Return(&entity.Medication{ID: medicationID, UserID: uuid.New()}, nil)

	err := fx.service.DeleteMedication(ctx, uuid.New(), medicationID)
	assert.ErrorIs(t, err, domainerrors.ErrMedicationNotFound)
}
