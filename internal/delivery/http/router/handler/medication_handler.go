package handler

import (
	"log/slog"
	"net/http"

	"dosetrack/internal/delivery/http/response"
	"dosetrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MedicationHandler holds dependencies for medication-related handlers.
type MedicationHandler struct {
	uc     usecase.MedicationUsecase
	logger *slog.Logger
}

// NewMedicationHandler is the constructor for MedicationHandler, injected by Fx.
func NewMedicationHandler(uc usecase.MedicationUsecase, logger *slog.Logger) *MedicationHandler {
	return &MedicationHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateMedication handles the medication registration request.
func (h *MedicationHandler) CreateMedication(c echo.Context) error {
	input := new(usecase.CreateMedicationInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid medication input")
	}

	if err := c.Validate(input); err != nil {
		return response.BindingError(c, "VALIDATION_ERROR", "Medication name and times are required")
	}

	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authenticated user")
	}

	medication, err := h.uc.CreateMedication(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, medication, "Medication created successfully")
}

// ListMedications handles the medication listing request.
func (h *MedicationHandler) ListMedications(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authenticated user")
	}

	medications, err := h.uc.ListMedications(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, medications, "")
}

// DeleteMedication handles the medication deletion request.
func (h *MedicationHandler) DeleteMedication(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authenticated user")
	}

	medicationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid medication id")
	}

	if err := h.uc.DeleteMedication(c.Request().Context(), userID, medicationID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Medication deleted successfully")
}

// currentUserID reads the authenticated user's id set by the auth middleware.
func currentUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get("userID").(uuid.UUID)

	return userID, ok
}
