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

// DoseHandler holds dependencies for dose-related handlers.
type DoseHandler struct {
	uc     usecase.DoseUsecase
	logger *slog.Logger
}

// NewDoseHandler is the constructor for DoseHandler, injected by Fx.
func NewDoseHandler(uc usecase.DoseUsecase, logger *slog.Logger) *DoseHandler {
	return &DoseHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListDoses handles the dose listing request. Reading a window is what
// materializes its dose occurrences.
func (h *DoseHandler) ListDoses(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authenticated user")
	}

	query := &usecase.DoseQuery{
		Selector: c.QueryParam("window"),
		Start:    c.QueryParam("start"),
		End:      c.QueryParam("end"),
	}

	output, err := h.uc.ListDoses(c.Request().Context(), userID, query)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// ConfirmDose handles the dose confirmation request.
func (h *DoseHandler) ConfirmDose(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authenticated user")
	}

	doseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid dose id")
	}

	input := &usecase.ConfirmDoseInput{}
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid confirmation input")
	}
	// Bind skips query params on POST; the code may come either way.
	if input.GuardianCode == "" {
		input.GuardianCode = c.QueryParam("guardian_code")
	}

	dose, err := h.uc.ConfirmDose(c.Request().Context(), userID, doseID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, dose, "Dose confirmed")
}
