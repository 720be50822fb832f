// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"dosetrack/internal/delivery/http/middleware"
	"dosetrack/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	MedicationHandler *handler.MedicationHandler
	DoseHandler       *handler.DoseHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	medicationHandler *handler.MedicationHandler
	doseHandler       *handler.DoseHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		medicationHandler: params.MedicationHandler,
		doseHandler:       params.DoseHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Medication routes that require authentication
	medsGroup := e.Group("/meds")
	medsGroup.Use(r.authMiddleware.Authenticate)
	{
		medsGroup.GET("", r.medicationHandler.ListMedications)
		medsGroup.POST("", r.medicationHandler.CreateMedication)
		medsGroup.DELETE("/:id", r.medicationHandler.DeleteMedication)
	}

	// Dose routes that require authentication
	dosesGroup := e.Group("/doses")
	dosesGroup.Use(r.authMiddleware.Authenticate)
	{
		dosesGroup.GET("", r.doseHandler.ListDoses)
		dosesGroup.POST("/:id/taken", r.doseHandler.ConfirmDose)
	}
}
