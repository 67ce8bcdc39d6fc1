// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"lifeline/config"
	"lifeline/internal/delivery/http/middleware"
	"lifeline/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	EmergencyHandler    *handler.EmergencyHandler
	HospitalHandler     *handler.HospitalHandler
	PatientHandler      *handler.PatientHandler
	NotificationHandler *handler.NotificationHandler
	TestHandler         *handler.TestHandler
	AuthMiddleware      *middleware.AuthMiddleware
	Config              *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	emergencyHandler    *handler.EmergencyHandler
	hospitalHandler     *handler.HospitalHandler
	patientHandler      *handler.PatientHandler
	notificationHandler *handler.NotificationHandler
	testHandler         *handler.TestHandler
	authMiddleware      *middleware.AuthMiddleware
	config              *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		emergencyHandler:    params.EmergencyHandler,
		hospitalHandler:     params.HospitalHandler,
		patientHandler:      params.PatientHandler,
		notificationHandler: params.NotificationHandler,
		testHandler:         params.TestHandler,
		authMiddleware:      params.AuthMiddleware,
		config:              params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// API v1 routes
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate) // All API v1 routes require authentication

	// Emergency lifecycle routes
	emergenciesGroup := apiV1.Group("/emergencies")
	{
		emergenciesGroup.POST("", r.emergencyHandler.CreateEmergency)
		emergenciesGroup.GET("", r.emergencyHandler.ListEmergenciesByStatus)
		emergenciesGroup.GET("/:id", r.emergencyHandler.GetEmergency)
		emergenciesGroup.POST("/:id/status", r.emergencyHandler.UpdateStatus)
		emergenciesGroup.POST("/:id/complete", r.emergencyHandler.CompleteEmergency)
		emergenciesGroup.GET("/:id/notifications", r.notificationHandler.ListEmergencyNotifications)
	}

	// Hospital management routes
	hospitalsGroup := apiV1.Group("/hospitals")
	{
		hospitalsGroup.POST("", r.hospitalHandler.RegisterHospital)
		hospitalsGroup.GET("", r.hospitalHandler.ListHospitals)
		hospitalsGroup.POST("/nearby", r.hospitalHandler.FindNearbyHospitals)
		hospitalsGroup.GET("/:id", r.hospitalHandler.GetHospital)
		hospitalsGroup.POST("/:id/respond", r.emergencyHandler.RespondToEmergency)
		hospitalsGroup.POST("/:id/ambulances", r.hospitalHandler.AddAmbulance)
		hospitalsGroup.GET("/:id/ambulances", r.hospitalHandler.ListAmbulances)
	}

	// Patient management routes
	patientsGroup := apiV1.Group("/patients")
	{
		patientsGroup.POST("", r.patientHandler.RegisterPatient)
		patientsGroup.GET("/:id", r.patientHandler.GetPatient)
		patientsGroup.GET("/:id/emergencies", r.emergencyHandler.ListPatientEmergencies)
		patientsGroup.POST("/:id/contacts", r.patientHandler.AddEmergencyContact)
		patientsGroup.PUT("/:id/push-token", r.patientHandler.UpdatePushToken)
		patientsGroup.GET("/:id/notifications", r.notificationHandler.ListRecipientNotifications)
		patientsGroup.GET("/:id/notifications/unread", r.notificationHandler.CountUnread)
	}

	// Notification read-tracking routes
	notificationsGroup := apiV1.Group("/notifications")
	{
		notificationsGroup.POST("/:id/read", r.notificationHandler.MarkRead)
	}
}

func (r *router) RegisterTestRoutes(e *echo.Echo) {
	// Test routes - only enabled when configured
	if r.config.TestRoutes != nil && r.config.TestRoutes.Enabled {
		// Test routes that require authentication
		testGroup := e.Group("/test")
		testGroup.GET("/public", r.testHandler.TestPublicEndpoint)

		testGroup.Use(r.authMiddleware.Authenticate) // Apply JWT authentication middleware
		{
			testGroup.GET("/auth", r.testHandler.TestAuthMiddleware)
		}
	}
}
