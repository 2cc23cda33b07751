package routes

import (
	"dental-center-server/internal/auth"
	"dental-center-server/internal/handlers"
	"dental-center-server/internal/middleware"
	"dental-center-server/internal/repository"
	"dental-center-server/internal/storage"

	"github.com/gin-gonic/gin"
)

// SetupRoutes configures the application routes.
func SetupRoutes(router *gin.Engine, store *storage.Store, gate *auth.Gate) {
	// Initialize repositories and handlers
	patients := repository.NewPatientRepository(store)
	appointments := repository.NewAppointmentRepository(store)
	services := repository.NewServiceRepository(store)

	authHandler := handlers.NewAuthHandler(gate)
	patientHandler := handlers.NewPatientHandler(patients)
	appointmentHandler := handlers.NewAppointmentHandler(appointments, patients, services)
	serviceHandler := handlers.NewServiceHandler(services)
	dashboardHandler := handlers.NewDashboardHandler(patients, appointments)

	// Public routes (no session required)
	public := router.Group("/api/v1")
	{
		authRoutes := public.Group("/auth")
		{
			authRoutes.POST("/login", authHandler.Login)
		}
	}

	// Session-gated routes
	private := router.Group("/api/v1")
	private.Use(middleware.RequireSession(gate))
	{
		authRoutesPrivate := private.Group("/auth")
		{
			authRoutesPrivate.POST("/logout", authHandler.Logout)
			authRoutesPrivate.GET("/profile", authHandler.GetProfile)
		}

		patientRoutes := private.Group("/patients")
		{
			patientRoutes.POST("", patientHandler.CreatePatient)
			patientRoutes.GET("", patientHandler.GetPatients)
			patientRoutes.GET("/:id", patientHandler.GetPatientByID)
			patientRoutes.PATCH("/:id", patientHandler.UpdatePatient)
			patientRoutes.DELETE("/:id", patientHandler.DeletePatient)
		}

		appointmentRoutes := private.Group("/appointments")
		{
			appointmentRoutes.POST("", appointmentHandler.CreateAppointment)
			appointmentRoutes.GET("", appointmentHandler.GetAppointments)
			appointmentRoutes.GET("/:id", appointmentHandler.GetAppointmentByID)
			appointmentRoutes.PATCH("/:id", appointmentHandler.UpdateAppointment)

			// Lifecycle transitions live on their own endpoint so the legal
			// moves can be checked in one place
			appointmentRoutes.PATCH("/:id/status", appointmentHandler.UpdateAppointmentStatus)

			appointmentRoutes.DELETE("/:id", appointmentHandler.DeleteAppointment)
		}

		serviceRoutes := private.Group("/services")
		{
			serviceRoutes.POST("", serviceHandler.CreateService)
			serviceRoutes.GET("", serviceHandler.GetServices)
			serviceRoutes.GET("/:id", serviceHandler.GetServiceByID)
			serviceRoutes.PATCH("/:id", serviceHandler.UpdateService)
			serviceRoutes.DELETE("/:id", serviceHandler.DeleteService)
		}

		dashboardRoutes := private.Group("/dashboard")
		{
			dashboardRoutes.GET("/stats", dashboardHandler.GetStats)
		}
	}

	// Simple health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "UP"})
	})
}
