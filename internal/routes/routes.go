package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"clinic-appointment-server/internal/cache"
	"clinic-appointment-server/internal/config"
	"clinic-appointment-server/internal/handlers"
	"clinic-appointment-server/internal/middleware"
	"clinic-appointment-server/internal/models"
	"clinic-appointment-server/internal/services"
)

// SetupRoutes configures the application routes. Role gates follow the
// original access model: /doctors/** for doctors, /patients/** and
// /appointments/** for patients, /medications/** for any authenticated
// role, /admin/** for the admin.
func SetupRoutes(router *gin.Engine, db *gorm.DB, cfg *config.Config, c *cache.Cache) {
	// Services
	appointmentService := services.NewAppointmentService(db, c)
	doctorService := services.NewDoctorService(db, appointmentService)
	patientService := services.NewPatientService(db)
	medicationService := services.NewMedicationService(db)
	adminService := services.NewAdminService(db)

	// Handlers
	authHandler := handlers.NewAuthHandler(db, cfg, adminService, doctorService, patientService)
	appointmentHandler := handlers.NewAppointmentHandler(appointmentService)
	doctorHandler := handlers.NewDoctorHandler(doctorService)
	patientHandler := handlers.NewPatientHandler(patientService)
	medicationHandler := handlers.NewMedicationHandler(medicationService)
	adminHandler := handlers.NewAdminHandler(doctorService, patientService)

	// Public routes (no authentication required)
	router.GET("/login", authHandler.LoginForm)
	router.POST("/login", authHandler.Login)
	router.POST("/refresh-token", authHandler.RefreshToken)
	router.POST("/doctors/register", doctorHandler.Register)
	router.POST("/patients/register", patientHandler.Register)

	// Patient-facing appointment routes
	appointmentRoutes := router.Group("/appointments")
	appointmentRoutes.Use(middleware.AuthMiddleware(cfg), middleware.RoleAuthMiddleware(models.RolePatient))
	{
		appointmentRoutes.GET("/availableDoctors/results", appointmentHandler.AvailableDoctors)
		appointmentRoutes.GET("/availableAppointments", appointmentHandler.AvailableAppointments)
		appointmentRoutes.POST("/book", appointmentHandler.Book)
		appointmentRoutes.POST("/cancel", appointmentHandler.Cancel)
		appointmentRoutes.GET("/viewAll", appointmentHandler.ViewAll)
		appointmentRoutes.GET("/view/:id", appointmentHandler.View)
		appointmentRoutes.GET("/listMed", medicationHandler.List)
	}

	// Patient profile routes
	patientRoutes := router.Group("/patients")
	patientRoutes.Use(middleware.AuthMiddleware(cfg), middleware.RoleAuthMiddleware(models.RolePatient))
	{
		patientRoutes.GET("/view", patientHandler.View)
		patientRoutes.PUT("/update", patientHandler.Update)
		patientRoutes.GET("/doctors", patientHandler.Doctors)
	}

	// Doctor routes
	doctorRoutes := router.Group("/doctors")
	doctorRoutes.Use(middleware.AuthMiddleware(cfg), middleware.RoleAuthMiddleware(models.RoleDoctor))
	{
		doctorRoutes.GET("/view", doctorHandler.View)
		doctorRoutes.GET("/patients", doctorHandler.Patients)
		doctorRoutes.GET("/appointments", appointmentHandler.DoctorAppointments)
		doctorRoutes.POST("/updateStatus", appointmentHandler.UpdateStatus)
	}

	// Medication routes - any authenticated role
	medicationRoutes := router.Group("/medications")
	medicationRoutes.Use(middleware.AuthMiddleware(cfg))
	{
		medicationRoutes.POST("/addMed", medicationHandler.Add)
		medicationRoutes.POST("/updateMed", medicationHandler.Update)
		medicationRoutes.POST("/removeMed", medicationHandler.Remove)
		medicationRoutes.GET("/listMed", medicationHandler.List)
	}

	// Admin routes
	adminRoutes := router.Group("/admin")
	adminRoutes.Use(middleware.AuthMiddleware(cfg), middleware.RoleAuthMiddleware(models.RoleAdmin))
	{
		adminRoutes.GET("/docList", adminHandler.ListDoctors)
		adminRoutes.GET("/patList", adminHandler.ListPatients)
		adminRoutes.POST("/docUpdate/:id", adminHandler.UpdateDoctor)
		adminRoutes.POST("/deleteDoc/:id", adminHandler.DeleteDoctor)
		adminRoutes.POST("/patUpdate/:id", adminHandler.UpdatePatient)
		adminRoutes.POST("/patDelete/:id", adminHandler.DeletePatient)
	}

	// Authenticated logout (works for every role)
	authRoutes := router.Group("/auth")
	authRoutes.Use(middleware.AuthMiddleware(cfg))
	{
		authRoutes.POST("/logout", authHandler.Logout)
	}

	// Simple health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "UP"})
	})
}
