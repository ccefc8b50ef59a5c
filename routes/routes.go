package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"orthonova/cache"
	"orthonova/config"
	"orthonova/controllers"
	"orthonova/handlers"
	"orthonova/middlewares"
	"orthonova/repositories"
	"orthonova/services"
)

// SetupRoutes initializes the routes and middleware for the server
func SetupRoutes(cache *cache.Cache, config *config.AppConfig, db *gorm.DB) http.Handler {
	// Set Gin to release mode
	gin.SetMode(gin.ReleaseMode)

	router := gin.Default()

	// Apply Bearer token validation to all routes
	router.Use(middlewares.ValidateBearerToken(config.GetBearerToken()))

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "https://clinic.orthonova.example"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	// Apply rate limiter middleware
	router.Use(middlewares.NewRateLimiterMiddleware(middlewares.RateLimiterConfig{
		RequestsPerSecond: 15,
		Burst:             30,
	}))

	// Apply logging middleware
	router.Use(middlewares.LoggingMiddleware())

	// Initialize repositories, services, and handlers
	patientRepo := repositories.NewPatientRepository(cache)
	doctorRepo := repositories.NewDoctorRepository(cache)
	serviceRepo := repositories.NewServiceRepository(cache)
	billRepo := repositories.NewBillRepository(cache)
	prescriptionRepo := repositories.NewPrescriptionRepository(cache)
	userRepo := repositories.NewUserRepository(db, cache)

	patientHandler := handlers.NewPatientHandler(services.NewPatientService(patientRepo))
	doctorHandler := handlers.NewDoctorHandler(services.NewDoctorService(doctorRepo))
	serviceHandler := handlers.NewServiceHandler(services.NewCatalogService(serviceRepo))
	billingHandler := handlers.NewBillingHandler(services.NewBillingService(billRepo))
	prescriptionHandler := handlers.NewPrescriptionHandler(services.NewPrescriptionService(prescriptionRepo))
	authHandler := handlers.NewAuthHandler(services.NewUserService(userRepo))

	// Register routes
	controllers.SetupClinicRoutes(
		router,
		patientHandler,
		doctorHandler,
		serviceHandler,
		billingHandler,
		prescriptionHandler,
	)

	authController := controllers.NewAuthController(authHandler)
	authController.RegisterRoutes(router)

	controllers.SetupRootRoute(router)

	return router
}
