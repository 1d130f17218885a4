package routes

import (
	"communication-tracker-backend/internal/api/handlers"
	"communication-tracker-backend/internal/api/middleware"
	"communication-tracker-backend/internal/config"
	"communication-tracker-backend/internal/logger"
	"communication-tracker-backend/internal/repository"
	"communication-tracker-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	companyRepo := repository.NewCompanyRepository(db)
	methodRepo := repository.NewMethodRepository(db)
	communicationRepo := repository.NewCommunicationRepository(db)

	// Initialize services
	companyService := service.NewCompanyService(companyRepo, validator, cfg.DefaultPeriodicityDays)
	methodService := service.NewMethodService(methodRepo, validator)
	communicationService := service.NewCommunicationService(communicationRepo, companyRepo, validator)
	cadenceService := service.NewCadenceService(companyRepo, communicationRepo, logger.WithComponent("cadence"))

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	companyHandler := handlers.NewCompanyHandler(companyService)
	methodHandler := handlers.NewMethodHandler(methodService)
	communicationHandler := handlers.NewCommunicationHandler(communicationService)
	cadenceHandler := handlers.NewCadenceHandler(cadenceService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes
	api := router.Group("/api")
	{
		companies := api.Group("/companies")
		{
			companies.POST("", companyHandler.CreateCompany)
			companies.GET("", companyHandler.GetCompanies)
			companies.GET("/:id", companyHandler.GetCompany)
			companies.PUT("/:id", companyHandler.UpdateCompany)
			companies.DELETE("/:id", companyHandler.DeleteCompany)
		}

		methods := api.Group("/methods")
		{
			methods.POST("", methodHandler.CreateMethod)
			methods.GET("", methodHandler.GetMethods)
			methods.PUT("/:id", methodHandler.UpdateMethod)
			methods.DELETE("/:id", methodHandler.DeleteMethod)
		}

		communications := api.Group("/communications")
		{
			communications.POST("", communicationHandler.CreateCommunication)
			communications.GET("", communicationHandler.GetCommunications)
			communications.PUT("/:id", communicationHandler.UpdateCommunication)
			communications.DELETE("/:id", communicationHandler.DeleteCommunication)
		}

		api.GET("/dashboard", cadenceHandler.GetDashboard)
		api.GET("/notifications", cadenceHandler.GetNotifications)
	}

	// Unknown routes get the failure envelope rather than gin's default body
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{"success": false, "error": "Route not found"})
	})

	return router
}
