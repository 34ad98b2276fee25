package routes

import (
	"fmt"

	"match-tracker-backend/internal/api/handlers"
	"match-tracker-backend/internal/api/middleware"
	"match-tracker-backend/internal/auth"
	"match-tracker-backend/internal/config"
	"match-tracker-backend/internal/repository"
	"match-tracker-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application. A broken session
// provider is a startup error: mutation routes are never registered without
// their auth gate, so the server fails closed instead of serving them open.
func SetupRoutes(db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
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
	participantRepo := repository.NewParticipantRepository(db)
	matchRepo := repository.NewMatchRepository(db)

	// Initialize services
	participantService := service.NewParticipantService(participantRepo, validator)
	matchService := service.NewMatchService(matchRepo, validator)

	// Initialize auth configuration and services
	authConfig, err := auth.LoadAuthConfig("config/auth.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to load auth config: %w", err)
	}

	authService, err := auth.NewAuthService(authConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize auth service: %w", err)
	}
	authHandler := auth.NewAuthHandler(authService)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	participantHandler := handlers.NewParticipantHandler(participantService, cfg.AdminRedirectPath)
	matchHandler := handlers.NewMatchHandler(matchService, cfg.AdminRedirectPath)
	publicHandler := handlers.NewPublicHandler(matchService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Auth routes
	authGroup := router.Group("/api/auth")
	{
		providerGroup := authGroup.Group("/:provider")
		{
			providerGroup.GET("/start", authHandler.Start)
			providerGroup.GET("/handler/frame", authHandler.HandlerFrame)
			providerGroup.GET("/refresh", authHandler.Refresh)
		}

		authGroup.POST("/logout", authHandler.Logout)
		authGroup.GET("/validate", authHandler.Validate)
	}

	// Unversioned raw match listing, kept for existing consumers
	router.GET("/api/matches", publicHandler.ListMatchesRaw)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Read endpoints are public
		v1.GET("/participants", participantHandler.ListParticipants)
		v1.GET("/participants/:id", participantHandler.GetParticipant)
		v1.GET("/matches", matchHandler.ListMatches)
		v1.GET("/matches/:id", matchHandler.GetMatch)

		// Every mutation goes through the same auth gate
		mutations := v1.Group("")
		mutations.Use(authMiddleware.RequireAuth())
		{
			mutations.POST("/participants", participantHandler.CreateParticipant)
			mutations.PUT("/participants/:id", participantHandler.UpdateParticipant)
			mutations.DELETE("/participants/:id", participantHandler.DeleteParticipant)

			mutations.POST("/matches", matchHandler.CreateMatch)
			mutations.PUT("/matches/:id", matchHandler.UpdateMatch)
			mutations.DELETE("/matches/:id", matchHandler.DeleteMatch)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router, nil
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
