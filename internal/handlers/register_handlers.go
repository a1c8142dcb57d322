package handlers

import (
	"fmt"

	"github.com/SscSPs/advisor_client_app/cmd/docs"
	portssvc "github.com/SscSPs/advisor_client_app/internal/core/ports/services"
	"github.com/SscSPs/advisor_client_app/internal/middleware"
	"github.com/SscSPs/advisor_client_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) error {
	if _, err := registerValidators(); err != nil {
		return err
	}

	r.GET("/health", getHealth)

	// Register public authentication routes
	if err := registerAuthRoutes(r, cfg, services.Advisor); err != nil {
		return err
	}

	// Setup API v1 routes with Auth Middleware, passing service interfaces
	setupAPIV1Routes(r, cfg, services)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
	return nil
}

// setupAPIV1Routes configures the protected /api/v1 groups
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	registerAdvisorRoutes(v1, service.Advisor)
	registerClientRoutes(v1, service.Advisor)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

func loginLimiterRate(cfg *config.Config) string {
	if cfg.LoginRateLimit == "" {
		return "5-M"
	}
	return cfg.LoginRateLimit
}

func registerAuthRoutes(r *gin.Engine, cfg *config.Config, advisorService portssvc.AdvisorSvcFacade) error {
	h := newAuthHandler(advisorService)

	loginLimiter, err := middleware.NewMemoryLimiter(loginLimiterRate(cfg))
	if err != nil {
		return fmt.Errorf("failed to configure login rate limit: %w", err)
	}

	auth := r.Group("/api/v1/auth")
	{
		auth.POST("/register", h.register)
		auth.POST("/login", middleware.RateLimit(loginLimiter), h.login)
		auth.POST("/forgot-password", h.forgotPassword)
		auth.POST("/reset-password", h.resetPassword)
	}
	return nil
}
