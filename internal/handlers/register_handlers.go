package handlers

import (
	"net/http"

	"github.com/SscSPs/loyalty_token_ledger/cmd/docs"
	portssvc "github.com/SscSPs/loyalty_token_ledger/internal/core/ports/services"
	"github.com/SscSPs/loyalty_token_ledger/internal/metrics"
	"github.com/SscSPs/loyalty_token_ledger/internal/middleware"
	"github.com/SscSPs/loyalty_token_ledger/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	r.GET("/metrics", metrics.Handler())

	setupAPIV1Routes(r, cfg, services)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group. Queries are public; actions
// run under AuthMiddleware, which turns the presented tokens into signers.
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1")
	signed := v1.Group("", middleware.AuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer))

	token := newTokenHandler(services.Token)
	escrow := newEscrowHandler(services.Escrow)
	admin := newAdminHandler(services.Admin)

	registerTokenRoutes(v1, signed, token)
	registerEscrowRoutes(v1, signed, escrow)
	registerAdminRoutes(v1, signed, admin)
	registerActionRoutes(signed, newActionHandler(token, escrow, admin))
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
