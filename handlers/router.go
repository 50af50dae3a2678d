package handlers

import (
	"log/slog"
	"net/http"

	"cipher-backend/config"
	"cipher-backend/metrics"
	"cipher-backend/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter wires middleware and API routes. cfg must have passed
// config.Validate. m may be nil when metrics are disabled.
func NewRouter(cfg *models.Config, m *metrics.Metrics, logger *slog.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestID())
	router.Use(AccessLog(logger, m))
	router.Use(BodyLimit(cfg.Server.MaxBodyBytes))
	router.Use(cors.New(config.CORSConfig(cfg.Server)))

	cipherHandler := NewCipherHandler(m, logger)

	// API Routes
	api := router.Group("/api/v1")
	{
		api.GET("/health", cipherHandler.HealthCheck)

		cipher := api.Group("/cipher")
		{
			cipher.POST("/encrypt", cipherHandler.Encrypt)
			cipher.POST("/decrypt", cipherHandler.Decrypt)
			cipher.POST("/validate", cipherHandler.ValidateKey)
		}
	}

	if m != nil {
		router.GET(cfg.Metrics.Path, gin.WrapH(m.Handler()))
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, models.CipherResponse{
			Success: false,
			Message: "route not found",
		})
	})

	return router
}
