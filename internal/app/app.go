package app

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fondpulse/fondpulse/config"
	"github.com/fondpulse/fondpulse/internal/api"
	"github.com/fondpulse/fondpulse/internal/fundapi"
	"github.com/fondpulse/fondpulse/internal/service"
)

// NewFundClient builds the upstream fund API client from configuration.
// Shared by the API server and the snapshot CLI mode.
func NewFundClient(cfg config.Config) *fundapi.HTTPClient {
	timeout := time.Duration(cfg.FundsAPI.TimeoutSeconds) * time.Second
	return fundapi.NewHTTPClient(cfg.FundsAPI.BaseURL, timeout)
}

// InitializeApp sets up all application dependencies and returns a fully
// configured Gin router, a cleanup function for graceful shutdown, and any
// error encountered during initialization.
//
// Responsibilities:
//   - Builds the upstream fund API client from configuration.
//   - Initializes the service layer (variation pipeline + fan-out).
//   - Creates the HTTP handler layer to handle requests.
//   - Configures the Gin router with all API routes.
//   - Registers health and readiness probes.
//   - Provides a cleanup function to release resources (idle connections).
//
// Returns:
//   - *gin.Engine: the configured Gin HTTP router.
//   - func(): cleanup function to be executed on shutdown.
//   - error: any initialization error that occurred.
func InitializeApp() (*gin.Engine, func(), error) {
	// Load global configuration
	cfg := config.AppConfig

	// Upstream fund API client
	client := NewFundClient(cfg)

	// Service layer (business logic)
	svc := service.NewVariationService(client, cfg.FundsAPI.MaxParallel)

	// HTTP handler layer (business logic to HTTP mapping)
	handler := api.NewHandler(svc)

	// Gin router with routes
	router := api.NewRouter(handler)

	// Health and readiness probes
	healthHandler := api.NewHealthHandler(client.Ping)
	healthHandler.Register(router)

	// Cleanup resources on shutdown
	cleanup := func() {
		client.CloseIdle()
	}

	return router, cleanup, nil
}
