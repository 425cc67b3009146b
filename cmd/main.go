package main

//
//  @title           fondpulse API
//  @version         1.0
//  @description     Fund price ingestion & monthly variation service.
//  @termsOfService  https://github.com/fondpulse/fondpulse
//  @contact.name    API Support
//  @contact.url     https://github.com/fondpulse/fondpulse
//  @contact.email   support@example.com
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        funds
//  @tag.description Endpoints for querying fund monthly variations
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fondpulse/fondpulse/config"
	_ "github.com/fondpulse/fondpulse/docs" // swagger docs
	"github.com/fondpulse/fondpulse/internal/app"
	"github.com/fondpulse/fondpulse/internal/logger"
	"github.com/fondpulse/fondpulse/internal/service"
)

// startServer initializes and starts the HTTP server in a separate goroutine.
//
// Parameters:
//   - router (http.Handler): The HTTP router (Gin Engine) configured with all routes.
//   - port (string): The port where the server will listen for incoming requests.
//
// Returns:
//   - *http.Server: The initialized HTTP server instance.
func startServer(router http.Handler, port string) *http.Server {
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.L().Info().Str("port", port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal().Err(err).Msg("server failed to start")
		}
	}()

	return server
}

// gracefulShutdown gracefully terminates the HTTP server and cleans up
// resources when an OS interrupt signal (SIGINT, SIGTERM) is received.
//
// Parameters:
//   - ctx (context.Context): A context with timeout for graceful shutdown.
//   - server (*http.Server): The HTTP server instance to shut down.
//   - cleanup (func()): Cleanup callback to release resources.
func gracefulShutdown(ctx context.Context, server *http.Server, cleanup func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	logger.L().Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.L().Fatal().Err(err).Msg("server forced to shutdown")
	}

	cleanup()
	logger.L().Info().Msg("server exited gracefully")
}

// runSnapshot fetches one fund, runs the variation pipeline, and prints the
// result as indented JSON to stdout. This is the batch driver: the core is
// UI-agnostic and a cron job piping this output somewhere is a valid
// consumer.
func runSnapshot(ctx context.Context, fundID int, startDate, endDate string) error {
	client := app.NewFundClient(config.AppConfig)
	defer client.CloseIdle()

	svc := service.NewVariationService(client, config.AppConfig.FundsAPI.MaxParallel)

	result, err := svc.GetFundVariations(ctx, fundID, startDate, endDate)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

// main is the entry point of the fondpulse application.
//
// Modes (selected via --mode flag):
//   - api:      Starts the REST API exposing fund monthly variations.
//   - snapshot: One-shot batch: fetches one fund, prints its variation
//     series and statistics as JSON, and exits.
//
// Flags:
//   - --mode:  Execution mode ("api" or "snapshot"). Default: "api".
//   - --fund:  Fund id for snapshot mode.
//   - --start: Optional range start (YYYY-MM-DD) for snapshot mode.
//   - --end:   Optional range end (YYYY-MM-DD) for snapshot mode.
//   - --port:  Port for the API server. Defaults to value from config (SERVER_PORT).
func main() {
	ctx := context.Background()

	// Load configuration from environment or .env file
	config.LoadConfig()

	// Initialize JSON logger
	logger.Init()

	// Parse CLI flags (override config defaults if provided)
	mode := flag.String("mode", "api", "Mode: api or snapshot")
	fund := flag.Int("fund", 0, "Fund id (snapshot mode)")
	start := flag.String("start", "", "Range start YYYY-MM-DD (snapshot mode)")
	end := flag.String("end", "", "Range end YYYY-MM-DD (snapshot mode)")
	port := flag.String("port", config.AppConfig.Server.Port, "Port for API mode")
	flag.Parse()

	switch *mode {
	case "api":
		// API mode: start the HTTP server
		logger.L().Info().Msg("starting API server")

		router, cleanup, err := app.InitializeApp()
		if err != nil {
			logger.L().Fatal().Err(err).Msg("app init error")
		}

		server := startServer(router, *port)
		gracefulShutdown(ctx, server, cleanup)

	case "snapshot":
		// Snapshot mode: compute one fund and print JSON
		if *fund <= 0 {
			logger.L().Fatal().Msg("snapshot mode requires --fund")
		}
		logger.L().Info().Int("fund_id", *fund).Msg("running snapshot")

		if err := runSnapshot(ctx, *fund, *start, *end); err != nil {
			logger.L().Fatal().Err(err).Int("fund_id", *fund).Msg("snapshot failed")
		}

	default:
		logger.L().Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}
