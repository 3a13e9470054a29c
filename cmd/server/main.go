// backend-go/cmd/server/main.go
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lpgflow/backend-go/internal/ai"
	"github.com/lpgflow/backend-go/internal/api"
	"github.com/lpgflow/backend-go/internal/cache"
	"github.com/lpgflow/backend-go/internal/config"
	"github.com/lpgflow/backend-go/internal/engine"
	"github.com/lpgflow/backend-go/internal/repository/memory"
	"github.com/lpgflow/backend-go/internal/service"
	"github.com/lpgflow/backend-go/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("Invalid configuration")
	}

	// Initialize logger
	logger.SetLevel(cfg.Server.Mode)
	if cfg.Server.Mode == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Rule engine components
	estimator, err := engine.NewEstimator(cfg.Engine.UsageCycleDays)
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("Failed to build estimator")
	}
	aggregator, err := engine.NewAggregator(estimator, cfg.Engine.IdleAfterDays, cfg.Engine.HealthyScore, cfg.Engine.WatchScore)
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("Failed to build aggregator")
	}
	classifier, err := engine.NewClassifier(cfg.Engine.ExpiryWindowDays)
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("Failed to build classifier")
	}

	// Demo dataset; a real deployment swaps in a CRUD-backed repository.
	store := memory.Seed(time.Now())

	// Generative-AI collaborator; the service runs with fixed fallbacks
	// when no credential is configured.
	var generator ai.TextGenerator
	gemini, err := ai.NewGeminiClient(context.Background(), cfg.AI)
	switch {
	case errors.Is(err, ai.ErrMissingCredential):
		logger.Log.Warn().Msg("Gemini API key missing, AI insights disabled")
	case err != nil:
		logger.Log.Fatal().Err(err).Msg("Failed to initialize Gemini client")
	default:
		generator = gemini
	}
	advisor := ai.NewAdvisor(generator, cfg.AI.Temperature, time.Duration(cfg.AI.RequestTimeoutSec)*time.Second)

	adviceCache, err := cache.NewAdviceCache(cfg.Cache)
	if err != nil {
		logger.Log.Warn().Err(err).Msg("Advice cache unavailable, continuing without")
		adviceCache = cache.NewNoopAdviceCache()
	}

	// Initialize services
	services := &api.Services{
		Dashboard: service.NewDashboardService(store, aggregator),
		Customer:  service.NewCustomerService(store, estimator, classifier),
		Safety:    service.NewSafetyService(store, classifier),
		Insight:   service.NewInsightService(store, aggregator, advisor, adviceCache),
	}

	// Initialize HTTP server
	router := api.NewRouter(services, cfg.Server.AllowedOrigins)
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Log.Info().Str("port", cfg.Server.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	logger.Log.Info().Msg("Server exiting")
}
