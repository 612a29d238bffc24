package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"transaction-monitoring-api/config"
	httpHandler "transaction-monitoring-api/internal/adapter/http/handler"
	"transaction-monitoring-api/internal/adapter/http/middleware"
	"transaction-monitoring-api/internal/adapter/metrics"
	"transaction-monitoring-api/internal/adapter/storage/memory"
	pgStorage "transaction-monitoring-api/internal/adapter/storage/postgres"
	redisStorage "transaction-monitoring-api/internal/adapter/storage/redis"
	"transaction-monitoring-api/internal/core/ports"
	"transaction-monitoring-api/internal/service"
	"transaction-monitoring-api/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)
	gin.SetMode(cfg.Server.Mode)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Str("storage", cfg.Storage.Backend).
		Msg("Starting Transaction Monitoring API")

	ctx := context.Background()
	var healthCheckers []ports.HealthChecker

	// Initialize the transaction store
	var txRepo ports.TransactionRepository
	switch cfg.Storage.Backend {
	case config.StorageBackendPostgres:
		if cfg.Database.MigrateOnStart {
			if err := pgStorage.RunMigrations(cfg.Database.DSN()); err != nil {
				log.Fatal().Err(err).Msg("Failed to apply database migrations")
			}
			log.Info().Msg("Database migrations applied")
		}

		pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
		}
		defer pool.Close()

		txRepo = pgStorage.NewTransactionRepo(pool)
		healthCheckers = append(healthCheckers, pgStorage.NewHealthCheck(pool))
	case config.StorageBackendMemory:
		txRepo = memory.NewTransactionStore()
		log.Warn().Msg("Using in-memory transaction store, data is lost on restart")
	}

	// Initialize Redis client (optional, backs rate limiting)
	var rateLimitStore *redisStorage.RateLimitStore
	if cfg.Redis.Enabled {
		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()

		if cfg.RateLimit.Enabled {
			rateLimitStore = redisStorage.NewRateLimitStore(rdb)
		}
		healthCheckers = append(healthCheckers, redisStorage.NewHealthCheck(rdb))
	}

	// Initialize services
	counters := service.NewTransactionCounters()
	state := service.NewSimulationState(cfg.Simulation.DefaultRate)
	txSvc := service.NewTransactionService(txRepo, counters, logger.Component(log, "transactions"))
	simSvc := service.NewSimulationService(
		txSvc,
		service.NewGenerator(cfg.Simulation.Seed),
		state,
		counters,
		logger.Component(log, "simulation"),
	)

	// Prometheus metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	if err := metrics.Register(registry, counters, state); err != nil {
		log.Fatal().Err(err).Msg("Failed to register metrics")
	}

	// Load OpenAPI spec for Swagger UI
	if specBytes, err := os.ReadFile(cfg.Server.OpenAPIPath); err == nil {
		httpHandler.SetSwaggerSpec(specBytes)
		log.Info().Msg("OpenAPI spec loaded for Swagger UI at /swagger")
	} else {
		log.Warn().Err(err).Msg("OpenAPI spec not found, Swagger UI will be unavailable")
	}

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		TransactionSvc: txSvc,
		SimulationSvc:  simSvc,
		BasePath:       cfg.Server.BasePath,
		DefaultBurst:   cfg.Simulation.DefaultBurst,
		DefaultRate:    cfg.Simulation.DefaultRate,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		RateLimitStore: rateLimitStore,
		RateLimitRules: middleware.RateLimitRules(cfg.RateLimit),
		HealthCheckers: healthCheckers,
		MetricsHandler: promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		Logger:         log,
	})

	// Periodic simulation
	scheduler := service.NewSimulationScheduler(simSvc, cfg.Simulation.Interval, logger.Component(log, "scheduler"))
	scheduler.Start(ctx)

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	scheduler.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
