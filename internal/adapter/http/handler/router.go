package handler

import (
	"net/http"

	"transaction-monitoring-api/internal/adapter/http/middleware"
	redisStore "transaction-monitoring-api/internal/adapter/storage/redis"
	"transaction-monitoring-api/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const maxBodyBytes = 1 << 20

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	TransactionSvc ports.TransactionService
	SimulationSvc  ports.SimulationService
	BasePath       string
	DefaultBurst   int
	DefaultRate    int
	AllowedOrigins []string
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	RateLimitRules map[string]middleware.RateLimitRule
	HealthCheckers []ports.HealthChecker
	MetricsHandler http.Handler // nil = /metrics not served
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.CORS(deps.AllowedOrigins))
	r.Use(middleware.MaxBodySize(maxBodyBytes))

	r.GET("/health", HealthCheck(deps.HealthCheckers...))
	if deps.MetricsHandler != nil {
		r.GET("/metrics", gin.WrapH(deps.MetricsHandler))
	}

	swagger := r.Group("/swagger")
	{
		swagger.GET("", SwaggerUI)
		swagger.GET("/spec", SwaggerSpec)
	}

	// rl returns the limiter for group, or a pass-through when limiting is off.
	rl := func(group string) gin.HandlerFunc {
		rule, ok := deps.RateLimitRules[group]
		if deps.RateLimitStore == nil || !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	basePath := deps.BasePath
	if basePath == "" {
		basePath = "/api"
	}
	api := r.Group(basePath)

	txHandler := NewTransactionHandler(deps.TransactionSvc)
	simHandler := NewSimulationHandler(deps.SimulationSvc, deps.DefaultBurst, deps.DefaultRate)

	transactions := api.Group("/transactions")
	{
		query := rl(middleware.GroupQuery)
		simulate := rl(middleware.GroupSimulate)

		transactions.GET("", query, txHandler.List)
		transactions.GET("/filter/region", query, txHandler.FilterByRegion)
		transactions.GET("/filter/amount", query, txHandler.FilterByAmount)
		transactions.GET("/filter/combined", query, txHandler.FilterCombined)
		transactions.GET("/fraudulent", query, txHandler.Fraudulent)
		transactions.GET("/errors", query, txHandler.Errors)
		transactions.GET("/metrics", query, txHandler.Metrics)

		transactions.POST("/simulate", simulate, simHandler.Simulate)
		transactions.POST("/simulate/start", simulate, simHandler.Start)
		transactions.POST("/simulate/stop", simulate, simHandler.Stop)
		transactions.GET("/simulate/status", query, simHandler.Status)

		transactions.GET("/:id", query, txHandler.GetByID)
		transactions.DELETE("/:id", simulate, txHandler.Delete)
	}

	return r
}
