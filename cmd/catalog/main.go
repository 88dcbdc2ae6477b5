package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"

	"github.com/samuelokello/teahouse/internal/catalog/datasource"
	httpDelivery "github.com/samuelokello/teahouse/internal/catalog/delivery/http"
	"github.com/samuelokello/teahouse/internal/catalog/domain"
	"github.com/samuelokello/teahouse/internal/catalog/repository"
	"github.com/samuelokello/teahouse/internal/catalog/seed"
	"github.com/samuelokello/teahouse/internal/catalog/usecase/query"
	"github.com/samuelokello/teahouse/internal/catalog/view"
	"github.com/samuelokello/teahouse/kafka"
	"github.com/samuelokello/teahouse/pkg/database"
	"github.com/samuelokello/teahouse/pkg/logger"
	"github.com/samuelokello/teahouse/pkg/tracing"
)

func main() {
	serviceName := getEnv("OTEL_SERVICE_NAME", "catalog-service")
	isDevelopment := getEnv("ENVIRONMENT", "development") == "development"
	logger.Init(serviceName, isDevelopment)

	logLevel := getEnv("LOG_LEVEL", "info")
	logger.SetLevel(logLevel)

	sourceKind := getEnv("CATALOG_SOURCE", "local")

	logger.Logger.Info().
		Str("service", serviceName).
		Str("environment", getEnv("ENVIRONMENT", "development")).
		Str("source", sourceKind).
		Msg("Starting catalog service")

	tp, err := tracing.InitTracer(serviceName)
	if err != nil {
		logger.Logger.Warn().Err(err).Msg("Tracing disabled")
	} else {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tracing.Shutdown(ctx, tp); err != nil {
				logger.Logger.Warn().Err(err).Msg("Failed to shut down tracer")
			}
		}()
	}

	// The repository is backed by exactly one source: the table-backed local
	// source or the mock remote one. Never both.
	var source domain.ProductSource
	var initializer *seed.Initializer
	var healthDB *sql.DB

	switch sourceKind {
	case "remote":
		source = datasource.NewRemoteSource()

	default:
		dbConfig := database.Config{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "teahousedb"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		}

		db, err := database.NewGormConnection(dbConfig)
		if err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
		}

		sqlDB, err := db.DB()
		if err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to get database instance")
		}
		defer sqlDB.Close()
		healthDB = sqlDB

		localSource := datasource.NewLocalSource(db)
		if err := localSource.AutoMigrate(); err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to run migrations")
		}
		source = localSource

		initializer = seed.NewInitializer(localSource, newVersionStore())
		if err := initializer.InitializeIfNeeded(context.Background()); err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to seed catalog")
		}
	}

	repo := repository.NewTracingRepository(repository.NewSourceRepository(source))

	getProductsHandler := query.NewGetProductsHandler(repo)
	getProductHandler := query.NewGetProductHandler(repo)
	searchHandler := query.NewSearchProductsHandler(repo)

	var publisher view.CartPublisher
	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		p, err := kafka.NewPublisher(strings.Split(brokers, ","))
		if err != nil {
			logger.Logger.Warn().Err(err).Msg("Cart events disabled, Kafka unavailable")
		} else {
			defer p.Close()
			publisher = p
		}
	}

	handler := httpDelivery.NewCatalogHandler(
		getProductsHandler,
		getProductHandler,
		searchHandler,
		initializer,
		publisher,
	)

	httpPort := getEnv("HTTP_PORT", "8084")
	server := buildHTTPServer(handler, healthDB, httpPort)

	go func() {
		logger.Logger.Info().
			Str("port", httpPort).
			Str("metrics_endpoint", "/metrics").
			Msg("HTTP server started")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Logger.Error().Err(err).Msg("Forced shutdown")
	}
}

// newVersionStore connects the Redis-backed seed version store. A missing
// Redis only degrades the gating to "seed when empty", it never blocks boot.
func newVersionStore() seed.VersionStore {
	addr := getEnv("REDIS_ADDR", "localhost:6379")
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: getEnv("REDIS_PASSWORD", ""),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Logger.Warn().
			Err(err).
			Str("addr", addr).
			Msg("Redis unavailable, seed version gating degraded")
		return nil
	}
	return seed.NewRedisVersionStore(client)
}

func buildHTTPServer(handler *httpDelivery.CatalogHandler, db *sql.DB, port string) *http.Server {
	router := mux.NewRouter()

	handler.RegisterRoutes(router)
	handler.RegisterHealthCheck(router, db)

	// Prometheus metrics endpoint
	router.Handle("/metrics", promhttp.Handler())

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	return &http.Server{
		Addr:    ":" + port,
		Handler: c.Handler(router),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
