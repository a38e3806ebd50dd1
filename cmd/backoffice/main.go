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
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/tair/retail-backoffice/docs"
	"github.com/tair/retail-backoffice/internal/analytics"
	analyticsCache "github.com/tair/retail-backoffice/internal/analytics/cache"
	analyticsDelivery "github.com/tair/retail-backoffice/internal/analytics/delivery/http"
	analyticsDomain "github.com/tair/retail-backoffice/internal/analytics/domain"
	"github.com/tair/retail-backoffice/internal/catalog"
	catalogDelivery "github.com/tair/retail-backoffice/internal/catalog/delivery/http"
	catalogRepo "github.com/tair/retail-backoffice/internal/catalog/repository"
	"github.com/tair/retail-backoffice/internal/inventory"
	inventoryDelivery "github.com/tair/retail-backoffice/internal/inventory/delivery/http"
	invDomain "github.com/tair/retail-backoffice/internal/inventory/domain"
	"github.com/tair/retail-backoffice/internal/server"
	"github.com/tair/retail-backoffice/kafka"
	"github.com/tair/retail-backoffice/pkg/database"
	"github.com/tair/retail-backoffice/pkg/logger"
	"github.com/tair/retail-backoffice/pkg/tracing"
)

func main() {
	// Initialize logger
	serviceName := getEnv("OTEL_SERVICE_NAME", "backoffice-service")
	isDevelopment := getEnv("ENVIRONMENT", "development") == "development"
	logger.Init(serviceName, isDevelopment)

	logLevel := getEnv("LOG_LEVEL", "info")
	logger.SetLevel(logLevel)

	logger.Logger.Info().
		Str("service", serviceName).
		Str("environment", getEnv("ENVIRONMENT", "development")).
		Str("log_level", logLevel).
		Msg("Starting back office service")

	// Initialize tracer
	tp, err := tracing.InitTracer(serviceName)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to initialize tracer")
	} else {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tracing.Shutdown(ctx, tp); err != nil {
				logger.Logger.Error().Err(err).Msg("Failed to shutdown tracer")
			}
		}()
	}

	// Load database configuration
	dbConfig := database.Config{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", "postgres"),
		DBName:   getEnv("DB_NAME", "backofficedb"),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
	}

	// Connect to database
	db, err := database.NewGormConnection(dbConfig)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
	}

	// Separate connection for the health check ping
	healthDB, err := database.NewPostgresConnection(dbConfig)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to open health check connection")
	}
	defer healthDB.Close()

	// Run migrations
	if err := db.AutoMigrate(
		&invDomain.Inventory{},
		&invDomain.InventoryChange{},
		&analyticsDomain.Sale{},
	); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to run migrations")
	}

	if err := catalogRepo.NewGormCatalogRepository(db).AutoMigrate(); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to run catalog migrations")
	}

	logger.Logger.Info().Msg("Database initialized successfully")

	// Initialize handlers with Wire DI
	inventoryHandler, err := inventory.InitializeHTTPHandler(db)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize inventory handler")
	}

	catalogHandler, err := catalog.InitializeHTTPHandler(db)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize catalog handler")
	}

	// The catalog repository doubles as the product name lookup for the
	// low stock report
	analyticsHandler, err := analytics.InitializeHTTPHandler(db, catalogRepo.NewGormCatalogRepositoryWithTracing(db))
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize analytics handler")
	}

	// Optional Kafka event publisher
	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		publisher, err := kafka.NewPublisher(strings.Split(brokers, ","))
		if err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to connect to Kafka")
		}
		defer publisher.Close()

		inventoryHandler.SetPublisher(publisher)
		analyticsHandler.SetAlertPublisher(publisher)

		logger.Logger.Info().Str("brokers", brokers).Msg("Kafka publisher initialized")
	}

	// Optional Redis report cache
	if redisAddr := getEnv("REDIS_ADDR", ""); redisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     redisAddr,
			Password: getEnv("REDIS_PASSWORD", ""),
		})

		cacheTTL, err := time.ParseDuration(getEnv("REPORT_CACHE_TTL", "5m"))
		if err != nil {
			logger.Logger.Fatal().Err(err).Msg("Invalid REPORT_CACHE_TTL")
		}

		analyticsHandler.SetReportCache(analyticsCache.NewReportCache(client, cacheTTL))

		logger.Logger.Info().
			Str("addr", redisAddr).
			Dur("ttl", cacheTTL).
			Msg("Report cache initialized")
	}

	// Start HTTP server
	httpPort := getEnv("HTTP_PORT", "8080")
	go startHTTPServer(inventoryHandler, catalogHandler, analyticsHandler, healthDB, httpPort)

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server...")
}

func startHTTPServer(
	inventoryHandler *inventoryDelivery.InventoryHandler,
	catalogHandler *catalogDelivery.CatalogHandler,
	analyticsHandler *analyticsDelivery.AnalyticsHandler,
	db *sql.DB,
	port string,
) {
	// Setup router
	router := mux.NewRouter()
	router.Use(server.LoggingMiddleware)
	router.Use(server.RecoveryMiddleware)

	// Register routes
	inventoryHandler.RegisterRoutes(router)
	catalogHandler.RegisterRoutes(router)
	analyticsHandler.RegisterRoutes(router)

	// Health check endpoint
	inventoryHandler.RegisterHealthCheck(router, db)

	// Prometheus metrics endpoint
	router.Handle("/metrics", promhttp.Handler())

	// Swagger UI
	inventoryDelivery.RegisterSwaggerDocs(router, httpSwagger.WrapHandler)

	// CORS middleware
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	handler := server.TracingMiddleware("backoffice", c.Handler(router))

	logger.Logger.Info().
		Str("port", port).
		Str("metrics_endpoint", "/metrics").
		Str("swagger_endpoint", "/swagger/index.html").
		Msg("HTTP server started")

	if err := http.ListenAndServe(":"+port, handler); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
