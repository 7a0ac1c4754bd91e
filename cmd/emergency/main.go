package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/quickconnect/internal/pkg/circuitbreaker"
	"github.com/piresc/quickconnect/internal/pkg/config"
	"github.com/piresc/quickconnect/internal/pkg/database"
	"github.com/piresc/quickconnect/internal/pkg/health"
	httpclient "github.com/piresc/quickconnect/internal/pkg/http"
	"github.com/piresc/quickconnect/internal/pkg/logger"
	"github.com/piresc/quickconnect/internal/pkg/metrics"
	"github.com/piresc/quickconnect/internal/pkg/middleware"
	"github.com/piresc/quickconnect/internal/pkg/models"
	natspkg "github.com/piresc/quickconnect/internal/pkg/nats"
	nrpkg "github.com/piresc/quickconnect/internal/pkg/newrelic"
	"github.com/piresc/quickconnect/internal/pkg/server"
	wspkg "github.com/piresc/quickconnect/internal/pkg/websocket"
	chatHandler "github.com/piresc/quickconnect/services/chat/handler"
	chatHTTP "github.com/piresc/quickconnect/services/chat/handler/http"
	chatWS "github.com/piresc/quickconnect/services/chat/handler/websocket"
	chatUsecase "github.com/piresc/quickconnect/services/chat/usecase"
	"github.com/piresc/quickconnect/services/emergency"
	emergencyGateway "github.com/piresc/quickconnect/services/emergency/gateway"
	emergencyHandler "github.com/piresc/quickconnect/services/emergency/handler"
	emergencyHTTP "github.com/piresc/quickconnect/services/emergency/handler/http"
	emergencyRepository "github.com/piresc/quickconnect/services/emergency/repository"
	emergencyUsecase "github.com/piresc/quickconnect/services/emergency/usecase"
	geocodeGateway "github.com/piresc/quickconnect/services/geocode/gateway"
	hospitalHandler "github.com/piresc/quickconnect/services/hospital/handler"
	hospitalHTTP "github.com/piresc/quickconnect/services/hospital/handler/http"
	hospitalRepository "github.com/piresc/quickconnect/services/hospital/repository"
	hospitalUsecase "github.com/piresc/quickconnect/services/hospital/usecase"
)

func main() {
	appName := "quickconnect-emergency"
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/emergency.env"
	}
	configs := config.InitConfig(configPath)

	// Initialize New Relic and Zap logger
	nrApp := nrpkg.InitNewRelic(configs)
	if nrApp != nil {
		if err := nrApp.WaitForConnection(10 * time.Second); err != nil {
			log.Printf("Warning: New Relic connection timeout: %v", err)
		}
	}

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment))

	appMetrics := metrics.NewMetrics()
	healthService := health.NewHealthService(appName, configs.App.Version)

	// Session store
	var emergencyRepo emergency.EmergencyRepo
	var redisClient *database.RedisClient
	switch configs.Session.Store {
	case models.SessionStoreRedis:
		redisClient, err = database.NewRedisClient(configs.Redis)
		if err != nil {
			zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
		}
		healthService.AddChecker("redis", health.PingChecker(redisClient))
		emergencyRepo = emergencyRepository.NewRedisRepository(redisClient, configs.Session.TTL)
	default:
		emergencyRepo = emergencyRepository.NewMemoryRepository(configs.Session.TTL)
	}

	// Alert broker, optional
	var alertPublisher emergencyGateway.Publisher
	var natsClient *natspkg.Client
	if configs.NATS.URL != "" {
		natsClient, err = natspkg.NewClient(configs.NATS.URL, appName)
		if err != nil {
			zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
		}
		healthService.AddChecker("nats", health.ConnChecker("nats", natsClient.IsConnected))
		alertPublisher = natsClient
	}

	// Hospital catalogue
	catalog, err := hospitalRepository.NewCatalogRepository(configs.Hospital.CatalogPath)
	if err != nil {
		zapLogger.Fatal("Failed to load hospital catalogue", logger.Err(err))
	}
	hospitalUC := hospitalUsecase.NewHospitalUC(catalog, configs, appMetrics)

	// Reverse geocoding
	geocodeClient := httpclient.NewEnhancedClient(zapLogger, httpclient.Options{
		Name:       "geocoder",
		Timeout:    configs.Geocoder.Timeout,
		MaxRetries: configs.Geocoder.MaxRetries,
		OnStateChange: func(name string, from, to circuitbreaker.State) {
			appMetrics.BreakerState(name, int(to))
		},
	})
	geocodeGW := geocodeGateway.NewNominatimGW(configs.Geocoder, geocodeClient, appMetrics)

	// Chat and emergency use cases
	chatUC := chatUsecase.NewChatUC(configs, appMetrics)
	alertGW := emergencyGateway.NewAlertGW(alertPublisher)
	emergencyUC := emergencyUsecase.NewEmergencyUC(configs, emergencyRepo, alertGW, hospitalUC, geocodeGW, chatUC, appMetrics)

	// Rate limiting for session creation and alert submission
	rateLimiter, err := middleware.NewRateLimiter(middleware.RateLimiterConfig{
		Rate:   configs.RateLimit.Rate,
		OnDeny: appMetrics.RateLimitDenied,
	}, nil)
	if err != nil {
		zapLogger.Fatal("Invalid rate limit", logger.String("rate", configs.RateLimit.Rate), logger.Err(err))
	}

	// Initialize handlers
	hospitalRoutes := hospitalHandler.NewHandler(hospitalHTTP.NewHospitalHandler(hospitalUC))
	emergencyRoutes := emergencyHandler.NewHandler(emergencyHTTP.NewEmergencyHandler(emergencyUC))
	chatRoutes := chatHandler.NewHandler(
		chatHTTP.NewChatHandler(chatUC),
		chatWS.NewChatWSHandler(chatUC, wspkg.NewManager()),
	)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	// Add middlewares
	e.Use(middleware.RequestIDMiddleware())
	e.Use(nrpkg.Middleware(nrApp))
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))
	e.Use(appMetrics.Middleware())

	// Register health and metrics endpoints
	health.RegisterHealthEndpoints(e, healthService)
	e.GET("/metrics", appMetrics.Handler())

	// Register service routes
	api := e.Group("/api/v1")
	hospitalRoutes.RegisterRoutes(api)
	emergencyRoutes.RegisterRoutes(api, rateLimiter.Middleware())
	chatRoutes.RegisterRoutes(api)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server)
	srv.OnShutdown(func(ctx context.Context) error {
		chatUC.Close()
		return nil
	})
	if natsClient != nil {
		srv.OnShutdown(func(ctx context.Context) error {
			natsClient.Close()
			return nil
		})
	}
	if redisClient != nil {
		srv.OnShutdown(func(ctx context.Context) error {
			return redisClient.Close()
		})
	}
	if nrApp != nil {
		srv.OnShutdown(func(ctx context.Context) error {
			nrApp.Shutdown(10 * time.Second)
			return nil
		})
	}

	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server stopped with error", logger.String("app", appName), logger.Err(err))
	}
}
