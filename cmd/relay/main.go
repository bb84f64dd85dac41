package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/guinchoja/backend/internal/pkg/config"
	"github.com/guinchoja/backend/internal/pkg/database"
	"github.com/guinchoja/backend/internal/pkg/health"
	httppkg "github.com/guinchoja/backend/internal/pkg/http"
	"github.com/guinchoja/backend/internal/pkg/logger"
	"github.com/guinchoja/backend/internal/pkg/middleware"
	"github.com/guinchoja/backend/internal/pkg/nats"
	"github.com/guinchoja/backend/internal/pkg/server"
	dispatchGateway "github.com/guinchoja/backend/services/dispatch/gateway"
	dispatchHandler "github.com/guinchoja/backend/services/dispatch/handler"
	dispatchRepository "github.com/guinchoja/backend/services/dispatch/repository"
	dispatchUsecase "github.com/guinchoja/backend/services/dispatch/usecase"
	historyHandler "github.com/guinchoja/backend/services/history/handler"
	historyHTTP "github.com/guinchoja/backend/services/history/handler/http"
	historyRepository "github.com/guinchoja/backend/services/history/repository"
	historyUsecase "github.com/guinchoja/backend/services/history/usecase"
	matchingGateway "github.com/guinchoja/backend/services/matching/gateway"
	matchingHandler "github.com/guinchoja/backend/services/matching/handler"
	matchingRepository "github.com/guinchoja/backend/services/matching/repository"
	matchingUsecase "github.com/guinchoja/backend/services/matching/usecase"
	usersGateway "github.com/guinchoja/backend/services/users/gateway"
	usersHandler "github.com/guinchoja/backend/services/users/handler"
	usersUsecase "github.com/guinchoja/backend/services/users/usecase"
)

func main() {
	appName := "relay-service"
	configPath := "config/relay.env"
	configs := config.InitConfig(configPath)
	configs.App.Name = appName

	appLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	// Initialize NATS
	natsClient, err := nats.NewClient(configs.NATS.URL)
	if err != nil {
		log.Fatalf("Failed to connect to NATS: %v", err)
	}
	defer natsClient.Close()
	producer := nats.NewProducer(natsClient)

	// The ride archive lives in PostgreSQL; the relay serves reads from it
	// so the mobile client needs a single base URL.
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer postgresClient.Close()

	// Shared HTTP client against the backend of record
	backendClient := httppkg.NewResilientClient(configs.Backend, appLogger)

	// Users service
	userGW := usersGateway.NewUserGW(backendClient)
	userUC := usersUsecase.NewUserUC(configs, userGW, appLogger)
	userHandler := usersHandler.NewHandler(userUC, configs.JWT)

	// Matching service
	matchRepo := matchingRepository.NewMatchRepo(configs, redisClient, appLogger)
	providerGW := matchingGateway.NewProviderGW(backendClient)
	matchGW := matchingGateway.NewMatchGW(producer)
	matchingUC := matchingUsecase.NewMatchingUC(configs, matchRepo, providerGW, matchGW, appLogger)
	matchingHdl := matchingHandler.NewHandler(matchingUC)

	// Dispatch service
	dispatchRepo := dispatchRepository.NewDispatchRepo(redisClient)
	backendGW := dispatchGateway.NewBackendGW(backendClient)
	dispatchGW := dispatchGateway.NewDispatchGW(producer)
	dispatchUC := dispatchUsecase.NewDispatchUC(configs, dispatchRepo, backendGW, dispatchGW, appLogger)
	dispatchHdl := dispatchHandler.NewHandler(dispatchUC)

	// History service (archive reads)
	historyRepo := historyRepository.NewHistoryRepo(postgresClient)
	historyUC := historyUsecase.NewHistoryUC(historyRepo, appLogger)
	historyHdl := historyHandler.NewHandler(historyHTTP.NewHistoryHandler(historyUC))

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.EchoMiddleware(appLogger))
	e.Use(middleware.PanicRecoveryMiddleware(appLogger))

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName,
		health.NewRedisChecker(redisClient),
		health.NewNATSChecker(natsClient),
		health.NewPostgresChecker(postgresClient),
	)

	// Register service routes
	userHandler.RegisterRoutes(e)
	matchingHdl.RegisterRoutes(e)
	dispatchHdl.RegisterRoutes(e)
	historyHdl.RegisterRoutes(e)

	shutdownTimeout := time.Duration(configs.Server.ShutdownTimeout) * time.Second
	srv := server.New(e, appLogger, configs.Server.Port, shutdownTimeout)
	srv.OnShutdown(func(ctx context.Context) error {
		natsClient.Close()
		if err := postgresClient.Close(); err != nil {
			appLogger.Warn("failed to close postgres connection", logger.Err(err))
		}
		return redisClient.Close()
	})

	appLogger.Info("Starting relay service",
		logger.String("app", appName),
		logger.Int("port", configs.Server.Port),
	)
	if err := srv.Start(); err != nil {
		log.Fatalf("Failed to start %s: %v", appName, err)
	}
}
