package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/guinchoja/backend/internal/pkg/config"
	"github.com/guinchoja/backend/internal/pkg/database"
	"github.com/guinchoja/backend/internal/pkg/health"
	"github.com/guinchoja/backend/internal/pkg/logger"
	"github.com/guinchoja/backend/internal/pkg/middleware"
	"github.com/guinchoja/backend/internal/pkg/nats"
	"github.com/guinchoja/backend/internal/pkg/server"
	historyHandler "github.com/guinchoja/backend/services/history/handler"
	historyHTTP "github.com/guinchoja/backend/services/history/handler/http"
	historyNATS "github.com/guinchoja/backend/services/history/handler/nats"
	historyRepository "github.com/guinchoja/backend/services/history/repository"
	historyUsecase "github.com/guinchoja/backend/services/history/usecase"
)

func main() {
	appName := "archiver-service"
	configPath := "config/archiver.env"
	configs := config.InitConfig(configPath)
	configs.App.Name = appName

	appLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Close()

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer postgresClient.Close()

	// Initialize NATS
	natsClient, err := nats.NewClient(configs.NATS.URL)
	if err != nil {
		log.Fatalf("Failed to connect to NATS: %v", err)
	}
	defer natsClient.Close()

	// Initialize repository and usecase
	historyRepo := historyRepository.NewHistoryRepo(postgresClient)
	historyUC := historyUsecase.NewHistoryUC(historyRepo, appLogger)

	// Initialize NATS consumers
	archiver := historyNATS.NewArchiverHandler(historyUC, natsClient, appLogger)
	if err := archiver.InitConsumers(); err != nil {
		log.Fatalf("Failed to initialize NATS consumers: %v", err)
	}

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.EchoMiddleware(appLogger))
	e.Use(middleware.PanicRecoveryMiddleware(appLogger))

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName,
		health.NewPostgresChecker(postgresClient),
		health.NewNATSChecker(natsClient),
	)

	// Register service routes
	handler := historyHandler.NewHandler(historyHTTP.NewHistoryHandler(historyUC))
	handler.RegisterRoutes(e)

	shutdownTimeout := time.Duration(configs.Server.ShutdownTimeout) * time.Second
	srv := server.New(e, appLogger, configs.Server.Port, shutdownTimeout)
	srv.OnShutdown(func(ctx context.Context) error {
		archiver.Stop()
		natsClient.Close()
		return postgresClient.Close()
	})

	appLogger.Info("Starting archiver service",
		logger.String("app", appName),
		logger.Int("port", configs.Server.Port),
	)
	if err := srv.Start(); err != nil {
		log.Fatalf("Failed to start %s: %v", appName, err)
	}
}
