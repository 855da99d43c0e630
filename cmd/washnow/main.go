package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/krypton4149/washnow/internal/pkg/config"
	"github.com/krypton4149/washnow/internal/pkg/database"
	"github.com/krypton4149/washnow/internal/pkg/health"
	"github.com/krypton4149/washnow/internal/pkg/logger"
	"github.com/krypton4149/washnow/internal/pkg/middleware"
	natspkg "github.com/krypton4149/washnow/internal/pkg/nats"
	nrpkg "github.com/krypton4149/washnow/internal/pkg/newrelic"
	"github.com/krypton4149/washnow/internal/pkg/server"
	wspkg "github.com/krypton4149/washnow/internal/pkg/websocket"
	broadcastGateway "github.com/krypton4149/washnow/services/broadcast/gateway"
	broadcastRepository "github.com/krypton4149/washnow/services/broadcast/repository"
	broadcastUsecase "github.com/krypton4149/washnow/services/broadcast/usecase"
	"github.com/krypton4149/washnow/services/flow/gateway"
	"github.com/krypton4149/washnow/services/flow/handler"
	"github.com/krypton4149/washnow/services/flow/repository"
	"github.com/krypton4149/washnow/services/flow/usecase"
)

func main() {
	appName := "washnow-flow"
	configPath := "config/flow.env"
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

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer postgresClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()

	// Initialize NATS
	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", zap.Error(err))
	}
	defer natsClient.Close()

	backendTimeout := time.Duration(configs.Backend.TimeoutSeconds) * time.Second

	// Flow service wiring
	flowRepo := repository.NewFlowRepo(configs, postgresClient.GetDB(), redisClient)
	flowGW := gateway.NewFlowGW(natsClient, configs.Backend.BaseURL, backendTimeout)
	flowUC := usecase.NewFlowUC(configs, flowRepo, flowGW)

	// Broadcast service wiring
	broadcastRepo := broadcastRepository.NewBroadcastRepo(configs.Broadcast, redisClient)
	broadcastGW := broadcastGateway.NewBroadcastGW(natsClient, configs.Backend.BaseURL, backendTimeout)
	broadcastUC := broadcastUsecase.NewBroadcastUC(configs.Broadcast, broadcastRepo, broadcastGW)

	// WebSocket manager pushes screen changes and broadcast events
	wsManager := wspkg.NewManager(configs.JWT)

	// Initialize handlers
	h := handler.NewHandler(flowUC, broadcastUC, wsManager, natsClient, configs)
	if err := h.InitNATSConsumers(); err != nil {
		zapLogger.Fatal("Failed to initialize NATS consumers", zap.Error(err))
	}

	// Initialize Echo router
	e := echo.New()
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, appName, map[string]health.HealthChecker{
		"postgres": health.NewPostgresHealthChecker(postgresClient),
		"redis":    health.NewRedisHealthChecker(redisClient),
		"nats":     health.NewNATSHealthChecker(natsClient),
	})

	h.RegisterRoutes(e)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server stopped with error", zap.Error(err))
	}
}
