package main

import (
	"catalog/infra/postgres"
	"catalog/infra/rabbitmq"
	"catalog/internal/server"
	"catalog/pkg/config"
	"catalog/pkg/events"
	"catalog/pkg/logger"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func main() {
	appConfig := config.Read()

	log, err := logger.New(appConfig.IsProduction())
	if err != nil {
		panic(fmt.Errorf("failed to build logger: %w", err))
	}
	flush := logger.Install(log)
	defer flush()

	zap.L().Info("app starting...", zap.String("service", appConfig.ServiceName))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := postgres.Connect(ctx, appConfig.PostgresDSN())
	if err == nil {
		err = postgres.EnsureSchema(ctx, db)
	}
	cancel()
	if err != nil {
		zap.L().Error("Failed to prepare database", zap.Error(err))
		os.Exit(1)
	}

	pgRepository := postgres.NewPgRepository(db)
	defer pgRepository.Close()

	var publisher events.Publisher = events.NopPublisher{}
	if appConfig.RabbitMQURL != "" {
		rabbitPublisher, err := rabbitmq.NewRabbitMQPublisher(appConfig.RabbitMQURL, appConfig.ServiceName, events.ItemExchange)
		if err != nil {
			zap.L().Error("Failed to create RabbitMQ publisher", zap.Error(err))
			os.Exit(1)
		}
		defer rabbitPublisher.Close()
		publisher = rabbitPublisher
	} else {
		zap.L().Warn("RABBITMQ_URL is empty, item events are disabled")
	}

	app := server.New(pgRepository, publisher, server.Options{
		ServiceName:        appConfig.ServiceName,
		RecentDefaultLimit: appConfig.RecentDefaultLimit,
		RecentMaxLimit:     appConfig.RecentMaxLimit,
	})

	// Start server in a goroutine
	go func() {
		if err := app.Listen(fmt.Sprintf("0.0.0.0:%s", appConfig.Port)); err != nil {
			zap.L().Error("Failed to start server", zap.Error(err))
			os.Exit(1)
		}
	}()

	zap.L().Info("Server started on port", zap.String("port", appConfig.Port))

	gracefulShutdown(app)
}

func gracefulShutdown(app *fiber.App) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	zap.L().Info("Shutting down server...")

	if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
		zap.L().Error("Error during server shutdown", zap.Error(err))
	}

	zap.L().Info("Server gracefully stopped")
}
