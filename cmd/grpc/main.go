package main

import (
	"catalog/infra/grpc"
	"catalog/infra/postgres"
	"catalog/pkg/config"
	"catalog/pkg/logger"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

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

	zap.L().Info("Catalog gRPC Service starting...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := postgres.Connect(ctx, appConfig.PostgresDSN())
	cancel()
	if err != nil {
		zap.L().Error("failed to connect to database", zap.Error(err))
		os.Exit(1)
	}

	pgRepository := postgres.NewPgRepository(db)
	defer pgRepository.Close()

	grpcServer, err := grpc.NewServer(appConfig.GRPCPort)
	if err != nil {
		zap.L().Error("failed to create grpc server", zap.Error(err))
		os.Exit(1)
	}

	grpc.RegisterItemServiceServer(grpcServer.GetGRPCServer(), grpc.NewItemService(pgRepository))
	grpcServer.SetServing(grpc.ItemServiceName)

	zap.L().Info("starting gRPC server...", zap.String("port", appConfig.GRPCPort))
	go func() {
		if err := grpcServer.Start(); err != nil {
			zap.L().Error("failed to start grpc server", zap.Error(err))
			os.Exit(1)
		}
	}()

	gracefulShutdown(grpcServer)
}

func gracefulShutdown(grpcServer *grpc.Server) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	zap.L().Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	grpcServer.Shutdown(ctx)

	zap.L().Info("Server gracefully stopped")
}
