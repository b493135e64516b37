package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MarinhoBortone/calculadora-jur-dica/pkg/kafka"
	"github.com/MarinhoBortone/calculadora-jur-dica/pkg/observability"
	"github.com/MarinhoBortone/calculadora-jur-dica/pkg/postgres"

	"github.com/MarinhoBortone/calculadora-jur-dica/internal/application/usecase"
	"github.com/MarinhoBortone/calculadora-jur-dica/internal/domain/port"
	"github.com/MarinhoBortone/calculadora-jur-dica/internal/infrastructure/cache"
	"github.com/MarinhoBortone/calculadora-jur-dica/internal/infrastructure/config"
	"github.com/MarinhoBortone/calculadora-jur-dica/internal/infrastructure/messaging"
	infraPostgres "github.com/MarinhoBortone/calculadora-jur-dica/internal/infrastructure/postgres"
	"github.com/MarinhoBortone/calculadora-jur-dica/internal/infrastructure/provider"
	grpcPresentation "github.com/MarinhoBortone/calculadora-jur-dica/internal/presentation/grpc"
	"github.com/MarinhoBortone/calculadora-jur-dica/internal/presentation/rest"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "calcjusd: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := observability.InitLogger(observability.LogConfig{
		Service: cfg.ServiceName,
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
	})
	logger.Info("starting calcjusd",
		"grpc_port", cfg.GRPCPort,
		"http_port", cfg.HTTPPort,
		"provider", cfg.Provider.Mode,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	_, metricsHandler, err := observability.InitMetrics(observability.MetricsConfig{
		ServiceName: cfg.ServiceName,
	})
	if err != nil {
		return fmt.Errorf("initialize metrics: %w", err)
	}

	// Database pool.
	pool, err := postgres.NewPool(ctx, postgres.Config{
		Host:     cfg.DB.Host,
		Port:     cfg.DB.Port,
		User:     cfg.DB.User,
		Password: cfg.DB.Password,
		Database: cfg.DB.Database,
		SSLMode:  cfg.DB.SSLMode,
	})
	if err != nil {
		return fmt.Errorf("create database pool: %w", err)
	}
	defer pool.Close()
	logger.Info("database pool created")

	migDSN := postgres.Config{
		Host:     cfg.DB.Host,
		Port:     cfg.DB.Port,
		User:     cfg.DB.User,
		Password: cfg.DB.Password,
		Database: cfg.DB.Database,
		SSLMode:  cfg.DB.SSLMode,
	}.DSN()
	if migErr := postgres.RunMigrations(migDSN, "file://migrations"); migErr != nil {
		logger.Warn("migration warning", "error", migErr)
	}

	// Kafka producer.
	kafkaProducer := kafka.NewProducer(kafka.Config{
		Brokers: cfg.Kafka.Brokers,
	})
	defer kafkaProducer.Close()
	logger.Info("kafka producer created")

	seriesRepo := infraPostgres.NewIndexSeriesRepo(pool)
	publisher := messaging.NewKafkaPublisher(kafkaProducer)

	// Index provider chain.
	var indexProvider port.IndexProvider
	switch cfg.Provider.Mode {
	case config.ProviderSGS:
		indexProvider = provider.NewSGSClient(cfg.Provider.SGSBaseURL, cfg.Provider.Timeout, logger)
	case config.ProviderArchive:
		indexProvider = provider.NewArchiveProvider(seriesRepo)
	case config.ProviderStatic:
		indexProvider = provider.NewStaticProvider()
		logger.Info("using static index provider")
	}
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})
		indexProvider = cache.NewCachingProvider(indexProvider, redisClient, cfg.Redis.TTL, logger)
		logger.Info("redis series cache enabled", "addr", cfg.Redis.Addr, "ttl", cfg.Redis.TTL.String())
	}

	// Use cases.
	computeSettlement := usecase.NewComputeSettlement(indexProvider, publisher, logger)
	refreshSeries := usecase.NewRefreshIndexSeries(indexProvider, seriesRepo, publisher, logger)
	getSeries := usecase.NewGetIndexSeries(seriesRepo)

	// gRPC server.
	handler := grpcPresentation.NewHandler(computeSettlement, refreshSeries, getSeries, logger)
	grpcServer := grpcPresentation.NewServer(handler, logger, cfg.GRPCPort, cfg.GRPCReflection)

	// HTTP server: health probes and metrics.
	healthHandler := rest.NewHealthHandler(pool, logger)
	mux := http.NewServeMux()
	healthHandler.RegisterRoutes(mux)
	mux.Handle("GET /metrics", metricsHandler)
	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 2)

	go func() {
		errCh <- grpcServer.Start()
	}()

	go func() {
		logger.Info("HTTP server starting", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.Info("received shutdown signal", "signal", sig.String())
	case err := <-errCh:
		logger.Error("server error", "error", err)
		return err
	}

	logger.Info("shutting down")

	grpcServer.Stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}

	cancel()
	logger.Info("calcjusd stopped")
	return nil
}
