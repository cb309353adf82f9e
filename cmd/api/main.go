package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/voidlabs/ecosystem-indexer/internal/adapter"
	"github.com/voidlabs/ecosystem-indexer/internal/api/middleware"
	"github.com/voidlabs/ecosystem-indexer/internal/api/server"
	"github.com/voidlabs/ecosystem-indexer/internal/config"
	"github.com/voidlabs/ecosystem-indexer/internal/logger"
	"github.com/voidlabs/ecosystem-indexer/internal/pipeline"
	"github.com/voidlabs/ecosystem-indexer/internal/store"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:     cfg.Debug,
		SentryDSN: cfg.SentryDSN,
		Tags: map[string]string{
			"service": "api-server",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting ecosystem indexer API")

	// Connect to database, retrying while it comes up
	db, err := connectDB(ctx, cfg.Database.DSN())
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}

	// Configure connection pool
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.Fatal("Failed to configure connection pool", zap.Error(err))
	}

	// Run schema migrations
	if err := store.Migrate(db); err != nil {
		logger.Fatal("Failed to migrate database", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)

	// Initialize store
	dataStore := store.NewPGStore(db)

	// Initialize adapters
	httpClient := adapter.NewHTTPClient(cfg.Pipeline.CallTimeout)
	jsonAdapter := adapter.NewJSON()
	clock := adapter.NewClock()

	// Wire the pipeline
	orchestrator := pipeline.NewDefaultOrchestrator(dataStore, httpClient, jsonAdapter, clock, pipeline.Config{
		NearCatalogURL:        cfg.Providers.NearCatalogURL,
		DefiLlamaURL:          cfg.Providers.DefiLlamaURL,
		GithubURL:             cfg.Providers.GithubURL,
		GithubToken:           cfg.Providers.GithubToken,
		NearblocksURL:         cfg.Providers.NearblocksURL,
		NearblocksAPIKey:      cfg.Providers.NearblocksAPIKey,
		FastNearURL:           cfg.Providers.FastNearURL,
		PikespeakURL:          cfg.Providers.PikespeakURL,
		PikespeakAPIKey:       cfg.Providers.PikespeakAPIKey,
		MintbaseURL:           cfg.Providers.MintbaseURL,
		MintbaseAPIKey:        cfg.Providers.MintbaseAPIKey,
		NearRPCURL:            cfg.Providers.NearRPCURL,
		CallTimeout:           cfg.Pipeline.CallTimeout,
		PaceRequestsPerSecond: cfg.Pipeline.PaceRequestsPerSecond,
		RunLockTTL:            cfg.Pipeline.RunLockTTL,
	})

	// Create server config
	serverConfig := server.Config{
		Debug:        cfg.Debug,
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}
	authConfig := middleware.AuthConfig{
		SyncSecret:        cfg.Auth.SyncSecret,
		CronSecret:        cfg.Auth.CronSecret,
		TrustedCronHeader: cfg.Auth.TrustedCronHeader,
	}

	// Create and start server
	srv := server.New(serverConfig, dataStore, orchestrator, authConfig)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
		cancel()
	}

	// Create shutdown context with timeout (don't use canceled ctx)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("API server stopped")
}

// connectDB opens the database with exponential backoff so the service
// survives starting before its database does
func connectDB(ctx context.Context, dsn string) (*gorm.DB, error) {
	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 5), ctx)
	return backoff.RetryWithData(func() (*gorm.DB, error) {
		db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err != nil {
			logger.Warn("Database not ready, retrying", zap.Error(err))
			return nil, err
		}
		return db, nil
	}, policy)
}
