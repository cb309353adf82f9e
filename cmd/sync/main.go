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
	"github.com/voidlabs/ecosystem-indexer/internal/config"
	"github.com/voidlabs/ecosystem-indexer/internal/domain"
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
	cfg, err := config.LoadSyncConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// A signal cancels the run context; in-flight provider calls abort at
	// their next timeout or pacer wait
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	}()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:     cfg.Debug,
		SentryDSN: cfg.SentryDSN,
		Tags: map[string]string{
			"service": "sync",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting ecosystem sync run")

	// Connect to database, retrying while it comes up
	db, err := connectDB(ctx, cfg.Database.DSN())
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}

	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.Fatal("Failed to configure connection pool", zap.Error(err))
	}

	// Run schema migrations
	if err := store.Migrate(db); err != nil {
		logger.Fatal("Failed to migrate database", zap.Error(err))
	}

	dataStore := store.NewPGStore(db)

	httpClient := adapter.NewHTTPClient(cfg.Pipeline.CallTimeout)
	jsonAdapter := adapter.NewJSON()
	clock := adapter.NewClock()

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

	results, err := orchestrator.Run(ctx, domain.SyncSourceCLI)
	if err != nil {
		logger.Error(err)
		logger.Flush(2 * time.Second)
		os.Exit(1)
	}

	logger.Info("Sync run finished",
		zap.Int("categories_upserted", results.Categories.Upserted),
		zap.Int("opportunities_total", results.Opportunities.Total),
	)
}

// connectDB opens the database with exponential backoff so the one-shot run
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
