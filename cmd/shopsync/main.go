package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/dmatushkin/shoppingmaniac-sync/internal/adapter"
	"github.com/dmatushkin/shoppingmaniac-sync/internal/config"
	"github.com/dmatushkin/shoppingmaniac-sync/internal/logger"
	"github.com/dmatushkin/shoppingmaniac-sync/internal/service"
	"github.com/dmatushkin/shoppingmaniac-sync/internal/store"
	"github.com/dmatushkin/shoppingmaniac-sync/internal/workers"
	"github.com/dmatushkin/shoppingmaniac-sync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("shopsync")
	cfg, err := config.GetSyncConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tokens, err := newTokenStore(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create token store")
	}

	remote, err := adapter.NewHTTPRemoteStore(adapter.HTTPRemoteConfig{
		BaseURL:      cfg.Remote.Address,
		Container:    cfg.Remote.Container,
		APIKeyID:     cfg.Remote.APIKeyID,
		APIKeySecret: cfg.Remote.APIKeySecret,
		Timeout:      cfg.Remote.RequestTimeout,
	}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create remote store")
	}

	engine := service.NewEngine(remote, tokens, store.NewMemoryEntityStore(), service.RealScheduler{}, log)
	desc := models.ShoppingListDescriptor()

	if err = engine.SetupUserPermissions(ctx, desc); err != nil {
		// Sync stays unavailable until the account is fixed, but the app
		// itself keeps running.
		log.Warn().Err(err).Msg("permission workflow failed, sync disabled until resolved")
	} else {
		for _, scope := range []models.Scope{models.ScopePrivate, models.ScopeShared} {
			if err = engine.EnsureSubscriptions(ctx, scope); err != nil {
				log.Warn().Err(err).Str("scope", string(scope)).Msg("subscription registration failed")
			}
		}
	}

	syncWorker := workers.NewSyncWorker(engine, desc, cfg.Workers.SyncInterval, log)
	workers.NewWorkers(syncWorker).Run()
	defer syncWorker.Stop()

	log.Info().Msg("shopsync started")
	<-ctx.Done()
	log.Info().Msg("shutting down")
}

func newTokenStore(ctx context.Context, cfg config.DB, log *logger.Logger) (store.TokenStore, error) {
	switch cfg.Driver {
	case "", "memory":
		return store.NewMemoryTokenStore(), nil
	case "sqlite3":
		return store.NewSQLiteTokenStore(cfg.DSN, log)
	case "pgx":
		return store.NewPostgresTokenStore(ctx, cfg.DSN, log)
	default:
		return nil, fmt.Errorf("unknown token store driver %q", cfg.Driver)
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
