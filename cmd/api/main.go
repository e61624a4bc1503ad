package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/Overland-East-Bay/name-sorter/internal/adapters/httpapi"
	memnamelistrepo "github.com/Overland-East-Bay/name-sorter/internal/adapters/memory/namelistrepo"
	postgres "github.com/Overland-East-Bay/name-sorter/internal/adapters/postgres"
	pgnamelistrepo "github.com/Overland-East-Bay/name-sorter/internal/adapters/postgres/namelistrepo"
	"github.com/Overland-East-Bay/name-sorter/internal/app/namelists"
	platformclock "github.com/Overland-East-Bay/name-sorter/internal/platform/clock"
	"github.com/Overland-East-Bay/name-sorter/internal/platform/config"
	"github.com/Overland-East-Bay/name-sorter/internal/platform/logging"
	"github.com/Overland-East-Bay/name-sorter/internal/platform/metrics"
	namelistrepoport "github.com/Overland-East-Bay/name-sorter/internal/ports/out/namelistrepo"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "api: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadAPIConfigFromEnv()
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	log, err := logging.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var (
		repo    namelistrepoport.Repository
		cleanup func()
	)
	switch cfg.StorageBackend {
	case config.StoragePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, postgres.PoolOptions{})
		if err != nil {
			return fmt.Errorf("invalid postgres config: %w", err)
		}
		cleanup = pool.Close
		if err := postgres.Migrate(ctx, pool); err != nil {
			pool.Close()
			return err
		}
		repo = pgnamelistrepo.NewRepo(pool)
	default:
		repo = memnamelistrepo.NewRepo()
	}
	if cleanup != nil {
		defer cleanup()
	}

	clk := platformclock.NewSystemClock()
	nameListSvc := namelists.NewService(repo, clk, log)

	api := httpapi.NewServer(nameListSvc, metrics.New(), log)
	api.MaxBodyBytes = cfg.MaxBodyBytes

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           httpapi.NewRouter(api),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("api listening", zap.String("addr", srv.Addr), zap.String("storage", string(cfg.StorageBackend)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
