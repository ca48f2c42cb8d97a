// Package server wires the backing store together: dataset, session and
// account services, the gRPC endpoint and the optional metrics endpoint.
package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dmitrijs2005/salesmatch/internal/logging"
	"github.com/dmitrijs2005/salesmatch/internal/models"
	"github.com/dmitrijs2005/salesmatch/internal/server/accounts"
	"github.com/dmitrijs2005/salesmatch/internal/server/config"
	"github.com/dmitrijs2005/salesmatch/internal/server/metrics"
	accountsrepo "github.com/dmitrijs2005/salesmatch/internal/server/repositories/accounts"
	"github.com/dmitrijs2005/salesmatch/internal/server/sessions"
	"golang.org/x/sync/errgroup"

	gs "github.com/dmitrijs2005/salesmatch/internal/server/grpc"
)

type App struct {
	config         *config.Config
	logger         logging.Logger
	metrics        *metrics.Collector
	repo           accountsrepo.Repository
	closer         io.Closer
	sessionService *sessions.Service
	accountService *accounts.Service
}

// NewApp loads the seed dataset and opens the store: PostgreSQL when a DSN is
// configured, memory otherwise.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewJSON(os.Stdout, slog.LevelInfo)

	seed, err := models.LoadSeed(c.SeedFile)
	if err != nil {
		return nil, fmt.Errorf("seed error: %w", err)
	}

	app := &App{config: c, logger: logger, metrics: metrics.NewCollector()}

	if c.DatabaseDSN != "" {
		pg, err := accountsrepo.OpenPostgres(ctx, c.DatabaseDSN, seed)
		if err != nil {
			return nil, fmt.Errorf("db init error: %w", err)
		}
		app.repo, app.closer = pg, pg
		logger.Info(ctx, "Using PostgreSQL store", "accounts", len(seed))
	} else {
		app.repo = accountsrepo.NewMemoryRepository(seed)
		logger.Info(ctx, "Using in-memory store", "accounts", len(seed))
	}

	app.sessionService = sessions.NewService(app.repo, c, app.metrics)
	app.accountService = accounts.NewService(app.repo, app.metrics)

	return app, nil
}

func (app *App) startGRPCServer(ctx context.Context) error {
	s := gs.NewGRPCServer(app.config, app.logger, app.sessionService, app.accountService, app.metrics)
	return s.Run(ctx)
}

func (app *App) startMetricsServer(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", app.metrics.Handler())

	srv := &http.Server{Addr: app.config.MetricsAddr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	app.logger.Info(ctx, "Starting metrics server", "address", app.config.MetricsAddr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Run serves until SIGINT/SIGTERM/SIGQUIT or until one of the servers fails.
func (app *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	app.logger.Info(ctx, "Starting app...")

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return app.startGRPCServer(ctx) })
	if app.config.MetricsAddr != "" {
		g.Go(func() error { return app.startMetricsServer(ctx) })
	}

	err := g.Wait()

	if app.closer != nil {
		if cerr := app.closer.Close(); cerr != nil {
			app.logger.Error(context.Background(), "store close error", "error", cerr)
		}
	}

	app.logger.Info(context.Background(), "App stopped")
	return err
}
