// Package entrypoint wires configuration, storage and the HTTP layer
// together and owns the server lifecycle.
package entrypoint

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/mrlokans/bookstore/docs"
	"github.com/mrlokans/bookstore/internal/config"
	"github.com/mrlokans/bookstore/internal/database"
	"github.com/mrlokans/bookstore/internal/database/books"
	http_controllers "github.com/mrlokans/bookstore/internal/http"
	"github.com/mrlokans/bookstore/internal/logging"
)

// Run builds every component from the configuration and blocks until the
// HTTP listener stops. The database schema is created (if absent) before
// the listener accepts traffic, and the connection pool is closed after
// it stops.
func Run(cfg *config.Config, version string) error {
	logger, err := logging.New(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	defer logger.Sync() //nolint:errcheck // syncing stdout is best-effort

	docs.SwaggerInfo.Version = version
	logger.Info("starting bookstore", zap.String("version", version))

	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("failed to close database", zap.Error(err))
		}
	}()

	router := http_controllers.NewRouter(http_controllers.RouterConfig{
		BookStore: books.NewRepository(db.DB),
		Logger:    logger,
	})

	return Serve(router, cfg, logger)
}

// Serve runs the HTTP server until SIGINT or SIGTERM, then drains it
// within the configured shutdown timeout.
func Serve(handler http.Handler, cfg *config.Config, logger *zap.Logger) error {
	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: handler,
	}

	nCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gCtx := errgroup.WithContext(nCtx)

	g.Go(func() error {
		logger.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second
		logger.Info("shutting down server", zap.Duration("timeout", timeout))

		sCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return srv.Shutdown(sCtx)
	})

	err := g.Wait()
	logger.Info("server exited", zap.Error(err))
	return err
}
