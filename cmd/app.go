package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"storefront/api"
	appcart "storefront/application/cart"
	"storefront/config"
	"storefront/infrastructure/persistence/gormdb"
	"storefront/pkg/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// App is a built storefront server
type App struct {
	config *config.Config
	router *api.Router
	server *http.Server
	db     *gorm.DB
	stores *appcart.Registry
}

// Run serves HTTP until ctx is canceled or the listener fails, then shuts
// down gracefully.
func (a *App) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("HTTP server listening",
			zap.String("addr", a.server.Addr),
			zap.String("storage", a.config.Database.Type))
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		return a.Shutdown(context.Background())
	})

	return g.Wait()
}

// Shutdown stops accepting requests, waits for in-flight ones, persists
// every loaded cart and closes the database.
func (a *App) Shutdown(ctx context.Context) error {
	logger.Info("Shutting down server...")

	timeout := a.config.Server.ShutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var errs []error
	if err := a.server.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("server shutdown: %w", err))
	}
	if err := a.stores.Flush(ctx); err != nil {
		errs = append(errs, fmt.Errorf("flush carts: %w", err))
	}
	if a.db != nil {
		if err := gormdb.Close(a.db); err != nil {
			errs = append(errs, fmt.Errorf("close database: %w", err))
		}
	}

	if err := errors.Join(errs...); err != nil {
		logger.Error("Shutdown finished with errors", zap.Error(err))
		return err
	}
	logger.Info("Server stopped")
	return nil
}

// Handler returns the HTTP handler, for tests
func (a *App) Handler() http.Handler {
	return a.server.Handler
}
