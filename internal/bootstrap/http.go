package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/pyar/jobboard/config"
	httpx "github.com/pyar/jobboard/internal/http"
)

const shutdownTimeout = 10 * time.Second

// NewHTTPServer builds the router with its middleware chain and wraps it in
// a configured http.Server. Order: Recover -> Logging -> Metrics -> Router.
func NewHTTPServer(cfg config.HTTPConfig, services ServiceContainer, logger *slog.Logger) *http.Server {
	if logger == nil {
		logger = slog.Default()
	}

	router := httpx.NewRouter(httpx.RouterServices{
		Jobs:      services.Jobs,
		Companies: services.Companies,
		Feed:      services.Feed,
		Sessions:  services.Sessions,
		Logger:    logger,
	})

	handler := httpx.Chain(router,
		httpx.Recover(logger),
		httpx.Logging(logger),
		httpx.Metrics(services.Metrics),
	)

	addr := cfg.Addr
	if addr == "" {
		addr = ":8080"
	}

	return &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
}

// RunHTTPServer serves until the context is canceled, then shuts the server
// down gracefully. Blocks until both the listener and the shutdown routine
// have finished.
func RunHTTPServer(ctx context.Context, server *http.Server, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting HTTP server", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down HTTP server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return err
		}
		logger.Info("HTTP server stopped")
		return nil
	})

	return g.Wait()
}
