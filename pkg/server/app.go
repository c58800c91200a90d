package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"Candl/internal/usecase"
	"Candl/pkg/cache"
	"Candl/pkg/config"
	xhttp "Candl/pkg/http"
	applogger "Candl/pkg/logger"
)

// App encapsulates the entire application lifecycle.
type App struct {
	cfg        *config.Config
	handler    xhttp.Handler
	warmer     *usecase.QuoteWarmer
	store      cache.Store
	log        *applogger.Logger
	httpServer *xhttp.Server
}

// New creates a new App instance with all dependencies.
func New(cfg *config.Config, handler xhttp.Handler, warmer *usecase.QuoteWarmer, store cache.Store, log *applogger.Logger) *App {
	return &App{
		cfg:     cfg,
		handler: handler,
		warmer:  warmer,
		store:   store,
		log:     log,
	}
}

// Run starts the application and blocks until interrupted.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a.httpServer = xhttp.NewServer(a.handler,
		xhttp.WithPort(a.cfg.Server.Port),
		xhttp.WithTimeouts(a.cfg.Server.ReadTimeout, a.cfg.Server.WriteTimeout, a.cfg.Server.ShutdownTimeout),
	)

	if a.warmer != nil {
		if err := a.warmer.Start(ctx); err != nil {
			// the warmer is an optimization, not a dependency
			a.log.Warn("quote warmer failed to start", applogger.Error(err))
		} else {
			a.log.Info("quote warmer started", applogger.Strings("symbols", a.cfg.Finnhub.Stream.Symbols))
		}
	}

	if err := a.httpServer.Start(); err != nil {
		a.log.Error("http server start error", applogger.Error(err))
		return err
	}
	a.log.Info("server started", applogger.Int("port", a.cfg.Server.Port))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	a.log.Info("shutdown signal received")
	return a.shutdown(ctx)
}

// shutdown gracefully stops all services.
func (a *App) shutdown(ctx context.Context) error {
	if a.warmer != nil {
		if err := a.warmer.Stop(); err != nil {
			a.log.Warn("quote warmer stop error", applogger.Error(err))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, a.cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := a.httpServer.Stop(shutdownCtx); err != nil {
		a.log.Error("http shutdown error", applogger.Error(err))
	}

	if err := a.store.Close(); err != nil {
		a.log.Warn("cache close error", applogger.Error(err))
	}

	a.log.Info("shutdown complete")
	return nil
}
