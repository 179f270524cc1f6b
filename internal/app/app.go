package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/ferdiebergado/sulat/internal/config"
	"github.com/ferdiebergado/sulat/internal/letter"
	"github.com/ferdiebergado/sulat/internal/middleware"
	"github.com/ferdiebergado/sulat/internal/notify"
)

type App struct {
	server          *http.Server
	config          *config.Config
	provider        *Provider
	middlewares     []func(http.Handler) http.Handler
	stop            context.CancelFunc
	shutdownTimeout time.Duration

	once    sync.Once
	handler http.Handler
}

func (a *App) registerMiddlewares() {
	for _, mw := range a.middlewares {
		a.provider.Router.Use(mw)
	}
}

func (a *App) setupRoutes() {
	p := a.provider

	letterService := letter.NewService(p.Repo, p.Roster, p.Broker)
	letterHandler := letter.NewHandler(letterService)
	mountLetterRoutes(p.Router, letterHandler, p.Validator, a.config.Server.MaxBodyBytes)

	notifyHandler := notify.NewHandler(p.Broker, a.config.Notifier.Heartbeat.Duration)
	mountNotifyRoutes(p.Router, notifyHandler)

	mountAdminRoutes(p.Router, p.Guard, letterHandler, p.Validator, a.config.Server.MaxBodyBytes)
}

// Handler builds the full request pipeline. CORS wraps the router so that
// preflight requests are answered without a matching route.
func (a *App) Handler() http.Handler {
	a.once.Do(func() {
		a.registerMiddlewares()
		a.setupRoutes()
		a.handler = middleware.CORS(a.config.Server.AllowedOrigin)(a.provider.Router)
	})
	return a.handler
}

func (a *App) Start(ctx context.Context) error {
	a.server.Handler = a.Handler()

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Server listening...", "address", a.server.Addr)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- fmt.Errorf("listen and serve: %w", err)
			return
		}
		slog.Info("Server has stopped.")
		serverErr <- nil
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutdown signal received.")
		return nil
	case err := <-serverErr:
		return err
	}
}

// Shutdown ends the event streams first so that the server does not wait on
// them.
func (a *App) Shutdown() error {
	slog.Info("Shutting down server...")
	a.provider.Broker.Close()
	a.stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.shutdownTimeout)
	defer cancel()
	if err := a.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown server: %w", err)
	}
	return nil
}

func New(cfg *config.Config, provider *Provider, middlewares []func(http.Handler) http.Handler) *App {
	serverCtx, stop := context.WithCancel(context.Background())
	serverCfg := cfg.Server
	server := &http.Server{
		Addr: fmt.Sprintf(":%d", serverCfg.Port),
		BaseContext: func(_ net.Listener) context.Context {
			return serverCtx
		},
		ReadTimeout:  serverCfg.ReadTimeout.Duration,
		WriteTimeout: serverCfg.WriteTimeout.Duration,
		IdleTimeout:  serverCfg.IdleTimeout.Duration,
	}

	return &App{
		config:          cfg,
		provider:        provider,
		server:          server,
		middlewares:     middlewares,
		stop:            stop,
		shutdownTimeout: serverCfg.ShutdownTimeout.Duration,
	}
}
