package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hipchat_notify/internal/config"
	"hipchat_notify/internal/telemetry"
)

type App struct {
	cfg               *config.Config
	server            *http.Server
	logger            *zap.Logger
	shutdownTelemetry telemetry.ShutdownFunc
}

// NewApp wires the relay server. logger is the app logger, room sink included
// when one is configured.
func NewApp(cfg *config.Config, router *gin.Engine, logger *zap.Logger) *App {
	return &App{
		cfg: cfg,
		server: &http.Server{
			Addr:    cfg.HTTPAddr,
			Handler: router,
		},
		logger: logger,
	}
}

func (a *App) Run(ctx context.Context) error {
	shutdown, err := telemetry.Init(ctx, a.cfg)
	if err != nil {
		return err
	}
	a.shutdownTelemetry = shutdown

	a.logger.Info("hipchat relay listening",
		zap.String("addr", a.cfg.HTTPAddr),
		zap.String("api_server", a.cfg.HipChatAPIServer),
		zap.String("log_room", a.cfg.LogRoom),
	)
	if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info("graceful shutdown started")
	shutdownErr := a.server.Shutdown(ctx)
	if a.shutdownTelemetry != nil {
		if err := a.shutdownTelemetry(ctx); err != nil {
			a.logger.Warn("telemetry shutdown failed", zap.Error(err))
		}
	}
	if shutdownErr != nil {
		return shutdownErr
	}
	a.logger.Info("graceful shutdown completed")
	return nil
}

// ShutdownTimeout bounds how long Shutdown may wait for in-flight requests.
func (a *App) ShutdownTimeout() time.Duration {
	if a.cfg.ShutdownTimeout <= 0 {
		return 10 * time.Second
	}
	return a.cfg.ShutdownTimeout
}

func (a *App) Logger() *zap.Logger {
	return a.logger
}
