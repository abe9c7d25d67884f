// Package server initializes and runs the application: it wires config,
// logging, storage, services, and the HTTP transport, and handles graceful
// shutdown.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"userauth-server/internal/config"
	"userauth-server/internal/logging"
	"userauth-server/internal/server/auth"
	"userauth-server/internal/server/db"
	transport "userauth-server/internal/server/http"
	"userauth-server/internal/server/users"
)

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	router *gin.Engine
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	logger := logging.NewDefault(cfg.Env)

	if cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	conn, err := db.Open(ctx, cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	tokens, err := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTExpiresIn)
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("token manager init error: %w", err)
	}

	repo := users.NewPostgresRepository(conn)
	service := users.NewService(repo, logger)

	router := transport.NewRouter(transport.Dependencies{
		Logger: logger,
		Users:  service,
		Tokens: tokens,
	})

	return &App{config: cfg, logger: logger, db: conn, router: router}, nil
}

// Run starts the HTTP server and blocks until the context is cancelled, a
// shutdown signal arrives, or the server fails.
func (app *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              app.config.HTTPAddr,
		Handler:           app.router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		app.logger.Info(ctx, "http server starting", "addr", app.config.HTTPAddr, "env", app.config.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrors <- err
		}
	}()

	select {
	case <-ctx.Done():
		app.logger.Info(ctx, "shutdown signal received")
	case err := <-serverErrors:
		app.logger.Error(ctx, "http server stopped unexpectedly", "error", err)
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown error: %w", err)
	}

	if err := app.db.Close(); err != nil {
		app.logger.Warn(ctx, "db close failed", "error", err)
	}

	app.logger.Info(ctx, "http server stopped")
	return nil
}
