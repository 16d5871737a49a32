package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"sheshape-storefront/internal/checkout"
	"sheshape-storefront/internal/config"
	"sheshape-storefront/internal/db"
	"sheshape-storefront/internal/httpserver"
	"sheshape-storefront/internal/session"
	"sheshape-storefront/internal/upstream"
)

func main() {
	cfg, err := config.Load(configPath())
	if err != nil {
		slog.Error("load config", "err", err)
		os.Exit(1)
	}
	logger := newLogger(cfg.Log.Level, cfg.Log.Pretty)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := db.Connect(ctx, cfg.Postgres.DSN)
	if err != nil {
		logger.Error("connect to db", "err", err)
		os.Exit(1)
	}
	defer pool.Close()

	store := session.NewPostgres(pool)
	janitor := session.NewJanitor(store, cfg.Session.TTL, cfg.Session.JanitorInterval, logger)
	go janitor.Run(ctx)

	api := upstream.New(cfg.Upstream.BaseURL, cfg.Upstream.Timeout)
	checkoutSvc := checkout.NewService(store, api, api, api, logger)

	srv := httpserver.New(cfg.HTTP.Addr, httpserver.Timeouts{
		Read:  cfg.HTTP.ReadTimeout,
		Write: cfg.HTTP.WriteTimeout,
		Idle:  cfg.HTTP.IdleTimeout,
	}, httpserver.Deps{
		Checkout:    checkoutSvc,
		Upstream:    api,
		DB:          pool,
		JWTSecret:   cfg.Auth.JWTSecret,
		CORSOrigins: cfg.CORS.Origins,
		Logger:      logger,
	})

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("starting http server", "addr", cfg.HTTP.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("received shutdown signal")
	case err := <-serverErr:
		logger.Error("server error", "err", err)
	}
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "err", err)
	} else {
		logger.Info("server stopped")
	}
}

func configPath() string {
	if p := os.Getenv("SHESHAPE_CONFIG"); p != "" {
		return p
	}
	return "config/config.yaml"
}

func newLogger(level string, pretty bool) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if pretty {
		return slog.New(slog.NewTextHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}
