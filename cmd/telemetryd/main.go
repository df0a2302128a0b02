package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"telemetry/internal/authz"
	"telemetry/internal/config"
	"telemetry/internal/observability/logging"
	"telemetry/internal/observability/metrics"
	serviceimpl "telemetry/internal/service/impl"
	"telemetry/internal/store"
	transport "telemetry/internal/transport/http"
	"telemetry/pkg/db"
)

const serviceName = "telemetry"

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := logging.NewLogger(logging.Config{
		ServiceName: serviceName,
		Environment: cfg.Environment,
		Level:       cfg.LogLevel,
	})
	slog.SetDefault(logger)

	metrics.MustRegister(serviceName)

	gdb, err := db.Open(cfg.DatabaseURL, db.Options{LogSQL: cfg.LogSQL})
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	st := store.New(gdb)
	if err := st.AutoMigrate(); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	passwords := serviceimpl.NewPasswordServiceArgon2id(cfg.HashTimeCost)
	tokens := serviceimpl.NewTokenServiceHS256(serviceimpl.TokenConfig{
		Issuer:     cfg.TokenIssuer,
		Audience:   cfg.TokenAudience,
		DefaultTTL: cfg.TokenTTL,
		SigningKey: []byte(cfg.SigningKey),
	})
	auth := serviceimpl.NewAuthServiceImpl(st, passwords, tokens)
	devices := serviceimpl.NewDeviceServiceImpl(st)
	telemetry := serviceimpl.NewTelemetryServiceImpl(st)

	router := transport.NewRouter(
		transport.RouterConfig{CORSOrigins: cfg.CORSOrigins},
		auth,
		devices,
		telemetry,
		authz.NewSessionGate(tokens),
		authz.NewIngestGate(cfg.IngestSecret),
	)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       2 * time.Minute,
	}

	go func() {
		slog.Info("server listening", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	slog.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
	}

	if sqlDB, err := gdb.DB(); err == nil {
		_ = sqlDB.Close()
	}
	slog.Info("server stopped")
}
