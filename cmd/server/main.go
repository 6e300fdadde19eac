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

	redisv9 "github.com/redis/go-redis/v9"

	"calc_backend/internal/app/config"
	"calc_backend/internal/app/di"
	"calc_backend/internal/app/router"
	"calc_backend/internal/feature/repair/adapters"
	infradb "calc_backend/internal/platform/db"
	"calc_backend/internal/platform/http/handler"
	"calc_backend/internal/platform/logging"
	"calc_backend/internal/platform/metrics"
	infraredis "calc_backend/internal/platform/redis"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logging.Setup(os.Stdout, cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// db
	db, err := infradb.OpenDB(cfg.DB, adapters.Models()...)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer func() { _ = infradb.Close(db) }()

	readiness := map[string]handler.Pinger{
		"database": handler.PingerFunc(func(ctx context.Context) error { return infradb.Ping(ctx, db) }),
	}

	// Redis
	var rdb *redisv9.Client
	if cfg.Redis.Enabled() {
		if tmp, err := infraredis.NewRedisClient(ctx, cfg.Redis); err != nil {
			slog.Warn("Redis unavailable. Running without cache.", "error", err)
		} else {
			rdb = tmp
			defer func() {
				if err := rdb.Close(); err != nil {
					slog.Error("failed to close Redis client", "error", err)
				}
			}()
			readiness["redis"] = handler.PingerFunc(func(ctx context.Context) error { return rdb.Ping(ctx).Err() })
		}
	}

	// Usecase / Handler
	repairUC := di.NewRepairUsecase(db, rdb, cfg.CacheTTL, metrics.New(nil))
	repairH := di.NewRepairHandler(repairUC)

	// ルータ生成
	r := router.NewRouter(repairH, router.Options{
		RequestTimeout: cfg.RequestTimeout,
		Readiness:      readiness,
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
	}
}
