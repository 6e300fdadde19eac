// Command check runs the repair check once for one calculation or for every enabled one.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"calc_backend/internal/app/config"
	"calc_backend/internal/app/di"
	"calc_backend/internal/feature/repair/adapters"
	"calc_backend/internal/feature/repair/usecase"
	infradb "calc_backend/internal/platform/db"
	"calc_backend/internal/platform/logging"
	"calc_backend/internal/shared/ratelimiter"
)

func main() {
	os.Exit(realMain())
}

func realMain() int {
	id := flag.Uint("id", 0, "calculation id to check (0 checks every enabled calculation)")
	timeout := flag.Duration("timeout", 5*time.Minute, "overall deadline")
	rate := flag.Int("rate", 0, "maximum calculations checked per minute (0 is unlimited)")
	flag.Parse()

	cfg, err := config.Load(".env")
	if err != nil {
		slog.Error("failed to load config", "error", err)
		return 1
	}
	logging.Setup(os.Stderr, cfg.LogLevel, cfg.LogFormat)

	db, err := infradb.OpenDB(cfg.DB, adapters.Models()...)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		return 1
	}
	defer func() { _ = infradb.Close(db) }()

	// バッチ実行ではキャッシュを使わない
	uc := di.NewRepairUsecase(db, nil, 0, nil)
	if *rate > 0 {
		uc.WithBatchLimiter(ratelimiter.NewRateLimiter(*rate, time.Minute))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, *timeout)
	defer cancel()

	return run(ctx, uc, *id)
}

// run returns the process exit code: 0 when every checked calculation is consistent,
// 1 when any check failed, and 2 when an inconsistency was found.
func run(ctx context.Context, uc *usecase.RepairUsecase, id uint) int {
	var results []usecase.CheckResult
	if id != 0 {
		inc, err := uc.Repair(ctx, id)
		results = []usecase.CheckResult{{CalculationID: id, Inconsistency: inc, Err: err}}
	} else {
		var err error
		results, err = uc.CheckAll(ctx)
		if err != nil {
			slog.Error("batch check aborted", "checked", len(results), "error", err)
			return 1
		}
	}

	code := 0
	for _, r := range results {
		switch {
		case r.Err != nil:
			code = 1
		case r.Inconsistency != nil:
			slog.Warn("inconsistent calculation",
				"calculation_id", r.CalculationID,
				"time", r.Inconsistency.Time.UTC(),
				"range_size", r.Inconsistency.RangeSize,
			)
			if code == 0 {
				code = 2
			}
		}
	}
	slog.Info("check finished", "checked", len(results), "exit_code", code)
	return code
}
