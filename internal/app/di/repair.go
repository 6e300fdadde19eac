// Package di provides dependency injection factories for creating application components.
package di

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"calc_backend/internal/feature/repair/adapters"
	"calc_backend/internal/feature/repair/transport/handler"
	"calc_backend/internal/feature/repair/usecase"
	"calc_backend/internal/platform/cache"
)

// NewRepairUsecase wires the gorm repositories into a RepairUsecase.
// When rdb is non-nil, the chart and time range lookups go through the Redis cache.
// Tuples and candles are always read from the database.
func NewRepairUsecase(db *gorm.DB, rdb *redis.Client, cacheTTL time.Duration, metrics usecase.MetricsRecorder) *usecase.RepairUsecase {
	charts := cache.NewCachingChartRepository(rdb, cacheTTL, adapters.NewChartRepository(db), "charts")
	timeRanges := cache.NewCachingTimeRangeRepository(rdb, cacheTTL, adapters.NewTimeRangeRepository(db), "time_ranges")

	return usecase.NewRepairUsecase(
		adapters.NewCalculationRepository(db),
		charts,
		timeRanges,
		adapters.NewTupleRepository(db),
		adapters.NewOhlcRepository(db),
		metrics,
	)
}

// NewRepairHandler creates the HTTP handler for the repair endpoints.
func NewRepairHandler(uc *usecase.RepairUsecase) *handler.RepairHandler {
	return handler.NewRepairHandler(uc)
}
