package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"calc_backend/internal/feature/repair/domain/entity"
	"calc_backend/internal/feature/repair/usecase"
)

// CachingTimeRangeRepository decorates a TimeRangeRepository with Redis caching.
type CachingTimeRangeRepository struct {
	inner     usecase.TimeRangeRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.TimeRangeRepository = (*CachingTimeRangeRepository)(nil)

// NewCachingTimeRangeRepository decorates a TimeRangeRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "time_ranges".
func NewCachingTimeRangeRepository(rdb *redis.Client, ttl time.Duration, inner usecase.TimeRangeRepository, namespace string) *CachingTimeRangeRepository {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	if namespace == "" {
		namespace = "time_ranges"
	}
	return &CachingTimeRangeRepository{inner: inner, rdb: rdb, ttl: ttl, namespace: namespace}
}

// FindByID retrieves a time range, checking cache first then falling back to the database.
func (c *CachingTimeRangeRepository) FindByID(ctx context.Context, id uint) (*entity.TimeRange, error) {
	if c.rdb == nil {
		return c.inner.FindByID(ctx, id)
	}
	return readThrough(ctx, c.rdb, cacheKey(c.namespace, id), c.ttl, func() (*entity.TimeRange, error) {
		return c.inner.FindByID(ctx, id)
	})
}
