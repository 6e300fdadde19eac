package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"calc_backend/internal/feature/repair/domain/entity"
	"calc_backend/internal/feature/repair/usecase"
)

// CachingChartRepository decorates a ChartRepository with Redis caching.
type CachingChartRepository struct {
	inner     usecase.ChartRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.ChartRepository = (*CachingChartRepository)(nil)

// NewCachingChartRepository decorates a ChartRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "charts".
func NewCachingChartRepository(rdb *redis.Client, ttl time.Duration, inner usecase.ChartRepository, namespace string) *CachingChartRepository {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	if namespace == "" {
		namespace = "charts"
	}
	return &CachingChartRepository{inner: inner, rdb: rdb, ttl: ttl, namespace: namespace}
}

// FindByID retrieves a chart, checking cache first then falling back to the database.
func (c *CachingChartRepository) FindByID(ctx context.Context, id uint) (*entity.Chart, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.FindByID(ctx, id)
	}
	return readThrough(ctx, c.rdb, cacheKey(c.namespace, id), c.ttl, func() (*entity.Chart, error) {
		return c.inner.FindByID(ctx, id)
	})
}
