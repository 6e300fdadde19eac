package adapters

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"calc_backend/internal/feature/repair/domain"
	"calc_backend/internal/feature/repair/domain/entity"
	"calc_backend/internal/feature/repair/usecase"
)

type chartGorm struct {
	db *gorm.DB
}

var _ usecase.ChartRepository = (*chartGorm)(nil)

func NewChartRepository(db *gorm.DB) *chartGorm {
	return &chartGorm{db: db}
}

func (r *chartGorm) FindByID(ctx context.Context, id uint) (*entity.Chart, error) {
	var m ChartModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, translateError(err, domain.ErrChartNotFound, fmt.Sprintf("find chart %d", id))
	}
	return m.toEntity(), nil
}

// Create はチャートを登録し、採番されたIDを書き戻します。
func (r *chartGorm) Create(ctx context.Context, c *entity.Chart) error {
	m := ChartModel{
		ID:          c.ID,
		Name:        c.Name,
		PairID:      c.PairID,
		TimeRangeID: c.TimeRangeID,
		Last:        c.Last,
		MaxCount:    c.MaxCount,
		Disabled:    c.Disabled,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return translateError(err, domain.ErrChartNotFound, "create chart")
	}
	c.ID = m.ID
	return nil
}
