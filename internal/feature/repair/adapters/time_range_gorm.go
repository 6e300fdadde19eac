package adapters

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"calc_backend/internal/feature/repair/domain"
	"calc_backend/internal/feature/repair/domain/entity"
	"calc_backend/internal/feature/repair/usecase"
)

type timeRangeGorm struct {
	db *gorm.DB
}

var _ usecase.TimeRangeRepository = (*timeRangeGorm)(nil)

func NewTimeRangeRepository(db *gorm.DB) *timeRangeGorm {
	return &timeRangeGorm{db: db}
}

// FindByID は保存された時間足を返します。range_size が NULL の場合 RangeSize は nil になります。
func (r *timeRangeGorm) FindByID(ctx context.Context, id uint) (*entity.TimeRange, error) {
	var m TimeRangeModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, translateError(err, domain.ErrTimeRangeNotFound, fmt.Sprintf("find time range %d", id))
	}
	return m.toEntity(), nil
}

// Create は時間足を登録し、採番されたIDを書き戻します。
func (r *timeRangeGorm) Create(ctx context.Context, tr *entity.TimeRange) error {
	m := TimeRangeModel{
		ID:          tr.ID,
		Name:        tr.Name,
		RangeSize:   tr.RangeSize,
		Duration:    tr.Duration,
		Description: tr.Description,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return translateError(err, domain.ErrTimeRangeNotFound, "create time range")
	}
	tr.ID = m.ID
	return nil
}
