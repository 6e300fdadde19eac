package adapters

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"calc_backend/internal/feature/repair/domain"
	"calc_backend/internal/feature/repair/domain/entity"
	"calc_backend/internal/feature/repair/usecase"
)

type calculationGorm struct {
	db *gorm.DB
}

var _ usecase.CalculationRepository = (*calculationGorm)(nil)

func NewCalculationRepository(db *gorm.DB) *calculationGorm {
	return &calculationGorm{db: db}
}

func (r *calculationGorm) FindByID(ctx context.Context, id uint) (*entity.Calculation, error) {
	var m CalculationModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, translateError(err, domain.ErrCalculationNotFound, fmt.Sprintf("find calculation %d", id))
	}
	return m.toEntity(), nil
}

// ListEnabledIDs は無効化されていない計算のIDを昇順で返します。
func (r *calculationGorm) ListEnabledIDs(ctx context.Context) ([]uint, error) {
	ids := []uint{}
	err := r.db.WithContext(ctx).
		Model(&CalculationModel{}).
		Where("disabled = ?", false).
		Order("id").
		Pluck("id", &ids).Error
	if err != nil {
		return nil, translateError(err, domain.ErrCalculationNotFound, "list enabled calculations")
	}
	return ids, nil
}

// Create は計算を登録し、採番されたIDを書き戻します。
func (r *calculationGorm) Create(ctx context.Context, c *entity.Calculation) error {
	m := CalculationModel{ID: c.ID, Name: c.Name, ChartID: c.ChartID, Last: c.Last, Disabled: c.Disabled}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return translateError(err, domain.ErrCalculationNotFound, "create calculation")
	}
	c.ID = m.ID
	return nil
}
