package adapters

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"calc_backend/internal/feature/repair/domain"
	"calc_backend/internal/feature/repair/domain/entity"
	"calc_backend/internal/feature/repair/usecase"
)

type tupleGorm struct {
	db *gorm.DB
}

var _ usecase.TupleRepository = (*tupleGorm)(nil)

func NewTupleRepository(db *gorm.DB) *tupleGorm {
	return &tupleGorm{db: db}
}

// ListByCalculation は計算の全タプルを time, id の順で返します。
func (r *tupleGorm) ListByCalculation(ctx context.Context, calculationID uint) ([]entity.Tuple, error) {
	var rows []TupleModel
	err := r.db.WithContext(ctx).
		Where("calculation_id = ?", calculationID).
		Clauses(byTimeThenID).
		Find(&rows).Error
	if err != nil {
		return nil, translateError(err, domain.ErrCalculationNotFound, fmt.Sprintf("list tuples of calculation %d", calculationID))
	}
	out := make([]entity.Tuple, 0, len(rows))
	for _, m := range rows {
		out = append(out, m.toEntity())
	}
	return out, nil
}

// CreateBatch はタプルを1文でまとめて登録します。
func (r *tupleGorm) CreateBatch(ctx context.Context, tuples []entity.Tuple) error {
	if len(tuples) == 0 {
		return nil
	}
	ms := make([]TupleModel, 0, len(tuples))
	for _, e := range tuples {
		ms = append(ms, TupleModel{
			ID:            e.ID,
			CalculationID: e.CalculationID,
			OhlcID:        e.OhlcID,
			Computation:   e.Computation,
			Time:          e.Time,
		})
	}
	return translateError(r.db.WithContext(ctx).Create(&ms).Error, domain.ErrCalculationNotFound, "create tuples")
}
