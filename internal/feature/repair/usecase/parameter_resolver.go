package usecase

import (
	"context"
	"fmt"

	"calc_backend/internal/feature/repair/domain"
	"calc_backend/internal/feature/repair/domain/entity"
)

// ParameterResolver は Calculation → Chart → TimeRange をたどり、
// 計算の派生系列の公称サンプリング間隔を求めます。
type ParameterResolver struct {
	calculations CalculationRepository
	charts       ChartRepository
	timeRanges   TimeRangeRepository
}

// NewParameterResolver は ParameterResolver を生成します。
func NewParameterResolver(calculations CalculationRepository, charts ChartRepository, timeRanges TimeRangeRepository) *ParameterResolver {
	return &ParameterResolver{
		calculations: calculations,
		charts:       charts,
		timeRanges:   timeRanges,
	}
}

// ResolveParameters は計算とそのチャート、チャートの時間足を読み込みます。
// いずれかが存在しない場合は domain.ErrNotFound 系のエラーを、
// range size が NULL または正でない場合は domain.ErrInvalidConfiguration を返します。
func (r *ParameterResolver) ResolveParameters(ctx context.Context, calculationID uint) (entity.Parameters, error) {
	calc, err := r.calculations.FindByID(ctx, calculationID)
	if err != nil {
		return entity.Parameters{}, fmt.Errorf("resolve calculation %d: %w", calculationID, err)
	}
	if calc == nil {
		return entity.Parameters{}, fmt.Errorf("resolve calculation %d: %w", calculationID, domain.ErrCalculationNotFound)
	}

	chart, err := r.charts.FindByID(ctx, calc.ChartID)
	if err != nil {
		return entity.Parameters{}, fmt.Errorf("resolve chart %d of calculation %d: %w", calc.ChartID, calculationID, err)
	}
	if chart == nil {
		return entity.Parameters{}, fmt.Errorf("resolve chart %d of calculation %d: %w", calc.ChartID, calculationID, domain.ErrChartNotFound)
	}

	tr, err := r.timeRanges.FindByID(ctx, chart.TimeRangeID)
	if err != nil {
		return entity.Parameters{}, fmt.Errorf("resolve time range %d of chart %d: %w", chart.TimeRangeID, chart.ID, err)
	}
	if tr == nil {
		return entity.Parameters{}, fmt.Errorf("resolve time range %d of chart %d: %w", chart.TimeRangeID, chart.ID, domain.ErrTimeRangeNotFound)
	}

	nominal, ok := tr.NominalInterval()
	if !ok {
		return entity.Parameters{}, fmt.Errorf("time range %d has range size %s: %w", tr.ID, describeRangeSize(tr.RangeSize), domain.ErrInvalidConfiguration)
	}

	return entity.Parameters{
		CalculationID:   calc.ID,
		ChartID:         chart.ID,
		NominalInterval: nominal,
	}, nil
}

func describeRangeSize(size *int) string {
	if size == nil {
		return "null"
	}
	return fmt.Sprintf("%d", *size)
}
