package adapters

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"calc_backend/internal/feature/repair/domain"
	"calc_backend/internal/feature/repair/domain/entity"
	"calc_backend/internal/feature/repair/usecase"
)

type ohlcGorm struct {
	db *gorm.DB
}

var _ usecase.OhlcRepository = (*ohlcGorm)(nil)

func NewOhlcRepository(db *gorm.DB) *ohlcGorm {
	return &ohlcGorm{db: db}
}

// byTimeThenID は同一時刻の行が登録順を保つよう time, id の順で並べます。
var byTimeThenID = clause.OrderBy{Columns: []clause.OrderByColumn{
	{Column: clause.Column{Name: "time"}},
	{Column: clause.Column{Name: "id"}},
}}

// ListByChart はチャートの全ローソク足を time, id の順で返します。
// 存在しないチャートの場合は空スライスを返します。
func (r *ohlcGorm) ListByChart(ctx context.Context, chartID uint) ([]entity.Ohlc, error) {
	var rows []OhlcModel
	err := r.db.WithContext(ctx).
		Where("chart_id = ?", chartID).
		Clauses(byTimeThenID).
		Find(&rows).Error
	if err != nil {
		return nil, translateError(err, domain.ErrChartNotFound, fmt.Sprintf("list candles of chart %d", chartID))
	}
	out := make([]entity.Ohlc, 0, len(rows))
	for _, m := range rows {
		out = append(out, m.toEntity())
	}
	return out, nil
}

// CreateBatch はローソク足を1文でまとめて登録します。
func (r *ohlcGorm) CreateBatch(ctx context.Context, ohlcs []entity.Ohlc) error {
	if len(ohlcs) == 0 {
		return nil
	}
	ms := make([]OhlcModel, 0, len(ohlcs))
	for _, e := range ohlcs {
		ms = append(ms, OhlcModel{
			ID:                         e.ID,
			ChartID:                    e.ChartID,
			Time:                       e.Time,
			Open:                       e.Open,
			High:                       e.High,
			Low:                        e.Low,
			Close:                      e.Close,
			VolumeWeightedAveragePrice: e.VolumeWeightedAveragePrice,
			Volume:                     e.Volume,
			Count:                      e.Count,
		})
	}
	return translateError(r.db.WithContext(ctx).Create(&ms).Error, domain.ErrChartNotFound, "create candles")
}
