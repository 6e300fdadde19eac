package adapters

import (
	"time"

	"github.com/shopspring/decimal"

	"calc_backend/internal/feature/repair/domain/entity"
)

// TimeRangeModel は entity.TimeRange の永続化モデルです。
type TimeRangeModel struct {
	ID          uint          `gorm:"primaryKey"`
	Name        string        `gorm:"size:32;not null;uniqueIndex"`
	RangeSize   *int          `gorm:"column:range_size"`
	Duration    time.Duration `gorm:"not null;default:0"`
	Description string        `gorm:"size:255"`
}

func (TimeRangeModel) TableName() string {
	return "time_ranges"
}

// ChartModel は entity.Chart の永続化モデルです。
type ChartModel struct {
	ID          uint       `gorm:"primaryKey"`
	Name        string     `gorm:"size:64;not null"`
	PairID      uint       `gorm:"not null;index"`
	TimeRangeID uint       `gorm:"not null;index"`
	Last        *time.Time `gorm:"column:last"`
	MaxCount    *int
	Disabled    bool `gorm:"not null;default:false"`
}

func (ChartModel) TableName() string {
	return "charts"
}

// CalculationModel は entity.Calculation の永続化モデルです。
type CalculationModel struct {
	ID       uint       `gorm:"primaryKey"`
	Name     string     `gorm:"size:64;not null"`
	ChartID  uint       `gorm:"not null;index"`
	Last     *time.Time `gorm:"column:last"`
	Disabled bool       `gorm:"not null;default:false"`
}

func (CalculationModel) TableName() string {
	return "calculations"
}

// OhlcModel は entity.Ohlc の永続化モデルです。
// (chart_id, time) の重複行は許容し、読み出し時にも残します。
type OhlcModel struct {
	ID                         uint            `gorm:"primaryKey"`
	ChartID                    uint            `gorm:"not null;index:ohlc_chart_time,priority:1"`
	Time                       time.Time       `gorm:"not null;index:ohlc_chart_time,priority:2"`
	Open                       decimal.Decimal `gorm:"type:decimal(24,10);not null"`
	High                       decimal.Decimal `gorm:"type:decimal(24,10);not null"`
	Low                        decimal.Decimal `gorm:"type:decimal(24,10);not null"`
	Close                      decimal.Decimal `gorm:"type:decimal(24,10);not null"`
	VolumeWeightedAveragePrice decimal.Decimal `gorm:"column:vwap;type:decimal(24,10);not null"`
	Volume                     decimal.Decimal `gorm:"type:decimal(24,10);not null"`
	Count                      int             `gorm:"not null;default:0"`
}

func (OhlcModel) TableName() string {
	return "ohlcs"
}

// TupleModel は entity.Tuple の永続化モデルです。
type TupleModel struct {
	ID            uint            `gorm:"primaryKey"`
	CalculationID uint            `gorm:"not null;index:tuple_calc_time,priority:1"`
	OhlcID        *uint           `gorm:"index"`
	Computation   decimal.Decimal `gorm:"type:decimal(24,10);not null"`
	Time          time.Time       `gorm:"not null;index:tuple_calc_time,priority:2"`
}

func (TupleModel) TableName() string {
	return "tuples"
}

// Models はマイグレーション対象の全モデルを返します。
func Models() []any {
	return []any{&TimeRangeModel{}, &ChartModel{}, &CalculationModel{}, &OhlcModel{}, &TupleModel{}}
}

func (m TimeRangeModel) toEntity() *entity.TimeRange {
	return &entity.TimeRange{
		ID:          m.ID,
		Name:        m.Name,
		RangeSize:   m.RangeSize,
		Duration:    m.Duration,
		Description: m.Description,
	}
}

func (m ChartModel) toEntity() *entity.Chart {
	return &entity.Chart{
		ID:          m.ID,
		Name:        m.Name,
		PairID:      m.PairID,
		TimeRangeID: m.TimeRangeID,
		Last:        utcPtr(m.Last),
		MaxCount:    m.MaxCount,
		Disabled:    m.Disabled,
	}
}

func (m CalculationModel) toEntity() *entity.Calculation {
	return &entity.Calculation{
		ID:       m.ID,
		Name:     m.Name,
		ChartID:  m.ChartID,
		Last:     utcPtr(m.Last),
		Disabled: m.Disabled,
	}
}

func (m OhlcModel) toEntity() entity.Ohlc {
	return entity.Ohlc{
		ID:                         m.ID,
		ChartID:                    m.ChartID,
		Time:                       m.Time.UTC(),
		Open:                       m.Open,
		High:                       m.High,
		Low:                        m.Low,
		Close:                      m.Close,
		VolumeWeightedAveragePrice: m.VolumeWeightedAveragePrice,
		Volume:                     m.Volume,
		Count:                      m.Count,
	}
}

func (m TupleModel) toEntity() entity.Tuple {
	return entity.Tuple{
		ID:            m.ID,
		CalculationID: m.CalculationID,
		OhlcID:        m.OhlcID,
		Computation:   m.Computation,
		Time:          m.Time.UTC(),
	}
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
