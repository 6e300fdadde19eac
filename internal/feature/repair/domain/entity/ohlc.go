package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Ohlc はチャートの元系列を構成するローソク足1本です。
type Ohlc struct {
	ID                         uint
	ChartID                    uint
	Time                       time.Time
	Open                       decimal.Decimal
	High                       decimal.Decimal
	Low                        decimal.Decimal
	Close                      decimal.Decimal
	VolumeWeightedAveragePrice decimal.Decimal
	Volume                     decimal.Decimal
	Count                      int
}
