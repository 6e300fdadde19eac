package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tuple は Calculation が出力した派生値1件です。
type Tuple struct {
	ID            uint
	CalculationID uint
	OhlcID        *uint // 計算元のローソク足。欠損している場合は nil
	Computation   decimal.Decimal
	Time          time.Time
}
