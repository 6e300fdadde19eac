package entity

import "time"

// Parameters は1回のチェックで解決された設定です。
type Parameters struct {
	CalculationID   uint
	ChartID         uint
	NominalInterval time.Duration
}

// RangeSizeMinutes は公称間隔を分単位で返します。
func (p Parameters) RangeSizeMinutes() int {
	return int(p.NominalInterval / time.Minute)
}

// GapSet は派生系列（タプル）と元系列（ローソク足）のギャップ点を保持します。
// どちらも昇順で、重複はそのまま残します。
type GapSet struct {
	DerivedGaps []time.Time
	SourceGaps  []time.Time
}

// Inconsistency は元系列で説明できない派生系列の最も早いギャップです。
type Inconsistency struct {
	Time      time.Time
	RangeSize int // 期待される間隔（分）
}

// GapReport はチェックの診断結果一式です。
type GapReport struct {
	Parameters    Parameters
	Gaps          GapSet
	DerivedCount  int
	SourceCount   int
	Inconsistency *Inconsistency // 整合している場合は nil
}
