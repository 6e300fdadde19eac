package dto

// RepairResponse は未説明ギャップのレスポンスDTOです。
type RepairResponse struct {
	Time      string `json:"time"`      // ギャップ時刻（RFC3339, UTC）
	RangeSize int    `json:"rangeSize"` // 期待間隔（分）
}

// GapReportResponse はギャップ診断結果のレスポンスDTOです。
type GapReportResponse struct {
	CalculationID uint            `json:"calculationId"`
	ChartID       uint            `json:"chartId"`
	RangeSize     int             `json:"rangeSize"`
	DerivedCount  int             `json:"derivedCount"` // tuple件数
	SourceCount   int             `json:"sourceCount"`  // ohlc件数
	DerivedGaps   []string        `json:"derivedGaps"`
	SourceGaps    []string        `json:"sourceGaps"`
	Inconsistency *RepairResponse `json:"inconsistency"` // 整合している場合はnull
}

// ErrorResponse はエラー時のレスポンスDTOです。
type ErrorResponse struct {
	Error string `json:"error"`
}
