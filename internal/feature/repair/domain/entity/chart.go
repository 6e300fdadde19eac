package entity

import "time"

// Chart は1つの通貨ペアのローソク足系列と TimeRange を結び付けます。
type Chart struct {
	ID          uint
	Name        string
	PairID      uint
	TimeRangeID uint
	Last        *time.Time
	MaxCount    *int
	Disabled    bool
}
