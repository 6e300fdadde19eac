package entity

import "time"

// Calculation はチャートのローソク足から派生値を計算する名前付きの計算です。
// ローソク足1本につき Tuple を1件出力します。
type Calculation struct {
	ID       uint
	Name     string
	ChartID  uint
	Last     *time.Time
	Disabled bool
}
