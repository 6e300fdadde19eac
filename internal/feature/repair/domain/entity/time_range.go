// Package entity はrepairフィーチャーのドメインモデルを定義します。
package entity

import "time"

// TimeRange はチャートのサンプリング粒度（時間足）です。
type TimeRange struct {
	ID          uint
	Name        string
	RangeSize   *int          // 公称サンプリング間隔（分）。未設定なら nil
	Duration    time.Duration // 参考値のみ
	Description string
}

// NominalInterval は RangeSize を time.Duration に変換し、使用可能かどうかを返します。
// nil または正でない RangeSize は使用できません。
func (tr TimeRange) NominalInterval() (time.Duration, bool) {
	if tr.RangeSize == nil || *tr.RangeSize <= 0 {
		return 0, false
	}
	return time.Duration(*tr.RangeSize) * time.Minute, true
}
