// Package domain はrepairフィーチャーのドメインエラーを定義します。
package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound は「IDが解決できない」系エラーすべての根です。
	ErrNotFound = errors.New("not found")

	// ErrCalculationNotFound は計算が存在しない場合に返されます。
	ErrCalculationNotFound = fmt.Errorf("calculation %w", ErrNotFound)

	// ErrChartNotFound は計算が参照するチャートが存在しない場合に返されます。
	ErrChartNotFound = fmt.Errorf("chart %w", ErrNotFound)

	// ErrTimeRangeNotFound はチャートが参照する時間足が存在しない場合に返されます。
	ErrTimeRangeNotFound = fmt.Errorf("time range %w", ErrNotFound)

	// ErrInvalidConfiguration は時間足の range size が NULL または正でないことを示します。
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrStoreUnavailable はストアの読み込み失敗をラップします。
	// リトライするかどうかは呼び出し側が判断します。
	ErrStoreUnavailable = errors.New("store unavailable")
)
