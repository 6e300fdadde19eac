// Package usecase は計算結果の整合性チェックを実装します。
// 設定の解決、派生系列と元系列のギャップ検出、元系列で説明できない最初のギャップの判定を行います。
package usecase

import (
	"context"
	"time"

	"calc_backend/internal/feature/repair/domain/entity"
)

// Goの慣例に従い、インターフェースは提供側（adapters）ではなく利用者（usecase）側で定義します。
// FindByID は行が存在しない場合に対応する not-found エラーを返し、
// それ以外の読み込み失敗は domain.ErrStoreUnavailable でラップします。

// CalculationRepository は計算を読み込みます。
type CalculationRepository interface {
	FindByID(ctx context.Context, id uint) (*entity.Calculation, error)
	// ListEnabledIDs は無効化されていない計算のIDを昇順で返します。
	ListEnabledIDs(ctx context.Context) ([]uint, error)
}

// ChartRepository はチャートを読み込みます。
type ChartRepository interface {
	FindByID(ctx context.Context, id uint) (*entity.Chart, error)
}

// TimeRangeRepository は時間足を読み込みます。
type TimeRangeRepository interface {
	FindByID(ctx context.Context, id uint) (*entity.TimeRange, error)
}

// TupleRepository は計算の派生系列を読み込みます。
// 並び順は問いません（検出側でソートします）。
type TupleRepository interface {
	ListByCalculation(ctx context.Context, calculationID uint) ([]entity.Tuple, error)
}

// OhlcRepository はチャートの元系列（ローソク足）を読み込みます。
// 並び順は問いません（検出側でソートします）。
type OhlcRepository interface {
	ListByChart(ctx context.Context, chartID uint) ([]entity.Ohlc, error)
}

// MetricsRecorder はチェックごとの計測値を受け取ります。
type MetricsRecorder interface {
	ObserveCheck(outcome string, elapsed time.Duration)
	ObserveSeriesLength(series string, n int)
}

type noopMetrics struct{}

func (noopMetrics) ObserveCheck(string, time.Duration) {}
func (noopMetrics) ObserveSeriesLength(string, int)    {}

// BatchLimiter はバッチチェックの実行頻度を制限します。
type BatchLimiter interface {
	Wait(ctx context.Context) error
}
