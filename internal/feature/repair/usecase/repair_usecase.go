package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"calc_backend/internal/feature/repair/domain"
	"calc_backend/internal/feature/repair/domain/entity"
)

// MetricsRecorder.ObserveCheck に渡す結果ラベル
const (
	OutcomeInconsistent         = "inconsistent"
	OutcomeConsistent           = "consistent"
	OutcomeNotFound             = "not_found"
	OutcomeInvalidConfiguration = "invalid_configuration"
	OutcomeStoreUnavailable     = "store_unavailable"
	OutcomeTimeout              = "timeout"
	OutcomeError                = "error"
)

// CheckResult はバッチチェックにおける計算1件分の結果です。
type CheckResult struct {
	CalculationID uint
	Inconsistency *entity.Inconsistency
	Err           error
}

// RepairUsecase はパラメータ解決・ギャップ検出・不整合判定をまとめたユースケースです。
// 呼び出しごとの状態を持たないため、複数goroutineから安全に使用できます。
type RepairUsecase struct {
	calculations CalculationRepository
	resolver     *ParameterResolver
	detector     *GapDetector
	metrics      MetricsRecorder
	limiter      BatchLimiter
}

// NewRepairUsecase は RepairUsecase を生成します。metrics は nil でも構いません。
func NewRepairUsecase(
	calculations CalculationRepository,
	charts ChartRepository,
	timeRanges TimeRangeRepository,
	tuples TupleRepository,
	ohlcs OhlcRepository,
	metrics MetricsRecorder,
) *RepairUsecase {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	return &RepairUsecase{
		calculations: calculations,
		resolver:     NewParameterResolver(calculations, charts, timeRanges),
		detector:     NewGapDetector(tuples, ohlcs),
		metrics:      metrics,
	}
}

// WithBatchLimiter は CheckAll の実行間隔を l で制限します。
func (u *RepairUsecase) WithBatchLimiter(l BatchLimiter) *RepairUsecase {
	u.limiter = l
	return u
}

// Repair は派生系列のギャップのうち、元系列で説明できない最も早いものを返します。
// 結果とエラーがともに nil の場合は整合しています。
func (u *RepairUsecase) Repair(ctx context.Context, calculationID uint) (*entity.Inconsistency, error) {
	report, err := u.Report(ctx, calculationID)
	if err != nil {
		return nil, err
	}
	return report.Inconsistency, nil
}

// Report はチェックを実行し、両系列のギャップ一覧と判定結果を返します。
func (u *RepairUsecase) Report(ctx context.Context, calculationID uint) (*entity.GapReport, error) {
	start := time.Now()
	report, err := u.report(ctx, calculationID)
	outcome := outcomeOf(report, err)
	u.metrics.ObserveCheck(outcome, time.Since(start))

	if err != nil {
		slog.Warn("repair check failed", "calculation_id", calculationID, "outcome", outcome, "error", err)
		return nil, err
	}

	attrs := []any{
		"calculation_id", calculationID,
		"chart_id", report.Parameters.ChartID,
		"range_size", report.Parameters.RangeSizeMinutes(),
		"derived_gaps", len(report.Gaps.DerivedGaps),
		"source_gaps", len(report.Gaps.SourceGaps),
	}
	if report.Inconsistency != nil {
		attrs = append(attrs, "first_unexplained", report.Inconsistency.Time)
	}
	slog.Info("repair check finished", append(attrs, "outcome", outcome)...)
	return report, nil
}

func (u *RepairUsecase) report(ctx context.Context, calculationID uint) (*entity.GapReport, error) {
	params, err := u.resolver.ResolveParameters(ctx, calculationID)
	if err != nil {
		return nil, err
	}

	gaps, derivedN, sourceN, err := u.detector.detect(ctx, params.ChartID, params.CalculationID, params.NominalInterval)
	if err != nil {
		return nil, err
	}
	u.metrics.ObserveSeriesLength("derived", derivedN)
	u.metrics.ObserveSeriesLength("source", sourceN)

	report := &entity.GapReport{
		Parameters:   params,
		Gaps:         gaps,
		DerivedCount: derivedN,
		SourceCount:  sourceN,
	}
	if inc, ok := FindEarliestUnexplainedGap(gaps.DerivedGaps, gaps.SourceGaps, params.NominalInterval); ok {
		report.Inconsistency = &inc
	}
	return report, nil
}

// CheckAll は有効な全計算に対してID順に Repair を実行します。
// 個別の失敗は CheckResult に記録され、バッチは継続します。
// エラーを返すのは計算一覧の取得に失敗した場合と ctx が終了した場合のみで、
// 後者ではそれまでの結果も合わせて返します。
func (u *RepairUsecase) CheckAll(ctx context.Context) ([]CheckResult, error) {
	ids, err := u.calculations.ListEnabledIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("list enabled calculations: %w", err)
	}

	results := make([]CheckResult, 0, len(ids))
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		if u.limiter != nil {
			if err := u.limiter.Wait(ctx); err != nil {
				return results, err
			}
		}
		inc, err := u.Repair(ctx, id)
		if err != nil {
			// 1件の失敗でバッチ全体を止めない
			slog.Error("failed to check calculation", "calculation_id", id, "error", err)
		}
		results = append(results, CheckResult{CalculationID: id, Inconsistency: inc, Err: err})
	}
	return results, nil
}

func outcomeOf(report *entity.GapReport, err error) string {
	switch {
	case err == nil && report != nil && report.Inconsistency != nil:
		return OutcomeInconsistent
	case err == nil:
		return OutcomeConsistent
	case errors.Is(err, context.DeadlineExceeded):
		return OutcomeTimeout
	case errors.Is(err, domain.ErrNotFound):
		return OutcomeNotFound
	case errors.Is(err, domain.ErrInvalidConfiguration):
		return OutcomeInvalidConfiguration
	case errors.Is(err, domain.ErrStoreUnavailable):
		return OutcomeStoreUnavailable
	default:
		return OutcomeError
	}
}
