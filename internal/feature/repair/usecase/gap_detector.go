package usecase

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"time"

	"calc_backend/internal/feature/repair/domain"
	"calc_backend/internal/feature/repair/domain/entity"
)

// GapDetector は計算の派生系列と元系列を読み込み、
// 間隔が公称間隔からずれている点を検出します。
type GapDetector struct {
	tuples TupleRepository
	ohlcs  OhlcRepository
}

// NewGapDetector は GapDetector を生成します。
func NewGapDetector(tuples TupleRepository, ohlcs OhlcRepository) *GapDetector {
	return &GapDetector{tuples: tuples, ohlcs: ohlcs}
}

// DetectGaps は計算のタプルとチャートのローソク足それぞれのギャップ点を返します。
func (d *GapDetector) DetectGaps(ctx context.Context, chartID, calculationID uint, nominal time.Duration) (entity.GapSet, error) {
	gaps, _, _, err := d.detect(ctx, chartID, calculationID, nominal)
	return gaps, err
}

// detect は DetectGaps に加えて各系列の件数も返します。
func (d *GapDetector) detect(ctx context.Context, chartID, calculationID uint, nominal time.Duration) (entity.GapSet, int, int, error) {
	if nominal <= 0 {
		return entity.GapSet{}, 0, 0, fmt.Errorf("nominal interval %s: %w", nominal, domain.ErrInvalidConfiguration)
	}

	tuples, err := d.tuples.ListByCalculation(ctx, calculationID)
	if err != nil {
		return entity.GapSet{}, 0, 0, fmt.Errorf("load tuples of calculation %d: %w", calculationID, err)
	}
	ohlcs, err := d.ohlcs.ListByChart(ctx, chartID)
	if err != nil {
		return entity.GapSet{}, 0, 0, fmt.Errorf("load candles of chart %d: %w", chartID, err)
	}

	gaps := entity.GapSet{
		DerivedGaps: GapPoints(tupleTimes(tuples), nominal),
		SourceGaps:  GapPoints(ohlcTimes(ohlcs), nominal),
	}
	return gaps, len(tuples), len(ohlcs), nil
}

// GapPoints は昇順の時刻列の隣接ペアを走査し、times[i-1] との差がちょうど nominal でない
// times[i] をすべて返します。重複した時刻による差0もギャップです。先頭要素はギャップになりません。
func GapPoints(times []time.Time, nominal time.Duration) []time.Time {
	gaps := make([]time.Time, 0)
	for i := 1; i < len(times); i++ {
		if times[i].Sub(times[i-1]) != nominal {
			gaps = append(gaps, times[i])
		}
	}
	return gaps
}

// tupleTimes はタプルの時刻を time, id, 入力順で並べて返します。
func tupleTimes(tuples []entity.Tuple) []time.Time {
	sorted := slices.Clone(tuples)
	slices.SortStableFunc(sorted, func(a, b entity.Tuple) int {
		if c := a.Time.Compare(b.Time); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	out := make([]time.Time, len(sorted))
	for i, t := range sorted {
		out[i] = t.Time
	}
	return out
}

// ohlcTimes はローソク足の時刻を time, id, 入力順で並べて返します。
func ohlcTimes(ohlcs []entity.Ohlc) []time.Time {
	sorted := slices.Clone(ohlcs)
	slices.SortStableFunc(sorted, func(a, b entity.Ohlc) int {
		if c := a.Time.Compare(b.Time); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	out := make([]time.Time, len(sorted))
	for i, o := range sorted {
		out[i] = o.Time
	}
	return out
}
