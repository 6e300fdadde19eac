package usecase_test

import (
	"context"
	"errors"
	"sync"
	"time"

	"calc_backend/internal/feature/repair/domain"
	"calc_backend/internal/feature/repair/domain/entity"
)

// ErrDB はモックと期待値の間で共有されるセンチネルエラーです。
var ErrDB = errors.New("database error")

// base は全テストで使う基準時刻です。
var base = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// at は base から指定した時間・分だけずらした時刻を返します。
func at(h, m int) time.Time {
	return base.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute)
}

func intPtr(v int) *int { return &v }

// mockCalculationRepository はCalculationRepositoryインターフェースのモック実装です。
type mockCalculationRepository struct {
	FindByIDFunc       func(ctx context.Context, id uint) (*entity.Calculation, error)
	ListEnabledIDsFunc func(ctx context.Context) ([]uint, error)
	FindByIDCalls      int
}

func (m *mockCalculationRepository) FindByID(ctx context.Context, id uint) (*entity.Calculation, error) {
	m.FindByIDCalls++
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, errors.New("FindByIDFunc is not implemented")
}

func (m *mockCalculationRepository) ListEnabledIDs(ctx context.Context) ([]uint, error) {
	if m.ListEnabledIDsFunc != nil {
		return m.ListEnabledIDsFunc(ctx)
	}
	return nil, errors.New("ListEnabledIDsFunc is not implemented")
}

// mockChartRepository はChartRepositoryインターフェースのモック実装です。
type mockChartRepository struct {
	FindByIDFunc  func(ctx context.Context, id uint) (*entity.Chart, error)
	FindByIDCalls int
}

func (m *mockChartRepository) FindByID(ctx context.Context, id uint) (*entity.Chart, error) {
	m.FindByIDCalls++
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, errors.New("FindByIDFunc is not implemented")
}

// mockTimeRangeRepository はTimeRangeRepositoryインターフェースのモック実装です。
type mockTimeRangeRepository struct {
	FindByIDFunc  func(ctx context.Context, id uint) (*entity.TimeRange, error)
	FindByIDCalls int
}

func (m *mockTimeRangeRepository) FindByID(ctx context.Context, id uint) (*entity.TimeRange, error) {
	m.FindByIDCalls++
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, errors.New("FindByIDFunc is not implemented")
}

// mockTupleRepository はTupleRepositoryインターフェースのモック実装です。
type mockTupleRepository struct {
	ListByCalculationFunc  func(ctx context.Context, calculationID uint) ([]entity.Tuple, error)
	ListByCalculationCalls int
}

func (m *mockTupleRepository) ListByCalculation(ctx context.Context, calculationID uint) ([]entity.Tuple, error) {
	m.ListByCalculationCalls++
	if m.ListByCalculationFunc != nil {
		return m.ListByCalculationFunc(ctx, calculationID)
	}
	return nil, errors.New("ListByCalculationFunc is not implemented")
}

// mockOhlcRepository はOhlcRepositoryインターフェースのモック実装です。
type mockOhlcRepository struct {
	ListByChartFunc  func(ctx context.Context, chartID uint) ([]entity.Ohlc, error)
	ListByChartCalls int
}

func (m *mockOhlcRepository) ListByChart(ctx context.Context, chartID uint) ([]entity.Ohlc, error) {
	m.ListByChartCalls++
	if m.ListByChartFunc != nil {
		return m.ListByChartFunc(ctx, chartID)
	}
	return nil, errors.New("ListByChartFunc is not implemented")
}

// mockMetrics はすべての計測値を記録します。
type mockMetrics struct {
	mu       sync.Mutex
	outcomes []string
	lengths  map[string]int
}

func (m *mockMetrics) ObserveCheck(outcome string, _ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.outcomes = append(m.outcomes, outcome)
}

func (m *mockMetrics) ObserveSeriesLength(series string, n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.lengths == nil {
		m.lengths = map[string]int{}
	}
	m.lengths[series] = n
}

// store は5つのモックリポジトリを1つのデータセットにつなぐインメモリのフィクスチャです。
type store struct {
	calculations map[uint]entity.Calculation
	charts       map[uint]entity.Chart
	timeRanges   map[uint]entity.TimeRange
	tuples       []entity.Tuple
	ohlcs        []entity.Ohlc
}

// newStore は 計算1 → チャート10 → 時間足100（rangeSize 分）のフィクスチャを返します。
func newStore(rangeSize *int) *store {
	return &store{
		calculations: map[uint]entity.Calculation{1: {ID: 1, Name: "ema", ChartID: 10}},
		charts:       map[uint]entity.Chart{10: {ID: 10, Name: "XBTEUR", PairID: 5, TimeRangeID: 100}},
		timeRanges:   map[uint]entity.TimeRange{100: {ID: 100, Name: "M15", RangeSize: rangeSize}},
	}
}

func (s *store) withTuples(times ...time.Time) *store {
	for i, t := range times {
		s.tuples = append(s.tuples, entity.Tuple{ID: uint(i + 1), CalculationID: 1, Time: t})
	}
	return s
}

func (s *store) withOhlcs(times ...time.Time) *store {
	for i, t := range times {
		s.ohlcs = append(s.ohlcs, entity.Ohlc{ID: uint(i + 1), ChartID: 10, Time: t})
	}
	return s
}

func (s *store) calculationRepo() *mockCalculationRepository {
	return &mockCalculationRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*entity.Calculation, error) {
			c, ok := s.calculations[id]
			if !ok {
				return nil, domain.ErrCalculationNotFound
			}
			return &c, nil
		},
		ListEnabledIDsFunc: func(ctx context.Context) ([]uint, error) {
			ids := []uint{}
			for id := uint(1); id <= 100; id++ {
				if c, ok := s.calculations[id]; ok && !c.Disabled {
					ids = append(ids, id)
				}
			}
			return ids, nil
		},
	}
}

func (s *store) chartRepo() *mockChartRepository {
	return &mockChartRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*entity.Chart, error) {
			c, ok := s.charts[id]
			if !ok {
				return nil, domain.ErrChartNotFound
			}
			return &c, nil
		},
	}
}

func (s *store) timeRangeRepo() *mockTimeRangeRepository {
	return &mockTimeRangeRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*entity.TimeRange, error) {
			tr, ok := s.timeRanges[id]
			if !ok {
				return nil, domain.ErrTimeRangeNotFound
			}
			return &tr, nil
		},
	}
}

func (s *store) tupleRepo() *mockTupleRepository {
	return &mockTupleRepository{
		ListByCalculationFunc: func(ctx context.Context, calculationID uint) ([]entity.Tuple, error) {
			out := []entity.Tuple{}
			for _, t := range s.tuples {
				if t.CalculationID == calculationID {
					out = append(out, t)
				}
			}
			return out, nil
		},
	}
}

func (s *store) ohlcRepo() *mockOhlcRepository {
	return &mockOhlcRepository{
		ListByChartFunc: func(ctx context.Context, chartID uint) ([]entity.Ohlc, error) {
			out := []entity.Ohlc{}
			for _, o := range s.ohlcs {
				if o.ChartID == chartID {
					out = append(out, o)
				}
			}
			return out, nil
		},
	}
}
