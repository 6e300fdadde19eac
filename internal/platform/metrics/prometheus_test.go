package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calc_backend/internal/feature/repair/usecase"
)

func TestRecorder_ObserveCheck(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	r := New(reg)

	r.ObserveCheck(usecase.OutcomeConsistent, 10*time.Millisecond)
	r.ObserveCheck(usecase.OutcomeConsistent, 20*time.Millisecond)
	r.ObserveCheck(usecase.OutcomeNotFound, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.checksTotal.WithLabelValues(usecase.OutcomeConsistent)))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.checksTotal.WithLabelValues(usecase.OutcomeNotFound)))
	assert.Equal(t, 1, testutil.CollectAndCount(r.duration))
}

func TestRecorder_ObserveSeriesLength(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	r := New(reg)

	r.ObserveSeriesLength("derived", 100)
	r.ObserveSeriesLength("source", 120)

	assert.Equal(t, 2, testutil.CollectAndCount(r.seriesLength, "repair_series_length"))
}

func TestNew_RegistersCollectors(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	r := New(reg)
	r.ObserveCheck(usecase.OutcomeInconsistent, time.Second)
	r.ObserveSeriesLength("derived", 1)

	families, err := reg.Gather()
	require.NoError(t, err)

	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.ElementsMatch(t, []string{"repair_checks_total", "repair_check_duration_seconds", "repair_series_length"}, names)

	assert.Panics(t, func() { New(reg) }, "duplicate registration must panic")
}
