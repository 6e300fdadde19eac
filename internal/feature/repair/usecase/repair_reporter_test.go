package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"calc_backend/internal/feature/repair/domain/entity"
	"calc_backend/internal/feature/repair/usecase"
)

func TestFindEarliestUnexplainedGap(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		derived    []time.Time
		source     []time.Time
		nominal    time.Duration
		want       entity.Inconsistency
		wantExists bool
	}{
		{
			name:    "no gaps at all",
			nominal: 15 * time.Minute,
		},
		{
			name:    "every derived gap explained",
			derived: []time.Time{at(0, 45), at(2, 0)},
			source:  []time.Time{at(2, 0), at(0, 45), at(3, 0)},
			nominal: 15 * time.Minute,
		},
		{
			name:       "single unexplained gap",
			derived:    []time.Time{at(0, 30)},
			nominal:    15 * time.Minute,
			want:       entity.Inconsistency{Time: at(0, 30), RangeSize: 15},
			wantExists: true,
		},
		{
			name:       "earliest of several unexplained gaps regardless of input order",
			derived:    []time.Time{at(3, 0), at(1, 0), at(2, 0)},
			source:     []time.Time{at(1, 0)},
			nominal:    60 * time.Minute,
			want:       entity.Inconsistency{Time: at(2, 0), RangeSize: 60},
			wantExists: true,
		},
		{
			name:       "source gaps alone never produce an inconsistency",
			derived:    []time.Time{},
			source:     []time.Time{at(0, 45)},
			nominal:    15 * time.Minute,
			wantExists: false,
		},
		{
			name:       "equal instants in different zones explain each other",
			derived:    []time.Time{at(1, 0).In(time.FixedZone("JST", 9*3600))},
			source:     []time.Time{at(1, 0)},
			nominal:    15 * time.Minute,
			wantExists: false,
		},
		{
			name:       "duplicate unexplained gaps report once",
			derived:    []time.Time{at(0, 15), at(0, 15)},
			nominal:    5 * time.Minute,
			want:       entity.Inconsistency{Time: at(0, 15), RangeSize: 5},
			wantExists: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := usecase.FindEarliestUnexplainedGap(tt.derived, tt.source, tt.nominal)

			assert.Equal(t, tt.wantExists, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestFindEarliestUnexplainedGap_Deterministic は同じ入力に対して同じ結果を返すことを検証します。
func TestFindEarliestUnexplainedGap_Deterministic(t *testing.T) {
	t.Parallel()

	derived := []time.Time{at(4, 0), at(1, 30), at(2, 0), at(1, 45)}
	source := []time.Time{at(1, 30)}

	first, ok := usecase.FindEarliestUnexplainedGap(derived, source, 15*time.Minute)
	assert.True(t, ok)
	for range 10 {
		got, _ := usecase.FindEarliestUnexplainedGap(derived, source, 15*time.Minute)
		assert.Equal(t, first, got)
	}
	assert.Equal(t, at(1, 45), first.Time)
}
