package usecase

import (
	"time"

	"calc_backend/internal/feature/repair/domain/entity"
)

// FindEarliestUnexplainedGap は同時刻に元系列のギャップがない派生系列のギャップのうち、
// 最も早いものを公称間隔（分）とともに返します。
// すべてのギャップが説明できる場合、2番目の戻り値は false です。
func FindEarliestUnexplainedGap(derivedGaps, sourceGaps []time.Time, nominal time.Duration) (entity.Inconsistency, bool) {
	explained := make(map[int64]struct{}, len(sourceGaps))
	for _, t := range sourceGaps {
		explained[t.UnixNano()] = struct{}{}
	}

	var (
		earliest time.Time
		found    bool
	)
	for _, t := range derivedGaps {
		if _, ok := explained[t.UnixNano()]; ok {
			continue
		}
		if !found || t.Before(earliest) {
			earliest = t
			found = true
		}
	}
	if !found {
		return entity.Inconsistency{}, false
	}

	return entity.Inconsistency{
		Time:      earliest,
		RangeSize: int(nominal / time.Minute),
	}, true
}
