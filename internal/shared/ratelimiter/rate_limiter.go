package ratelimiter

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// RateLimiter は固定ウィンドウ方式で操作の頻度を制限します。
// 複数goroutineから安全に使用できます。
type RateLimiter struct {
	mu        sync.Mutex
	limit     int           // interval あたりの上限
	interval  time.Duration // どの単位でリセットするか
	count     int
	lastReset time.Time
	now       func() time.Time
}

// NewRateLimiterは新しいRateLimiterのインスタンスを生成します。
func NewRateLimiter(limit int, interval time.Duration) *RateLimiter {
	if limit < 1 {
		limit = 1
	}
	return &RateLimiter{
		limit:     limit,
		interval:  interval,
		lastReset: time.Now(),
		now:       time.Now,
	}
}

// Wait は上限に達している場合、予約したウィンドウの開始まで待機します。
// 待機中にctxが終了した場合はctxのエラーを返します。
func (rl *RateLimiter) Wait(ctx context.Context) error {
	sleep := rl.reserve()
	if sleep <= 0 {
		return nil
	}
	slog.Info("rate limit reached, waiting", "limit", rl.limit, "wait", sleep)

	timer := time.NewTimer(sleep)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// reserve は呼び出し1件分の枠を確保し、その枠のウィンドウが始まるまでの待ち時間を返します。
// 現在のウィンドウが埋まっていれば次のウィンドウに並ぶため、同時に呼ばれても
// 1ウィンドウあたり limit 件を超えて通すことはありません。
func (rl *RateLimiter) reserve() time.Duration {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	// interval を過ぎたらカウントリセット（lastReset が未来の予約済みウィンドウなら対象外）
	if now.Sub(rl.lastReset) >= rl.interval {
		rl.count = 0
		rl.lastReset = now
	}
	if rl.count >= rl.limit {
		rl.lastReset = rl.lastReset.Add(rl.interval)
		rl.count = 0
	}
	rl.count++
	return rl.lastReset.Sub(now)
}
