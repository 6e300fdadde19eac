package redis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Addr(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{name: "explicit port", cfg: Config{Host: "cache", Port: "6380"}, want: "cache:6380"},
		{name: "default port", cfg: Config{Host: "cache"}, want: "cache:6379"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.cfg.Addr())
		})
	}
}

// TestLoadConfigFromEnv は環境変数からRedis設定が読み込まれることを検証します。
func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("REDIS_HOST", "redis")
	t.Setenv("REDIS_PORT", "6379")
	t.Setenv("REDIS_PASSWORD", "secret")

	cfg := LoadConfigFromEnv()

	assert.True(t, cfg.Enabled())
	assert.Equal(t, "redis:6379", cfg.Addr())
	assert.Equal(t, "secret", cfg.Password)
}

func TestConfig_Disabled(t *testing.T) {
	t.Parallel()
	assert.False(t, Config{}.Enabled())
}

func TestNewRedisClient_Unreachable(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rdb, err := NewRedisClient(ctx, Config{Host: "127.0.0.1", Port: "1"})

	assert.Error(t, err)
	assert.Nil(t, rdb)
}
