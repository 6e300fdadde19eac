// Package config はプロセス全体の設定を環境変数から読み込みます。
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"calc_backend/internal/platform/db"
	"calc_backend/internal/platform/redis"
)

// Config is the validated process configuration.
type Config struct {
	HTTPAddr       string        `default:":8080" validate:"required"`
	LogLevel       string        `default:"info" validate:"oneof=debug info warn error"`
	LogFormat      string        `default:"json" validate:"oneof=json text"`
	RequestTimeout time.Duration `default:"30s" validate:"gt=0"`
	CacheTTL       time.Duration `default:"5m" validate:"gt=0"`

	DB    db.Config
	Redis redis.Config
}

var validate = validator.New()

// Load は.envファイル（存在する場合）と環境変数から設定を読み込み、検証します。
// envFileが空の場合は.envを読みません。既存の環境変数は上書きされません。
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return Config{}, fmt.Errorf("load %s: %w", envFile, err)
			}
			slog.Info(".env not found; using system environment variables", "file", envFile)
		}
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() (Config, error) {
	cfg := Config{
		HTTPAddr:  os.Getenv("HTTP_ADDR"),
		LogLevel:  strings.ToLower(os.Getenv("LOG_LEVEL")),
		LogFormat: strings.ToLower(os.Getenv("LOG_FORMAT")),
		DB:        db.LoadConfigFromEnv(),
		Redis:     redis.LoadConfigFromEnv(),
	}

	var err error
	if cfg.RequestTimeout, err = durationEnv("REQUEST_TIMEOUT"); err != nil {
		return Config{}, err
	}
	if cfg.CacheTTL, err = durationEnv("CACHE_TTL"); err != nil {
		return Config{}, err
	}

	// 未設定の項目にデフォルト値を設定
	if err := defaults.Set(&cfg); err != nil {
		return Config{}, fmt.Errorf("apply config defaults: %w", err)
	}
	if err := validate.Struct(&cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// durationEnv parses key as a time.Duration. An unset key yields zero.
func durationEnv(key string) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}
