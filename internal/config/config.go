// Package config はアプリケーション設定を提供する。
package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// Config はアプリケーション設定を保持する
type Config struct {
	// Valkey接続設定
	RedisHost string `envconfig:"REDIS_HOST" required:"true"`
	RedisPort string `envconfig:"REDIS_PORT" required:"true"`
	RedisPass string `envconfig:"REDIS_PASS"`

	// Portal Backend設定
	PortalAPIURL string `envconfig:"PORTAL_API_URL" required:"true"`

	// HTTPサーバー設定
	ListenAddr string `envconfig:"LISTEN_ADDR" default:":8090"`
	GinMode    string `envconfig:"GIN_MODE" default:"release"`

	// 認可設定
	DefaultProfileID string `envconfig:"DEFAULT_PROFILE_ID" default:"guest"`
	DefaultVendor    string `envconfig:"DEFAULT_NAS_VENDOR" default:"generic"`

	// ログ設定
	LogMaskPII bool `envconfig:"LOG_MASK_PII" default:"true"`
}

// Load は環境変数から設定を読み込む
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// ValkeyAddr はValkey接続アドレスを "host:port" 形式で返す
func (c *Config) ValkeyAddr() string {
	return fmt.Sprintf("%s:%s", c.RedisHost, c.RedisPort)
}

// validate は設定値のバリデーションを行う
func (c *Config) validate() error {
	if strings.TrimSpace(c.DefaultProfileID) == "" {
		return fmt.Errorf("DEFAULT_PROFILE_ID must not be empty")
	}
	if !strings.HasPrefix(c.PortalAPIURL, "http://") && !strings.HasPrefix(c.PortalAPIURL, "https://") {
		return fmt.Errorf("PORTAL_API_URL must start with http:// or https://")
	}
	switch c.GinMode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("GIN_MODE must be one of debug/release/test")
	}
	return nil
}
