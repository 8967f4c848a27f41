// Package store はValkeyへのデータアクセスを提供する。
package store

import (
	"context"
	"fmt"

	"github.com/melbas/premiumconnect-admin-portal-sub002/internal/config"
	"github.com/redis/go-redis/v9"
)

// ValkeyClient はValkeyクライアントをラップする。
type ValkeyClient struct {
	client *redis.Client
}

// NewValkeyClient は新しいValkeyClientを生成する。
// 接続確認のためPINGを実行し、失敗した場合はエラーを返す。
func NewValkeyClient(cfg *config.Config) (*ValkeyClient, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.ValkeyAddr(),
		Password:     cfg.RedisPass,
		DB:           0,
		DialTimeout:  config.ValkeyConnectTimeout,
		ReadTimeout:  config.ValkeyCommandTimeout,
		WriteTimeout: config.ValkeyCommandTimeout,
		PoolSize:     config.ValkeyPoolSize,
		MinIdleConns: config.ValkeyMinIdleConns,
	})

	// 接続確認
	ctx, cancel := context.WithTimeout(context.Background(), config.ValkeyConnectTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Valkey: %w", err)
	}

	return &ValkeyClient{client: client}, nil
}

// NewValkeyClientFromRedis は既存のredis.ClientからValkeyClientを生成する。
// テストでminiredis接続を注入するために使用する。
func NewValkeyClientFromRedis(client *redis.Client) *ValkeyClient {
	return &ValkeyClient{client: client}
}

// Close は接続を閉じる。
func (v *ValkeyClient) Close() error {
	return v.client.Close()
}

// Client は内部のredis.Clientを返す。
func (v *ValkeyClient) Client() *redis.Client {
	return v.client
}
