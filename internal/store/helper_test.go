package store

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

// newTestValkeyClient はminiredisに接続するテスト用ValkeyClientを生成する
func newTestValkeyClient(t *testing.T, mr *miniredis.Miniredis) *ValkeyClient {
	t.Helper()
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewValkeyClientFromRedis(client)
}
