package store

import (
	"context"
	"fmt"

	"github.com/melbas/premiumconnect-admin-portal-sub002/internal/config"
	"github.com/melbas/premiumconnect-admin-portal-sub002/internal/model"
	"github.com/redis/go-redis/v9"
)

// createScript はセッションの存在チェックと作成を単一のアトミック操作で行う。
// NAS再送による同時リクエストが2行作成するレースを閉じる。
// ARGV[1]=TTL秒、ARGV[2..]=フィールド/値ペア。
// 戻り値: 1=作成, 0=既存あり
var createScript = redis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 1 then
  return 0
end
for i = 2, #ARGV, 2 do
  redis.call('HSET', KEYS[1], ARGV[i], ARGV[i+1])
end
redis.call('EXPIRE', KEYS[1], tonumber(ARGV[1]))
return 1
`)

// closeScript はactiveセッションのみをclosedに遷移させる。
// closed済みへの再クローズは何もしない。closedからの再開は存在しない。
// 戻り値: 1=クローズ実行, 0=既にclosed, -1=キー不在
var closeScript = redis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 0 then
  return -1
end
if redis.call('HGET', KEYS[1], 'state') ~= 'active' then
  return 0
end
redis.call('HSET', KEYS[1], 'state', 'closed', 'closed_at', ARGV[1])
return 1
`)

// sessionStore はSessionStoreインターフェースの実装。
type sessionStore struct {
	vc *ValkeyClient
}

// NewSessionStore は新しいSessionStoreを生成する。
func NewSessionStore(vc *ValkeyClient) SessionStore {
	return &sessionStore{vc: vc}
}

// CreateIfAbsent はセッションを存在しない場合に限り作成する。
func (s *sessionStore) CreateIfAbsent(ctx context.Context, sess *model.Session) (bool, *model.Session, error) {
	key := KeyPrefixSession + sess.ID

	args := []any{int64(config.SessionTTL.Seconds())}
	for field, value := range StructToMap(sess) {
		args = append(args, field, value)
	}

	res, err := createScript.Run(ctx, s.vc.Client(), []string{key}, args...).Int64()
	if err != nil {
		return false, nil, fmt.Errorf("%w: %v", ErrValkeyUnavailable, err)
	}
	if res == 1 {
		return true, nil, nil
	}

	existing, err := s.Get(ctx, sess.ID)
	if err != nil {
		return false, nil, err
	}
	return false, existing, nil
}

// Get はセッションを取得する。
func (s *sessionStore) Get(ctx context.Context, sessionID string) (*model.Session, error) {
	key := KeyPrefixSession + sessionID
	m, err := s.vc.Client().HGetAll(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValkeyUnavailable, err)
	}
	if len(m) == 0 {
		return nil, ErrNotFound
	}

	var sess model.Session
	if err := MapToStruct(m, &sess); err != nil {
		return nil, fmt.Errorf("session deserialization error: %w", err)
	}
	return &sess, nil
}

// Close はセッションをclosed状態に遷移させる。
func (s *sessionStore) Close(ctx context.Context, sessionID string, closedAt int64) error {
	key := KeyPrefixSession + sessionID
	res, err := closeScript.Run(ctx, s.vc.Client(), []string{key}, closedAt).Int64()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrValkeyUnavailable, err)
	}
	if res == -1 {
		return ErrNotFound
	}
	return nil
}

// AddUserIndex はユーザーIDとセッションIDの紐付けをSet型で追加する。
func (s *sessionStore) AddUserIndex(ctx context.Context, userID string, sessionID string) error {
	key := KeyPrefixUserIndex + userID
	if err := s.vc.Client().SAdd(ctx, key, sessionID).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrValkeyUnavailable, err)
	}
	return nil
}
