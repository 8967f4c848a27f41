package store

import (
	"context"
	"fmt"

	"github.com/melbas/premiumconnect-admin-portal-sub002/internal/model"
	"github.com/redis/go-redis/v9"
)

// userStore はUserStoreインターフェースの実装。
type userStore struct {
	vc *ValkeyClient
}

// NewUserStore は新しいUserStoreを生成する。
func NewUserStore(vc *ValkeyClient) UserStore {
	return &userStore{vc: vc}
}

// FindUserByID は指定された識別子のユーザーを取得する。
func (s *userStore) FindUserByID(ctx context.Context, id string) (*model.User, error) {
	key := KeyPrefixUser + id
	m, err := s.vc.Client().HGetAll(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValkeyUnavailable, err)
	}
	if len(m) == 0 {
		return nil, ErrNotFound
	}

	var u model.User
	if err := MapToStruct(m, &u); err != nil {
		return nil, fmt.Errorf("user deserialization error: %w", err)
	}
	return &u, nil
}

// FindUserByMAC はMACアドレス索引からユーザーを取得する。
func (s *userStore) FindUserByMAC(ctx context.Context, mac string) (*model.User, error) {
	key := KeyPrefixMACIndex + mac
	id, err := s.vc.Client().Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrValkeyUnavailable, err)
	}
	return s.FindUserByID(ctx, id)
}

// TouchLastSeen はユーザーの最終認証日時を更新する。
func (s *userStore) TouchLastSeen(ctx context.Context, userID string, now int64) error {
	key := KeyPrefixUser + userID
	if err := s.vc.Client().HSet(ctx, key, "last_seen_at", now).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrValkeyUnavailable, err)
	}
	return nil
}

// FindUserAccess はユーザーの消費カウンターを取得する。
func (s *userStore) FindUserAccess(ctx context.Context, userID string) (*model.UserAccess, error) {
	key := KeyPrefixUsage + userID
	m, err := s.vc.Client().HGetAll(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValkeyUnavailable, err)
	}
	if len(m) == 0 {
		return nil, ErrNotFound
	}

	var ua model.UserAccess
	if err := MapToStruct(m, &ua); err != nil {
		return nil, fmt.Errorf("user access deserialization error: %w", err)
	}
	return &ua, nil
}

// CreateUserAccessIfAbsent はゼロカウンターの消費レコードを冪等に作成する。
// フィールドごとのHSETNXにより、同時実行された初回プロビジョニングが
// 互いのカウンターを上書きすることはない。
func (s *userStore) CreateUserAccessIfAbsent(ctx context.Context, userID, profileID string) (*model.UserAccess, error) {
	key := KeyPrefixUsage + userID

	pipe := s.vc.Client().Pipeline()
	pipe.HSetNX(ctx, key, "profile_id", profileID)
	pipe.HSetNX(ctx, key, "quota_used_mb", 0)
	pipe.HSetNX(ctx, key, "minutes_used", 0)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValkeyUnavailable, err)
	}

	return s.FindUserAccess(ctx, userID)
}

// IncrementUsage は消費カウンターを単調に加算する。
// 負の加算は拒否する（カウンターは減少しない不変条件）。
func (s *userStore) IncrementUsage(ctx context.Context, userID string, addMB, addMinutes int64) error {
	if addMB < 0 || addMinutes < 0 {
		return ErrNegativeIncrement
	}
	key := KeyPrefixUsage + userID

	pipe := s.vc.Client().Pipeline()
	if addMB > 0 {
		pipe.HIncrBy(ctx, key, "quota_used_mb", addMB)
	}
	if addMinutes > 0 {
		pipe.HIncrBy(ctx, key, "minutes_used", addMinutes)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrValkeyUnavailable, err)
	}
	return nil
}
