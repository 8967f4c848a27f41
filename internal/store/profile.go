package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/melbas/premiumconnect-admin-portal-sub002/internal/config"
	"github.com/melbas/premiumconnect-admin-portal-sub002/internal/model"
)

// profileStore はProfileStoreインターフェースの実装。
// Valkeyをキャッシュとし、ミス時はPortal Backendからリードスルーする。
type profileStore struct {
	vc               *ValkeyClient
	source           ProfileSource
	defaultProfileID string
}

// NewProfileStore は新しいProfileStoreを生成する。
// sourceがnilの場合、Valkeyミスは即ErrNotFoundとなる。
func NewProfileStore(vc *ValkeyClient, source ProfileSource, defaultProfileID string) ProfileStore {
	return &profileStore{
		vc:               vc,
		source:           source,
		defaultProfileID: defaultProfileID,
	}
}

// FindAccessProfile は指定されたIDのプロファイルを取得する。
func (s *profileStore) FindAccessProfile(ctx context.Context, id string) (*model.AccessProfile, error) {
	key := KeyPrefixProfile + id
	m, err := s.vc.Client().HGetAll(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValkeyUnavailable, err)
	}
	if len(m) > 0 {
		var p model.AccessProfile
		if err := MapToStruct(m, &p); err != nil {
			return nil, fmt.Errorf("profile deserialization error: %w", err)
		}
		return &p, nil
	}

	if s.source == nil {
		return nil, ErrNotFound
	}

	// キャッシュミス: Portal Backendから取得
	p, err := s.source.FetchProfile(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	s.cache(ctx, key, p)
	return p, nil
}

// FindDefaultProfile はデフォルト（ゲスト）プロファイルを取得する。
func (s *profileStore) FindDefaultProfile(ctx context.Context) (*model.AccessProfile, error) {
	return s.FindAccessProfile(ctx, s.defaultProfileID)
}

// cache はプロファイルをTTL付きでValkeyに書き戻す。
// キャッシュ失敗は認可判定を妨げないためログのみとする。
func (s *profileStore) cache(ctx context.Context, key string, p *model.AccessProfile) {
	pipe := s.vc.Client().Pipeline()
	pipe.HSet(ctx, key, StructToMap(p))
	pipe.Expire(ctx, key, config.ProfileCacheTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		slog.Warn("profile cache write failed",
			"event_id", "PROFILE_CACHE_ERR",
			"profile_id", p.ID,
			"error", err.Error(),
		)
	}
}
