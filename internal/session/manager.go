// Package session はセッションレコードのライフサイクル管理を提供する。
package session

import (
	"context"
	"log/slog"
	"time"

	"github.com/melbas/premiumconnect-admin-portal-sub002/internal/identity"
	"github.com/melbas/premiumconnect-admin-portal-sub002/internal/model"
	"github.com/melbas/premiumconnect-admin-portal-sub002/internal/store"
)

// EstablishParams はセッション確立に必要なリクエスト由来の値を表す。
type EstablishParams struct {
	SessionID       string // NAS払い出しのセッションID
	MAC             string
	NasIP           string
	NasPortID       string
	AttachmentPoint string
	NetworkName     string
}

// Remaining は時間クォータの残量を表す。
// Limited=falseの場合は時間制限なし（Minutesは無意味）。
type Remaining struct {
	Minutes int64
	Limited bool
}

// Manager はセッション確立を定義する。
type Manager interface {
	// Establish はアクティブセッションを永続化する。
	// 同一ID・同一MACの再送は既存レコードを返す（冪等）。
	// 同一IDが別MACで使用中の場合はErrDuplicateSessionを返す。
	Establish(ctx context.Context, params EstablishParams, res *identity.ResolvedIdentity) (*model.Session, Remaining, error)
}

// manager はManagerインターフェースの実装。
type manager struct {
	sessions store.SessionStore
}

// NewManager は新しいManagerを生成する。
func NewManager(ss store.SessionStore) Manager {
	return &manager{sessions: ss}
}

// Establish はアクティブセッションを永続化する。
// レコードは認可応答を返す前に同期的に書き込む。書き込み失敗時は
// エラーを返し、上位層が認可ごと失敗させる（追跡されないセッションで
// アクセスを許可しない）。
func (m *manager) Establish(ctx context.Context, params EstablishParams, res *identity.ResolvedIdentity) (*model.Session, Remaining, error) {
	remaining := computeRemaining(res)

	sess := &model.Session{
		ID:              params.SessionID,
		UserID:          res.UserID,
		MAC:             params.MAC,
		NasIP:           params.NasIP,
		NasPortID:       params.NasPortID,
		ProfileID:       res.Profile.ID,
		VlanID:          res.Profile.VlanID,
		AttachmentPoint: params.AttachmentPoint,
		NetworkName:     params.NetworkName,
		State:           model.SessionStateActive,
		CreatedAt:       time.Now().Unix(),
	}

	created, existing, err := m.sessions.CreateIfAbsent(ctx, sess)
	if err != nil {
		return nil, Remaining{}, err
	}

	if !created {
		// NAS再送: 同一ID・同一MACのアクティブセッションは既存行を返す
		if existing.MAC == params.MAC && existing.IsActive() {
			slog.Info("session retransmission deduplicated",
				"event_id", "SESSION_DEDUP",
				"session_id", params.SessionID,
			)
			return existing, remaining, nil
		}
		return nil, Remaining{}, ErrDuplicateSession
	}

	if sess.UserID != "" {
		// 索引は補助情報であり、失敗しても認可は成立させる
		if err := m.sessions.AddUserIndex(ctx, sess.UserID, sess.ID); err != nil {
			slog.Warn("user index update failed",
				"event_id", "SESSION_INDEX_ERR",
				"session_id", sess.ID,
				"error", err.Error(),
			)
		}
	}

	return sess, remaining, nil
}

// computeRemaining は時間クォータの残分数を算出する。
// 匿名フローはカウンターを持たないためクォータ全量が残量となる。
func computeRemaining(res *identity.ResolvedIdentity) Remaining {
	if !res.Profile.HasTimeQuota() {
		return Remaining{}
	}
	var used int64
	if res.Usage != nil {
		used = res.Usage.MinutesUsed
	}
	return Remaining{
		Minutes: res.Profile.QuotaMin - used,
		Limited: true,
	}
}
