// Package acct は外部アカウンティングフィードの取り込みを提供する。
// NAS（またはアカウンティングコレクター）が中間・終了イベントを通知し、
// 消費カウンターの加算とセッションのクローズを行う。
// 認可エンジン自体は計上を行わず、結果のカウンターを読むだけである。
package acct

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/melbas/premiumconnect-admin-portal-sub002/internal/store"
)

// Processor はアカウンティングイベントを処理する。
type Processor struct {
	users    store.UserStore
	sessions store.SessionStore
}

// NewProcessor は新しいProcessorを生成する。
func NewProcessor(us store.UserStore, ss store.SessionStore) *Processor {
	return &Processor{users: us, sessions: ss}
}

// ProcessInterim は中間アカウンティングを処理する。
// セッションに紐付くユーザーの消費カウンターを単調に加算する。
// 匿名バウチャーセッションはカウンターを持たないため加算しない。
func (p *Processor) ProcessInterim(ctx context.Context, sessionID string, addMB, addMinutes int64, traceID string) error {
	sess, err := p.sessions.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			slog.Warn("interim for unknown session",
				"event_id", "ACCT_SESSION_UNKNOWN",
				"trace_id", traceID,
				"session_id", sessionID,
			)
			return ErrSessionNotFound
		}
		return err
	}

	if sess.UserID == "" {
		return nil
	}

	if err := p.users.IncrementUsage(ctx, sess.UserID, addMB, addMinutes); err != nil {
		return err
	}

	slog.Info("usage incremented",
		"event_id", "ACCT_INTERIM",
		"trace_id", traceID,
		"session_id", sessionID,
		"add_mb", addMB,
		"add_minutes", addMinutes,
	)
	return nil
}

// ProcessStop は終了アカウンティングを処理する。
// 最終分の消費を加算した上でセッションをclosedに遷移させる。
// クローズは冪等であり、再送されたStopは何もしない。
func (p *Processor) ProcessStop(ctx context.Context, sessionID string, addMB, addMinutes int64, traceID string) error {
	if addMB > 0 || addMinutes > 0 {
		if err := p.ProcessInterim(ctx, sessionID, addMB, addMinutes, traceID); err != nil {
			if !errors.Is(err, ErrSessionNotFound) {
				return err
			}
			return ErrSessionNotFound
		}
	}

	if err := p.sessions.Close(ctx, sessionID, time.Now().Unix()); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrSessionNotFound
		}
		return err
	}

	slog.Info("session closed",
		"event_id", "ACCT_STOP",
		"trace_id", traceID,
		"session_id", sessionID,
	)
	return nil
}
