// Package quota はアドミッション時のクォータ・ポリシー検査を提供する。
package quota

import (
	"github.com/melbas/premiumconnect-admin-portal-sub002/internal/identity"
)

// Enforcer はアドミッション検査を定義する。
type Enforcer interface {
	// Check は解決済み識別に対して受け入れ可否を判定する。
	// 拒否時はErrProfileInactive/ErrDataQuotaExceeded/ErrTimeQuotaExceededを返す。
	Check(res *identity.ResolvedIdentity) error
}

// enforcer はEnforcerインターフェースの実装。
type enforcer struct{}

// NewEnforcer は新しいEnforcerを生成する。
func NewEnforcer() Enforcer {
	return &enforcer{}
}

// Check は受け入れ検査をルール順に評価し、最初の違反で打ち切る。
// 1. プロファイル有効フラグ
// 2. データクォータ（設定時のみ）
// 3. 時間クォータ（設定時のみ）
// 匿名バウチャーフローは永続カウンターを持たないため2-3を省略する
// （バウチャー自身のUseLimitがクォータに相当する）。
// 本検査はアドミッション時点の判定のみであり、消費の計上は行わない。
func (e *enforcer) Check(res *identity.ResolvedIdentity) error {
	p := res.Profile

	if !p.IsActive {
		return ErrProfileInactive
	}

	if res.Anonymous() || res.Usage == nil {
		return nil
	}

	if p.HasDataQuota() && res.Usage.QuotaUsedMB >= p.QuotaMB {
		return ErrDataQuotaExceeded
	}
	if p.HasTimeQuota() && res.Usage.MinutesUsed >= p.QuotaMin {
		return ErrTimeQuotaExceeded
	}

	return nil
}
