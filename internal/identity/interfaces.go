package identity

import (
	"context"

	"github.com/melbas/premiumconnect-admin-portal-sub002/internal/model"
)

// ResolvedIdentity は解決済みの識別を表す。
// UserIDが空の場合は匿名バウチャーセッション（永続カウンターなし）。
type ResolvedIdentity struct {
	UserID  string
	Profile *model.AccessProfile
	Usage   *model.UserAccess // 匿名フローではnil
}

// Anonymous は匿名バウチャーセッションかどうかを返す。
func (r *ResolvedIdentity) Anonymous() bool {
	return r.UserID == ""
}

// Resolver はアクセスリクエストの識別解決を定義する。
type Resolver interface {
	// Resolve はクレームとMACアドレスから識別を解決する。
	// 論理的な拒否はErrInvalidVoucher/ErrVoucherExhausted/ErrUserNotFoundを返す。
	Resolve(ctx context.Context, claim Claim, mac string) (*ResolvedIdentity, error)
}
