package store

import (
	"context"

	"github.com/melbas/premiumconnect-admin-portal-sub002/internal/model"
)

// VoucherStore はバウチャーデータへのアクセスを定義する。
type VoucherStore interface {
	// FindVoucher は指定されたコードのバウチャーを取得する。
	// 存在しない場合はErrVoucherNotFoundを返す。
	FindVoucher(ctx context.Context, code string) (*model.Voucher, error)

	// TryRedeemVoucher はバウチャーの利用回数を条件付きでインクリメントする。
	// 有効性・有効期間・回数上限を書き込み時点で再検証する単一のアトミック操作であり、
	// 上限到達によるインクリメント失敗時は (false, nil) を返す。
	TryRedeemVoucher(ctx context.Context, code string, now int64) (bool, error)
}

// UserStore はユーザーおよび消費カウンターへのアクセスを定義する。
type UserStore interface {
	// FindUserByID は指定された識別子のユーザーを取得する。
	// 存在しない場合はErrNotFoundを返す。
	FindUserByID(ctx context.Context, id string) (*model.User, error)

	// FindUserByMAC はMACアドレス索引からユーザーを取得する。
	// 存在しない場合はErrNotFoundを返す。
	FindUserByMAC(ctx context.Context, mac string) (*model.User, error)

	// TouchLastSeen はユーザーの最終認証日時を更新する。
	TouchLastSeen(ctx context.Context, userID string, now int64) error

	// FindUserAccess はユーザーの消費カウンターを取得する。
	// 存在しない場合はErrNotFoundを返す。
	FindUserAccess(ctx context.Context, userID string) (*model.UserAccess, error)

	// CreateUserAccessIfAbsent はゼロカウンターの消費レコードを冪等に作成する。
	// 既存レコードがある場合は作成せず、現在のレコードを返す。
	CreateUserAccessIfAbsent(ctx context.Context, userID, profileID string) (*model.UserAccess, error)

	// IncrementUsage は消費カウンターを単調に加算する（アカウンティングフィード用）。
	IncrementUsage(ctx context.Context, userID string, addMB, addMinutes int64) error
}

// ProfileStore はアクセスプロファイルへのアクセスを定義する。
type ProfileStore interface {
	// FindAccessProfile は指定されたIDのプロファイルを取得する。
	// Valkeyに無い場合はPortal Backendから取得してキャッシュする。
	// どちらにも存在しない場合はErrNotFoundを返す。
	FindAccessProfile(ctx context.Context, id string) (*model.AccessProfile, error)

	// FindDefaultProfile はデフォルト（ゲスト）プロファイルを取得する。
	FindDefaultProfile(ctx context.Context) (*model.AccessProfile, error)
}

// ProfileSource はプロファイル定義の外部ソース（Portal Backend）を定義する。
type ProfileSource interface {
	// FetchProfile はプロファイル定義を取得する。
	// 存在しない場合はErrNotFoundにマップ可能なエラーを返す。
	FetchProfile(ctx context.Context, id string) (*model.AccessProfile, error)
}

// SessionStore はセッションレコードの操作を定義する。
type SessionStore interface {
	// CreateIfAbsent はセッションを存在しない場合に限り作成する。
	// 既存セッションがある場合は created=false と既存レコードを返す。
	CreateIfAbsent(ctx context.Context, sess *model.Session) (created bool, existing *model.Session, err error)

	// Get はセッションを取得する。存在しない場合はErrNotFoundを返す。
	Get(ctx context.Context, sessionID string) (*model.Session, error)

	// Close はセッションをclosed状態に遷移させる。
	// 既にclosedの場合は何もしない（冪等）。存在しない場合はErrNotFoundを返す。
	Close(ctx context.Context, sessionID string, closedAt int64) error

	// AddUserIndex はユーザーIDとセッションIDの紐付けをSet型で追加する。
	AddUserIndex(ctx context.Context, userID string, sessionID string) error
}
