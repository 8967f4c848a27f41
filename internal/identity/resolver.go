package identity

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/melbas/premiumconnect-admin-portal-sub002/internal/model"
	"github.com/melbas/premiumconnect-admin-portal-sub002/internal/store"
)

// resolver はResolverインターフェースの実装。
type resolver struct {
	vouchers store.VoucherStore
	users    store.UserStore
	profiles store.ProfileStore
}

// NewResolver は新しいResolverを生成する。
func NewResolver(vs store.VoucherStore, us store.UserStore, ps store.ProfileStore) Resolver {
	return &resolver{
		vouchers: vs,
		users:    us,
		profiles: ps,
	}
}

// Resolve はクレームとMACアドレスから識別を解決する。
func (r *resolver) Resolve(ctx context.Context, claim Claim, mac string) (*ResolvedIdentity, error) {
	switch claim.Kind {
	case KindVoucher:
		return r.resolveVoucher(ctx, claim.Code)
	default:
		return r.resolveUser(ctx, claim.Identifier, mac)
	}
}

// resolveVoucher はバウチャー引き換えによる識別解決を行う。
// 事前読み取りで拒否理由を確定し、書き込みはTryRedeemVoucherの
// 条件付きインクリメント1回のみ。同一コードへの同時引き換えは
// 書き込み時点の再検証によって高々UseLimit回に制限される。
func (r *resolver) resolveVoucher(ctx context.Context, code string) (*ResolvedIdentity, error) {
	now := time.Now().Unix()

	v, err := r.vouchers.FindVoucher(ctx, code)
	if err != nil {
		if errors.Is(err, store.ErrVoucherNotFound) {
			return nil, ErrInvalidVoucher
		}
		return nil, err
	}

	if !v.IsActive || !v.WithinWindow(now) {
		return nil, ErrInvalidVoucher
	}
	if v.Exhausted() {
		return nil, ErrVoucherExhausted
	}

	redeemed, err := r.vouchers.TryRedeemVoucher(ctx, code, now)
	if err != nil {
		if errors.Is(err, store.ErrVoucherNotFound) || errors.Is(err, store.ErrVoucherNotRedeemable) {
			return nil, ErrInvalidVoucher
		}
		return nil, err
	}
	if !redeemed {
		// 事前読み取りから書き込みまでの間に他のワーカーが上限まで消費した
		return nil, ErrVoucherExhausted
	}

	slog.Info("voucher redeemed",
		"event_id", "VOUCHER_REDEEMED",
		"profile_id", v.ProfileID,
		"use_limit", v.UseLimit,
	)

	profile, err := r.profiles.FindAccessProfile(ctx, v.ProfileID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("voucher profile %q missing: %w", v.ProfileID, err)
		}
		return nil, err
	}

	// バウチャーセッションは匿名（ユーザー行を作らない）
	return &ResolvedIdentity{Profile: profile}, nil
}

// resolveUser は既存ユーザーの識別解決を行う。
// 識別子で見つからない場合はMACアドレス索引を試す。
// 消費レコードが無い場合はデフォルトプロファイルで冪等にプロビジョニングする。
func (r *resolver) resolveUser(ctx context.Context, identifier, mac string) (*ResolvedIdentity, error) {
	u, err := r.users.FindUserByID(ctx, identifier)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			return nil, err
		}
		u, err = r.users.FindUserByMAC(ctx, mac)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil, ErrUserNotFound
			}
			return nil, err
		}
	}

	if err := r.users.TouchLastSeen(ctx, u.ID, time.Now().Unix()); err != nil {
		// 最終認証日時は判定に影響しないため続行する
		slog.Warn("last seen update failed",
			"event_id", "USER_TOUCH_ERR",
			"user_id", u.ID,
			"error", err.Error(),
		)
	}

	usage, err := r.users.FindUserAccess(ctx, u.ID)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			return nil, err
		}
		return r.provisionDefault(ctx, u)
	}

	profile, err := r.profiles.FindAccessProfile(ctx, usage.ProfileID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("user profile %q missing: %w", usage.ProfileID, err)
		}
		return nil, err
	}

	return &ResolvedIdentity{
		UserID:  u.ID,
		Profile: profile,
		Usage:   usage,
	}, nil
}

// provisionDefault は初回認証ユーザーにデフォルトプロファイルを割り当て、
// ゼロカウンターの消費レコードを作成する。
func (r *resolver) provisionDefault(ctx context.Context, u *model.User) (*ResolvedIdentity, error) {
	profile, err := r.profiles.FindDefaultProfile(ctx)
	if err != nil {
		return nil, err
	}

	usage, err := r.users.CreateUserAccessIfAbsent(ctx, u.ID, profile.ID)
	if err != nil {
		return nil, err
	}

	slog.Info("default profile provisioned",
		"event_id", "USER_PROVISIONED",
		"user_id", u.ID,
		"profile_id", profile.ID,
	)

	// 同時プロビジョニングで別プロファイルが先に書かれていた場合はそちらに従う
	if usage.ProfileID != profile.ID {
		profile, err = r.profiles.FindAccessProfile(ctx, usage.ProfileID)
		if err != nil {
			return nil, err
		}
	}

	return &ResolvedIdentity{
		UserID:  u.ID,
		Profile: profile,
		Usage:   usage,
	}, nil
}
