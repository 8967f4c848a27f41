package authz

import (
	"context"
	"errors"
	"log/slog"

	"github.com/melbas/premiumconnect-admin-portal-sub002/internal/config"
	"github.com/melbas/premiumconnect-admin-portal-sub002/internal/identity"
	"github.com/melbas/premiumconnect-admin-portal-sub002/internal/logging"
	"github.com/melbas/premiumconnect-admin-portal-sub002/internal/nasattr"
	"github.com/melbas/premiumconnect-admin-portal-sub002/internal/quota"
	"github.com/melbas/premiumconnect-admin-portal-sub002/internal/session"
)

// Authorizer は認可判定のエントリーポイントを定義する。
type Authorizer interface {
	// Authorize はアクセスリクエストを判定する。
	// 戻り値は常に判定であり、エラーはINTERNAL_ERROR拒否に畳み込まれる。
	Authorize(ctx context.Context, req *Request) *Decision
}

// Engine はAuthorizerの実装。
// 解決→クォータ検査→セッション確立→ディレクティブ構築の順に評価し、
// 各段階の失敗で即座に拒否する。
type Engine struct {
	resolver identity.Resolver
	enforcer quota.Enforcer
	sessions session.Manager
	encoders *nasattr.Registry
	cfg      *config.Config
}

// NewEngine は新しいEngineを生成する。
func NewEngine(
	r identity.Resolver,
	e quota.Enforcer,
	sm session.Manager,
	reg *nasattr.Registry,
	cfg *config.Config,
) *Engine {
	return &Engine{
		resolver: r,
		enforcer: e,
		sessions: sm,
		encoders: reg,
		cfg:      cfg,
	}
}

// Authorize はアクセスリクエストを判定する。
// 判定全体に上限時間を設け、ストア無応答時はハングせずフェイルクローズする。
func (e *Engine) Authorize(ctx context.Context, req *Request) *Decision {
	ctx, cancel := context.WithTimeout(ctx, config.AuthorizeTimeout)
	defer cancel()

	// 1. 識別解決
	claim := identity.ParseClaim(req.IdentityClaim)
	resolved, err := e.resolver.Resolve(ctx, claim, req.MACAddress)
	if err != nil {
		return e.reject(req, e.mapResolveError(err))
	}

	// 2. クォータ・ポリシー検査
	// 拒否されても引き換え済みバウチャーは巻き戻さない。バウチャーは
	// UseLimit自体がクォータであり、失敗経路での再利用を許さない。
	if err := e.enforcer.Check(resolved); err != nil {
		return e.reject(req, e.mapQuotaError(err))
	}

	// 3. セッション確立（応答前に同期永続化、失敗はフェイルクローズ）
	sess, remaining, err := e.sessions.Establish(ctx, session.EstablishParams{
		SessionID:       req.SessionID,
		MAC:             req.MACAddress,
		NasIP:           req.NasAddress,
		NasPortID:       req.NasPortID,
		AttachmentPoint: req.AttachmentPoint,
		NetworkName:     req.NetworkName,
	}, resolved)
	if err != nil {
		if errors.Is(err, session.ErrDuplicateSession) {
			return e.reject(req, ReasonDuplicateSession)
		}
		return e.reject(req, ReasonInternalError)
	}

	// 4. ディレクティブ構築・ベンダーエンコード
	directives := nasattr.Build(resolved.Profile, remaining)
	encoder := e.encoders.Get(req.NasVendor)

	slog.Info("access accepted",
		"event_id", "AUTHZ_ACCEPT",
		"trace_id", req.TraceID,
		"session_id", sess.ID,
		"mac", logging.MaskMAC(req.MACAddress, e.cfg.LogMaskPII),
		"profile_id", resolved.Profile.ID,
		"vlan_id", directives.VlanID,
		"encoder", encoder.Name(),
	)

	return &Decision{
		Accept:       true,
		ReplyMessage: acceptMessage,
		Directives:   &directives,
		Attributes:   encoder.Encode(directives),
	}
}

// reject は拒否判定を生成しログに記録する。
// ストア障害由来の拒否と論理的な拒否でログレベルを分ける。
func (e *Engine) reject(req *Request, reason RejectReason) *Decision {
	if reason == ReasonInternalError {
		slog.Error("access rejected (fail closed)",
			"event_id", "AUTHZ_FAIL_CLOSED",
			"trace_id", req.TraceID,
			"session_id", req.SessionID,
			"mac", logging.MaskMAC(req.MACAddress, e.cfg.LogMaskPII),
		)
	} else {
		slog.Info("access rejected",
			"event_id", "AUTHZ_REJECT",
			"trace_id", req.TraceID,
			"session_id", req.SessionID,
			"mac", logging.MaskMAC(req.MACAddress, e.cfg.LogMaskPII),
			"reason", string(reason),
		)
	}
	return NewReject(reason)
}

// mapResolveError は識別解決のエラーを拒否理由に変換する。
// ストア障害など論理拒否以外はINTERNAL_ERROR（フェイルクローズ）。
func (e *Engine) mapResolveError(err error) RejectReason {
	switch {
	case errors.Is(err, identity.ErrInvalidVoucher):
		return ReasonInvalidVoucher
	case errors.Is(err, identity.ErrVoucherExhausted):
		return ReasonVoucherExhausted
	case errors.Is(err, identity.ErrUserNotFound):
		return ReasonUserNotFound
	default:
		return ReasonInternalError
	}
}

// mapQuotaError はクォータ検査のエラーを拒否理由に変換する。
func (e *Engine) mapQuotaError(err error) RejectReason {
	switch {
	case errors.Is(err, quota.ErrProfileInactive):
		return ReasonProfileInactive
	case errors.Is(err, quota.ErrDataQuotaExceeded):
		return ReasonDataQuotaExceeded
	case errors.Is(err, quota.ErrTimeQuotaExceeded):
		return ReasonTimeQuotaExceeded
	default:
		return ReasonInternalError
	}
}
