// Package authz はアクセス認可の判定エントリーポイントを提供する。
package authz

import "github.com/melbas/premiumconnect-admin-portal-sub002/internal/nasattr"

// Request はNAS由来のアクセスリクエストを表す。
// ワイヤエンコーディングはフロントエンド層の責務であり、ここでは扱わない。
type Request struct {
	TraceID         string // リクエスト追跡ID（フロントエンドが払い出す）
	IdentityClaim   string // 識別子クレーム（"voucher:"接頭辞でバウチャー）
	MACAddress      string // 端末MACアドレス
	NasAddress      string // NASアドレス
	NasPortID       string // NASポート識別子（任意）
	SessionID       string // NAS払い出しのセッションID
	AttachmentPoint string // 接続ポイント識別子（任意）
	NetworkName     string // SSID等のネットワーク名（任意）
	NasVendor       string // ベンダー識別子（AVPエンコード選択用、任意）
}

// RejectReason は拒否理由の機械可読コードを表す。
type RejectReason string

// 拒否理由コード
const (
	ReasonInvalidVoucher    RejectReason = "INVALID_VOUCHER"
	ReasonVoucherExhausted  RejectReason = "VOUCHER_EXHAUSTED"
	ReasonUserNotFound      RejectReason = "USER_NOT_FOUND"
	ReasonProfileInactive   RejectReason = "PROFILE_INACTIVE"
	ReasonDataQuotaExceeded RejectReason = "DATA_QUOTA_EXCEEDED"
	ReasonTimeQuotaExceeded RejectReason = "TIME_QUOTA_EXCEEDED"
	ReasonDuplicateSession  RejectReason = "DUPLICATE_SESSION"
	ReasonInternalError     RejectReason = "INTERNAL_ERROR"
)

// replyMessages はキャプティブポータルUIがそのまま表示する人間可読メッセージ。
var replyMessages = map[RejectReason]string{
	ReasonInvalidVoucher:    "This voucher code is not valid or has expired.",
	ReasonVoucherExhausted:  "This voucher code has already been used.",
	ReasonUserNotFound:      "We could not find an account for this device. Please sign up at the portal.",
	ReasonProfileInactive:   "Your access plan is currently disabled. Please contact support.",
	ReasonDataQuotaExceeded: "You have used all of your data allowance.",
	ReasonTimeQuotaExceeded: "You have used all of your time allowance.",
	ReasonDuplicateSession:  "Another device is already connected with this session.",
	ReasonInternalError:     "The service is temporarily unavailable. Please try again.",
}

// acceptMessage は受け入れ時の応答メッセージ。
const acceptMessage = "Welcome! You are now connected."

// ReplyMessage は拒否理由に対応する表示用メッセージを返す。
func ReplyMessage(reason RejectReason) string {
	if msg, ok := replyMessages[reason]; ok {
		return msg
	}
	return replyMessages[ReasonInternalError]
}

// Decision は認可判定の結果を表す。
type Decision struct {
	Accept       bool
	Reason       RejectReason       // 拒否時のみ
	ReplyMessage string             // UI表示用メッセージ（常にセット）
	Directives   *nasattr.Directives // 受け入れ時のみ
	Attributes   map[string]any      // ベンダーエンコード済みAVP（受け入れ時のみ）
}

// NewReject は拒否判定を生成する。
func NewReject(reason RejectReason) *Decision {
	return &Decision{
		Accept:       false,
		Reason:       reason,
		ReplyMessage: ReplyMessage(reason),
	}
}
