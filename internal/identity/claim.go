// Package identity はアクセスリクエストの識別子解決を提供する。
package identity

import "strings"

// VoucherPrefix はバウチャーコードを示すクレームの接頭辞。
const VoucherPrefix = "voucher:"

// ClaimKind はクレームの種別を表す。
type ClaimKind int

const (
	// KindDirect は既存ユーザー識別子（メール/電話番号/加入者ID）
	KindDirect ClaimKind = iota
	// KindVoucher はバウチャーコード
	KindVoucher
)

// Claim はリクエスト境界で一度だけ判別されるクレームを表す。
// 以降の処理は文字列検査を繰り返さずKindで分岐する。
type Claim struct {
	Kind       ClaimKind
	Code       string // Kind=KindVoucherの場合のバウチャーコード
	Identifier string // Kind=KindDirectの場合の識別子
}

// ParseClaim は生のクレーム文字列を判別してClaimを返す。
// "voucher:"接頭辞付きはバウチャーコード（大文字正規化）、それ以外は直接識別子。
func ParseClaim(raw string) Claim {
	trimmed := strings.TrimSpace(raw)
	if rest, ok := strings.CutPrefix(trimmed, VoucherPrefix); ok {
		return Claim{
			Kind: KindVoucher,
			Code: strings.ToUpper(strings.TrimSpace(rest)),
		}
	}
	return Claim{
		Kind:       KindDirect,
		Identifier: trimmed,
	}
}
