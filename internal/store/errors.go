package store

import "errors"

var (
	// ErrValkeyUnavailable はValkeyへの接続・コマンド実行に失敗した場合のエラー
	ErrValkeyUnavailable = errors.New("valkey unavailable")

	// ErrNotFound は対象キーが存在しない場合のエラー
	ErrNotFound = errors.New("key not found")

	// ErrVoucherNotFound はバウチャーが存在しない場合のエラー
	ErrVoucherNotFound = errors.New("voucher not found")

	// ErrVoucherNotRedeemable はバウチャーが無効または有効期間外の場合のエラー
	ErrVoucherNotRedeemable = errors.New("voucher not redeemable")

	// ErrNegativeIncrement は消費カウンターへの負の加算を拒否するエラー
	ErrNegativeIncrement = errors.New("usage increment must not be negative")
)
