package identity

import "errors"

var (
	// ErrInvalidVoucher はバウチャーが存在しない・無効・有効期間外の場合のエラー
	ErrInvalidVoucher = errors.New("invalid voucher")

	// ErrVoucherExhausted はバウチャーの利用回数が上限に達している場合のエラー
	ErrVoucherExhausted = errors.New("voucher exhausted")

	// ErrUserNotFound はユーザーが見つからない場合のエラー
	ErrUserNotFound = errors.New("user not found")
)
