package quota

import "errors"

var (
	// ErrProfileInactive はプロファイルが無効化されている場合のエラー
	ErrProfileInactive = errors.New("profile inactive")

	// ErrDataQuotaExceeded はデータクォータを消費し切っている場合のエラー
	ErrDataQuotaExceeded = errors.New("data quota exceeded")

	// ErrTimeQuotaExceeded は時間クォータを消費し切っている場合のエラー
	ErrTimeQuotaExceeded = errors.New("time quota exceeded")
)
