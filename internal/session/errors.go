package session

import "errors"

var (
	// ErrDuplicateSession は同一セッションIDが別端末のアクティブセッションに
	// 使用されている場合のエラー（NAS側の異常を示す）
	ErrDuplicateSession = errors.New("duplicate session")
)
