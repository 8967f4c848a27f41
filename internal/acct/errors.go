package acct

import "errors"

var (
	// ErrSessionNotFound は対象セッションが存在しない場合のエラー
	ErrSessionNotFound = errors.New("session not found")
)
