// Package model は共通データ構造体を提供する。
package model

// User は既知の加入者を表す。
// Valkeyキー: user:{ID}
type User struct {
	ID         string `redis:"id" json:"id"`                   // 加入者ID（メール/電話番号など外部識別子）
	Email      string `redis:"email" json:"email"`             // メールアドレス
	Phone      string `redis:"phone" json:"phone"`             // 電話番号
	MAC        string `redis:"mac" json:"mac"`                 // 端末MACアドレス（任意）
	CreatedAt  int64  `redis:"created_at" json:"created_at"`   // 作成日時（UNIX秒）
	LastSeenAt int64  `redis:"last_seen_at" json:"last_seen_at"` // 最終認証日時（UNIX秒）
}

// UserAccess はユーザーごとの消費カウンターを表す。
// Valkeyキー: usage:{UserID}
// 両カウンターは単調増加のみ（アカウンティングフィードがHINCRBYで加算する）。
type UserAccess struct {
	ProfileID   string `redis:"profile_id" json:"profile_id"`     // 紐付くアクセスプロファイルID
	QuotaUsedMB int64  `redis:"quota_used_mb" json:"quota_used_mb"` // データ消費量（MB）
	MinutesUsed int64  `redis:"minutes_used" json:"minutes_used"`   // 時間消費量（分）
}
