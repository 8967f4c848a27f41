package config

import "time"

// Valkey接続設定
const (
	ValkeyConnectTimeout = 3 * time.Second
	ValkeyCommandTimeout = 2 * time.Second
	ValkeyPoolSize       = 10
	ValkeyMinIdleConns   = 2
)

// Portal Backend接続設定
const (
	PortalRequestTimeout = 5 * time.Second
)

// Circuit Breaker設定
const (
	CBName             = "portal-backend"
	CBMaxRequests      = 3
	CBInterval         = 10 * time.Second
	CBTimeout          = 30 * time.Second
	CBFailureThreshold = 5
)

// 認可処理設定
const (
	// AuthorizeTimeout は1認可判定あたりの上限時間。
	// NAS側の再送間隔（通常5秒）より短く設定し、ハングを避ける。
	AuthorizeTimeout = 3 * time.Second

	// AcctInterimInterval はNASへ指示する中間アカウンティング間隔（秒）。
	AcctInterimInterval = 60
)

// セッション・キャッシュTTL
const (
	SessionTTL      = 24 * time.Hour
	ProfileCacheTTL = 10 * time.Minute
)

// サーバーシャットダウン設定
const (
	ShutdownTimeout = 5 * time.Second
)
