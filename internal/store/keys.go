package store

// Valkeyキープレフィックス
const (
	KeyPrefixUser      = "user:"      // ユーザー情報
	KeyPrefixVoucher   = "voucher:"   // バウチャー
	KeyPrefixProfile   = "profile:"   // アクセスプロファイル
	KeyPrefixUsage     = "usage:"     // ユーザー消費カウンター
	KeyPrefixSession   = "sess:"      // セッション
	KeyPrefixMACIndex  = "idx:mac:"   // MACアドレス→ユーザーID索引
	KeyPrefixUserIndex = "idx:user:"  // ユーザーID→セッションID索引
)
