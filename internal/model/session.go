package model

// セッション状態
const (
	SessionStateActive = "active"
	SessionStateClosed = "closed"
)

// Session は1回の認可インスタンスを表す。
// Valkeyキー: sess:{ID}（IDはNASが払い出すAcct-Session-Id）
// 状態遷移は active → closed のみ。closedからの再開は許可しない。
type Session struct {
	ID              string `redis:"id" json:"id"`                             // セッションID（NAS払い出し）
	UserID          string `redis:"user_id" json:"user_id"`                   // 紐付くユーザーID（匿名バウチャーは空）
	MAC             string `redis:"mac" json:"mac"`                           // 端末MACアドレス
	NasIP           string `redis:"nas_ip" json:"nas_ip"`                     // NASアドレス
	NasPortID       string `redis:"nas_port_id" json:"nas_port_id"`           // NASポート識別子
	ProfileID       string `redis:"profile_id" json:"profile_id"`             // 適用プロファイルID
	VlanID          int    `redis:"vlan_id" json:"vlan_id"`                   // 割り当てVLAN（0 = なし）
	AttachmentPoint string `redis:"attachment_point" json:"attachment_point"` // 接続ポイント識別子（AP名など）
	NetworkName     string `redis:"network_name" json:"network_name"`         // SSID等のネットワーク名
	State           string `redis:"state" json:"state"`                       // active / closed
	CreatedAt       int64  `redis:"created_at" json:"created_at"`             // 作成日時（UNIX秒）
	ClosedAt        int64  `redis:"closed_at" json:"closed_at"`               // 終了日時（UNIX秒、active中は0）
}

// IsActive はセッションがアクティブ状態かどうかを返す。
func (s *Session) IsActive() bool {
	return s.State == SessionStateActive
}
