package model

// AccessProfile はポリシーバンドル（VLAN・帯域・クォータ）を表す。
// Valkeyキー: profile:{ID}
// セッション継続中は不変。本サービスからは読み取り専用。
type AccessProfile struct {
	ID          string `redis:"id" json:"id"`                       // プロファイルID
	Name        string `redis:"name" json:"name"`                   // 表示名
	VlanID      int    `redis:"vlan_id" json:"vlan_id"`             // VLAN ID（0 = 割り当てなし）
	MaxUpKbps   int    `redis:"max_up_kbps" json:"max_up_kbps"`     // 上り帯域上限（kbps、0 = 無制限）
	MaxDownKbps int    `redis:"max_down_kbps" json:"max_down_kbps"` // 下り帯域上限（kbps、0 = 無制限）
	QuotaMB     int64  `redis:"quota_mb" json:"quota_mb"`           // データクォータ（MB、0 = 無制限）
	QuotaMin    int64  `redis:"quota_minutes" json:"quota_minutes"` // 時間クォータ（分、0 = 無制限）
	IsActive    bool   `redis:"is_active" json:"is_active"`         // 有効フラグ
}

// HasDataQuota はデータクォータが設定されているかどうかを返す。
func (p *AccessProfile) HasDataQuota() bool {
	return p.QuotaMB > 0
}

// HasTimeQuota は時間クォータが設定されているかどうかを返す。
func (p *AccessProfile) HasTimeQuota() bool {
	return p.QuotaMin > 0
}
