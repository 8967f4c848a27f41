package model

// Voucher は利用回数制限付きアクセストークンを表す。
// Valkeyキー: voucher:{Code}
// UsedCountはTryRedeemVoucherの条件付きインクリメントのみが変更する（減算されない）。
type Voucher struct {
	Code      string `redis:"code" json:"code"`             // バウチャーコード（一意）
	ProfileID string `redis:"profile_id" json:"profile_id"` // 紐付くアクセスプロファイルID
	ValidFrom int64  `redis:"valid_from" json:"valid_from"` // 有効期間開始（UNIX秒）
	ValidTo   int64  `redis:"valid_to" json:"valid_to"`     // 有効期間終了（UNIX秒、排他）
	UseLimit  int64  `redis:"use_limit" json:"use_limit"`   // 利用回数上限
	UsedCount int64  `redis:"used_count" json:"used_count"` // 利用済み回数
	IsActive  bool   `redis:"is_active" json:"is_active"`   // 有効フラグ
}

// WithinWindow は指定時刻が有効期間 [ValidFrom, ValidTo) 内かどうかを返す。
func (v *Voucher) WithinWindow(now int64) bool {
	return now >= v.ValidFrom && now < v.ValidTo
}

// Exhausted は利用回数が上限に達しているかどうかを返す。
func (v *Voucher) Exhausted() bool {
	return v.UsedCount >= v.UseLimit
}

// Redeemable は指定時刻に引き換え可能かどうかを返す。
func (v *Voucher) Redeemable(now int64) bool {
	return v.IsActive && v.WithinWindow(now) && !v.Exhausted()
}
