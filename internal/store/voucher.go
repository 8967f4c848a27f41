package store

import (
	"context"
	"fmt"

	"github.com/melbas/premiumconnect-admin-portal-sub002/internal/model"
	"github.com/redis/go-redis/v9"
)

// redeemScript はバウチャー引き換えの条件付きインクリメントを行うLuaスクリプト。
// 有効フラグ・有効期間・回数上限を書き込み時点で再検証してからHINCRBYする。
// 読み取り→書き込みの間に他のワーカーが上限まで消費するレースを閉じる唯一の機構。
//
// 戻り値: 1=引き換え成功, 0=回数上限到達, -1=キー不在, -2=無効または期間外
var redeemScript = redis.NewScript(`
local f = redis.call('HMGET', KEYS[1], 'is_active', 'valid_from', 'valid_to', 'use_limit', 'used_count')
if not f[1] then
  return -1
end
if f[1] ~= '1' and f[1] ~= 'true' then
  return -2
end
local now = tonumber(ARGV[1])
if now < tonumber(f[2]) or now >= tonumber(f[3]) then
  return -2
end
if tonumber(f[5]) >= tonumber(f[4]) then
  return 0
end
redis.call('HINCRBY', KEYS[1], 'used_count', 1)
return 1
`)

// voucherStore はVoucherStoreインターフェースの実装。
type voucherStore struct {
	vc *ValkeyClient
}

// NewVoucherStore は新しいVoucherStoreを生成する。
func NewVoucherStore(vc *ValkeyClient) VoucherStore {
	return &voucherStore{vc: vc}
}

// FindVoucher は指定されたコードのバウチャーを取得する。
func (s *voucherStore) FindVoucher(ctx context.Context, code string) (*model.Voucher, error) {
	key := KeyPrefixVoucher + code
	m, err := s.vc.Client().HGetAll(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValkeyUnavailable, err)
	}
	if len(m) == 0 {
		return nil, ErrVoucherNotFound
	}

	var v model.Voucher
	if err := MapToStruct(m, &v); err != nil {
		return nil, fmt.Errorf("voucher deserialization error: %w", err)
	}
	return &v, nil
}

// TryRedeemVoucher はバウチャーの利用回数を条件付きでインクリメントする。
func (s *voucherStore) TryRedeemVoucher(ctx context.Context, code string, now int64) (bool, error) {
	key := KeyPrefixVoucher + code
	res, err := redeemScript.Run(ctx, s.vc.Client(), []string{key}, now).Int64()
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrValkeyUnavailable, err)
	}

	switch res {
	case 1:
		return true, nil
	case 0:
		return false, nil
	case -1:
		return false, ErrVoucherNotFound
	default:
		return false, ErrVoucherNotRedeemable
	}
}
