package nasattr

import (
	"fmt"
	"strconv"
)

// Encoder はディレクティブをNASベンダー固有のAVP表現に変換する。
// 中核の変換ロジック（Build）はベンダー非依存であり、ベンダー差異は
// このストラテジーに閉じ込める。
type Encoder interface {
	// Name はエンコーダー識別子（ベンダー名）を返す。
	Name() string
	// Encode はディレクティブをAVP名→値のマップに変換する。
	Encode(d Directives) map[string]any
}

// genericEncoder はRFC標準属性によるエンコーダー。
// Tunnel-Type=13(VLAN), Tunnel-Medium-Type=6(802)。
// 帯域はWISPr-Bandwidth-Max-*（bps単位）で表現する。
type genericEncoder struct{}

// NewGenericEncoder は新しい標準エンコーダーを生成する。
func NewGenericEncoder() Encoder {
	return &genericEncoder{}
}

func (e *genericEncoder) Name() string { return "generic" }

// Encode はディレクティブをRFC標準/WISPr属性に変換する。
func (e *genericEncoder) Encode(d Directives) map[string]any {
	avps := map[string]any{
		"Acct-Interim-Interval": d.AcctIntervalSec,
	}
	if d.VlanID > 0 {
		avps["Tunnel-Type"] = 13
		avps["Tunnel-Medium-Type"] = 6
		avps["Tunnel-Private-Group-Id"] = strconv.Itoa(d.VlanID)
	}
	if d.RateLimitUpKbps > 0 {
		avps["WISPr-Bandwidth-Max-Up"] = d.RateLimitUpKbps * 1000
	}
	if d.RateLimitDownKbps > 0 {
		avps["WISPr-Bandwidth-Max-Down"] = d.RateLimitDownKbps * 1000
	}
	if d.SessionTimeoutSec > 0 {
		avps["Session-Timeout"] = d.SessionTimeoutSec
	}
	return avps
}

// mikrotikEncoder はMikroTik RouterOS向けエンコーダー。
// 帯域はMikrotik-Rate-Limit文字列 "上りk/下りk" で表現する。
type mikrotikEncoder struct{}

// NewMikrotikEncoder は新しいMikroTik向けエンコーダーを生成する。
func NewMikrotikEncoder() Encoder {
	return &mikrotikEncoder{}
}

func (e *mikrotikEncoder) Name() string { return "mikrotik" }

// Encode はディレクティブをMikroTik属性に変換する。
func (e *mikrotikEncoder) Encode(d Directives) map[string]any {
	avps := map[string]any{
		"Acct-Interim-Interval": d.AcctIntervalSec,
	}
	if d.VlanID > 0 {
		avps["Tunnel-Type"] = 13
		avps["Tunnel-Medium-Type"] = 6
		avps["Tunnel-Private-Group-Id"] = strconv.Itoa(d.VlanID)
	}
	if d.RateLimitUpKbps > 0 || d.RateLimitDownKbps > 0 {
		avps["Mikrotik-Rate-Limit"] = fmt.Sprintf("%dk/%dk", d.RateLimitUpKbps, d.RateLimitDownKbps)
	}
	if d.SessionTimeoutSec > 0 {
		avps["Session-Timeout"] = d.SessionTimeoutSec
	}
	return avps
}
