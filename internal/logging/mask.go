// Package logging はログ関連のユーティリティを提供する。
package logging

import "strings"

// MaskMAC はMACアドレスをマスキングする。
// ベンダー部（先頭3オクテット）を保持し、端末固有部をマスクする。
// 例: AA:BB:CC:DD:EE:FF → AA:BB:CC:**:**:**
// enabled=falseまたは区切り文字が見つからない場合はそのまま返す。
func MaskMAC(mac string, enabled bool) string {
	if !enabled {
		return mac
	}
	sep := ":"
	if !strings.Contains(mac, sep) {
		sep = "-"
		if !strings.Contains(mac, sep) {
			return mac
		}
	}
	parts := strings.Split(mac, sep)
	if len(parts) != 6 {
		return mac
	}
	for i := 3; i < 6; i++ {
		parts[i] = "**"
	}
	return strings.Join(parts, sep)
}

// MaskClaim は識別子クレーム（メール/電話番号/バウチャーコード）をマスキングする。
// 先頭3文字と末尾1文字を保持し、中間をマスクする。
// enabled=falseまたは文字列長が4以下の場合はそのまま返す。
func MaskClaim(claim string, enabled bool) string {
	if !enabled || len(claim) <= 4 {
		return claim
	}
	return claim[:3] + strings.Repeat("*", len(claim)-4) + claim[len(claim)-1:]
}
