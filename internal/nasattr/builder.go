// Package nasattr はアクセスプロファイルからNAS向けディレクティブへの変換を提供する。
package nasattr

import (
	"log/slog"

	"github.com/melbas/premiumconnect-admin-portal-sub002/internal/config"
	"github.com/melbas/premiumconnect-admin-portal-sub002/internal/model"
	"github.com/melbas/premiumconnect-admin-portal-sub002/internal/session"
)

// Directives はNASがリンク層で強制する指示値を表す。
// ゼロ値のフィールドは「指示なし」を意味する（AcctIntervalSecを除く）。
type Directives struct {
	VlanID            int   `json:"vlan_id,omitempty"`
	RateLimitUpKbps   int   `json:"rate_limit_up_kbps,omitempty"`
	RateLimitDownKbps int   `json:"rate_limit_down_kbps,omitempty"`
	SessionTimeoutSec int64 `json:"session_timeout_seconds,omitempty"`
	AcctIntervalSec   int   `json:"accounting_interval_seconds"`
}

// Build はプロファイルと残り時間からディレクティブを構築する。
// 副作用なしの純関数。残り時間が0以下で呼ばれた場合はクォータ検査の
// 不変条件違反であり、ログに記録してタイムアウト指示を省略する。
func Build(p *model.AccessProfile, remaining session.Remaining) Directives {
	d := Directives{
		// 外部アカウンティングフィードがカウンターを逐次更新できるよう
		// 中間アカウンティング間隔は常に指示する
		AcctIntervalSec: config.AcctInterimInterval,
	}

	if p.VlanID > 0 {
		d.VlanID = p.VlanID
	}
	if p.MaxUpKbps > 0 {
		d.RateLimitUpKbps = p.MaxUpKbps
	}
	if p.MaxDownKbps > 0 {
		d.RateLimitDownKbps = p.MaxDownKbps
	}

	if remaining.Limited {
		if remaining.Minutes > 0 {
			d.SessionTimeoutSec = remaining.Minutes * 60
		} else {
			slog.Error("non-positive remaining minutes at attribute build",
				"event_id", "ATTR_INVARIANT",
				"profile_id", p.ID,
				"remaining_minutes", remaining.Minutes,
			)
		}
	}

	return d
}
