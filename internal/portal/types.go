package portal

// HTTPヘッダー定数
const (
	HeaderTraceID     = "X-Trace-Id"
	HeaderContentType = "Content-Type"
	ContentTypeJSON   = "application/json"
)

// profileResponse はPortal BackendのプロファイルAPIレスポンスを表す。
type profileResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	VlanID      int    `json:"vlan_id"`
	MaxUpKbps   int    `json:"max_up_kbps"`
	MaxDownKbps int    `json:"max_down_kbps"`
	QuotaMB     int64  `json:"quota_mb"`
	QuotaMin    int64  `json:"quota_minutes"`
	IsActive    bool   `json:"is_active"`
}

// problemDetail はRFC 7807準拠のエラーレスポンスを表す。
type problemDetail struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}
