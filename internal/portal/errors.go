package portal

import "fmt"

// ConnectionError はPortal Backendへの接続失敗を表す。
type ConnectionError struct {
	Cause error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("portal backend connection error: %v", e.Cause)
}

func (e *ConnectionError) Unwrap() error {
	return e.Cause
}

// APIError はPortal BackendのエラーレスポンスをHTTPステータス付きで表す。
type APIError struct {
	StatusCode int
	Title      string
	Detail     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("portal backend api error: status=%d title=%s detail=%s", e.StatusCode, e.Title, e.Detail)
}
