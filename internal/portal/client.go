// Package portal はPortal Backendのプロファイル定義APIクライアントを提供する。
package portal

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/melbas/premiumconnect-admin-portal-sub002/internal/config"
	"github.com/melbas/premiumconnect-admin-portal-sub002/internal/model"
	"github.com/melbas/premiumconnect-admin-portal-sub002/internal/store"
	"github.com/sony/gobreaker"
)

// Client はPortal Backendクライアントの実装。
// store.ProfileSourceインターフェースを満たす。
type Client struct {
	httpClient *resty.Client
	cb         *gobreaker.CircuitBreaker
	baseURL    string
}

// NewClient は新しいPortal Backendクライアントを生成する。
func NewClient(cfg *config.Config) *Client {
	httpClient := resty.New().
		SetTimeout(config.PortalRequestTimeout)

	cbSettings := gobreaker.Settings{
		Name:        config.CBName,
		MaxRequests: config.CBMaxRequests,
		Interval:    config.CBInterval,
		Timeout:     config.CBTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= uint32(config.CBFailureThreshold)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			switch to {
			case gobreaker.StateOpen:
				slog.Warn("circuit breaker opened",
					"event_id", "CB_OPEN",
					"cb_name", name,
				)
			case gobreaker.StateHalfOpen:
				slog.Info("circuit breaker half-open",
					"event_id", "CB_HALF_OPEN",
					"cb_name", name,
				)
			case gobreaker.StateClosed:
				slog.Info("circuit breaker closed",
					"event_id", "CB_CLOSE",
					"cb_name", name,
				)
			}
		},
	}

	return &Client{
		httpClient: httpClient,
		cb:         gobreaker.NewCircuitBreaker(cbSettings),
		baseURL:    strings.TrimRight(cfg.PortalAPIURL, "/"),
	}
}

// FetchProfile はプロファイル定義を取得する。
// 404はstore.ErrNotFoundにラップして返し、5xxはCircuit Breakerの
// 失敗としてカウントする。
func (c *Client) FetchProfile(ctx context.Context, id string) (*model.AccessProfile, error) {
	result, err := c.cb.Execute(func() (any, error) {
		resp, err := c.httpClient.R().
			SetContext(ctx).
			SetHeader(HeaderContentType, ContentTypeJSON).
			Get(c.baseURL + "/api/v1/profiles/" + id)

		if err != nil {
			return nil, &ConnectionError{Cause: err}
		}

		statusCode := resp.StatusCode()
		if statusCode == http.StatusNotFound {
			// 未定義プロファイルはCB失敗にカウントしない
			return nil, nil
		}
		if statusCode != http.StatusOK {
			apiErr := c.parseAPIError(statusCode, resp.Body())
			slog.Error("portal api error",
				"event_id", "PORTAL_API_ERR",
				"profile_id", id,
				"status", statusCode,
				"error", apiErr.Error(),
			)
			return nil, apiErr
		}

		var pr profileResponse
		if err := json.Unmarshal(resp.Body(), &pr); err != nil {
			return nil, &APIError{
				StatusCode: statusCode,
				Title:      "Invalid Response",
				Detail:     err.Error(),
			}
		}
		return &pr, nil
	})
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, fmt.Errorf("%w: profile %s", store.ErrNotFound, id)
	}

	pr := result.(*profileResponse)
	return &model.AccessProfile{
		ID:          pr.ID,
		Name:        pr.Name,
		VlanID:      pr.VlanID,
		MaxUpKbps:   pr.MaxUpKbps,
		MaxDownKbps: pr.MaxDownKbps,
		QuotaMB:     pr.QuotaMB,
		QuotaMin:    pr.QuotaMin,
		IsActive:    pr.IsActive,
	}, nil
}

// parseAPIError はRFC 7807エラーレスポンスをAPIErrorに変換する。
// パース不能な場合はステータスコードのみのAPIErrorを返す。
func (c *Client) parseAPIError(statusCode int, body []byte) *APIError {
	var p problemDetail
	if err := json.Unmarshal(body, &p); err != nil {
		return &APIError{StatusCode: statusCode}
	}
	return &APIError{
		StatusCode: statusCode,
		Title:      p.Title,
		Detail:     p.Detail,
	}
}
