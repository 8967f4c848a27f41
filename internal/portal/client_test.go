package portal

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/melbas/premiumconnect-admin-portal-sub002/internal/config"
	"github.com/melbas/premiumconnect-admin-portal-sub002/internal/store"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)
	return NewClient(&config.Config{PortalAPIURL: ts.URL})
}

func TestFetchProfile(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/profiles/premium" {
			t.Errorf("path = %q, want %q", r.URL.Path, "/api/v1/profiles/premium")
		}
		w.Header().Set(HeaderContentType, ContentTypeJSON)
		_ = json.NewEncoder(w).Encode(profileResponse{
			ID:          "premium",
			Name:        "Premium",
			VlanID:      200,
			MaxUpKbps:   10000,
			MaxDownKbps: 50000,
			QuotaMB:     10240,
			IsActive:    true,
		})
	})

	p, err := client.FetchProfile(context.Background(), "premium")
	if err != nil {
		t.Fatalf("FetchProfile failed: %v", err)
	}
	if p.ID != "premium" {
		t.Errorf("ID = %q, want %q", p.ID, "premium")
	}
	if p.VlanID != 200 {
		t.Errorf("VlanID = %d, want %d", p.VlanID, 200)
	}
	if p.QuotaMB != 10240 {
		t.Errorf("QuotaMB = %d, want %d", p.QuotaMB, 10240)
	}
	if !p.IsActive {
		t.Error("IsActive = false, want true")
	}
}

// TestFetchProfileNotFound は404がstore.ErrNotFoundにラップされて
// 返ることを検証する。
func TestFetchProfileNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.FetchProfile(context.Background(), "missing")
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("err = %v, want store.ErrNotFound", err)
	}
}

func TestFetchProfileServerError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(HeaderContentType, ContentTypeJSON)
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(problemDetail{
			Type:   "about:blank",
			Title:  "Internal Server Error",
			Status: http.StatusInternalServerError,
			Detail: "database unavailable",
		})
	})

	_, err := client.FetchProfile(context.Background(), "premium")
	if err == nil {
		t.Fatal("expected error for 500 response")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %T, want *APIError", err)
	}
	if apiErr.StatusCode != http.StatusInternalServerError {
		t.Errorf("StatusCode = %d, want %d", apiErr.StatusCode, http.StatusInternalServerError)
	}
	if apiErr.Title != "Internal Server Error" {
		t.Errorf("Title = %q, want %q", apiErr.Title, "Internal Server Error")
	}
}

func TestFetchProfileInvalidBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(HeaderContentType, ContentTypeJSON)
		_, _ = w.Write([]byte("not json"))
	})

	_, err := client.FetchProfile(context.Background(), "premium")
	if err == nil {
		t.Fatal("expected error for malformed body")
	}
}

// TestCircuitBreakerOpens は連続失敗後にCircuit Breakerが開き、
// 以降のリクエストがバックエンドに到達しないことを検証する。
func TestCircuitBreakerOpens(t *testing.T) {
	calls := 0
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
	})

	ctx := context.Background()
	for i := 0; i < config.CBFailureThreshold; i++ {
		if _, err := client.FetchProfile(ctx, "premium"); err == nil {
			t.Fatal("expected error while tripping breaker")
		}
	}
	reached := calls

	_, err := client.FetchProfile(ctx, "premium")
	if err == nil {
		t.Fatal("expected error from open breaker")
	}
	if calls != reached {
		t.Errorf("backend calls = %d, want %d (breaker open)", calls, reached)
	}
}

// TestCircuitBreakerIgnores404 は404がCB失敗にカウントされないことを検証する。
func TestCircuitBreakerIgnores404(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	ctx := context.Background()
	for i := 0; i < config.CBFailureThreshold*2; i++ {
		if _, err := client.FetchProfile(ctx, "missing"); !errors.Is(err, store.ErrNotFound) {
			t.Fatalf("err = %v, want store.ErrNotFound (breaker must stay closed)", err)
		}
	}
}
