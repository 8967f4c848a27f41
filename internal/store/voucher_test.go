package store

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
)

// seedVoucher はテスト用バウチャーをminiredisに書き込む
func seedVoucher(t *testing.T, mr *miniredis.Miniredis, code string, useLimit, usedCount int64, active bool, validFrom, validTo int64) {
	t.Helper()
	key := KeyPrefixVoucher + code
	activeVal := "0"
	if active {
		activeVal = "1"
	}
	mr.HSet(key, "code", code)
	mr.HSet(key, "profile_id", "premium")
	mr.HSet(key, "valid_from", strconv.FormatInt(validFrom, 10))
	mr.HSet(key, "valid_to", strconv.FormatInt(validTo, 10))
	mr.HSet(key, "use_limit", strconv.FormatInt(useLimit, 10))
	mr.HSet(key, "used_count", strconv.FormatInt(usedCount, 10))
	mr.HSet(key, "is_active", activeVal)
}

func TestFindVoucher(t *testing.T) {
	mr := miniredis.RunT(t)
	vs := NewVoucherStore(newTestValkeyClient(t, mr))
	ctx := context.Background()

	now := time.Now().Unix()
	seedVoucher(t, mr, "SUMMER10", 10, 3, true, now-3600, now+3600)

	v, err := vs.FindVoucher(ctx, "SUMMER10")
	if err != nil {
		t.Fatalf("FindVoucher failed: %v", err)
	}
	if v.Code != "SUMMER10" {
		t.Errorf("Code = %q, want %q", v.Code, "SUMMER10")
	}
	if v.ProfileID != "premium" {
		t.Errorf("ProfileID = %q, want %q", v.ProfileID, "premium")
	}
	if v.UseLimit != 10 || v.UsedCount != 3 {
		t.Errorf("UseLimit/UsedCount = %d/%d, want 10/3", v.UseLimit, v.UsedCount)
	}
	if !v.IsActive {
		t.Error("IsActive = false, want true")
	}
}

func TestFindVoucherNotFound(t *testing.T) {
	mr := miniredis.RunT(t)
	vs := NewVoucherStore(newTestValkeyClient(t, mr))

	_, err := vs.FindVoucher(context.Background(), "MISSING")
	if !errors.Is(err, ErrVoucherNotFound) {
		t.Errorf("err = %v, want ErrVoucherNotFound", err)
	}
}

func TestTryRedeemVoucher(t *testing.T) {
	mr := miniredis.RunT(t)
	vs := NewVoucherStore(newTestValkeyClient(t, mr))
	ctx := context.Background()

	now := time.Now().Unix()
	seedVoucher(t, mr, "SUMMER10", 1, 0, true, now-3600, now+3600)

	ok, err := vs.TryRedeemVoucher(ctx, "SUMMER10", now)
	if err != nil {
		t.Fatalf("TryRedeemVoucher failed: %v", err)
	}
	if !ok {
		t.Fatal("expected redemption to succeed")
	}

	if got := mr.HGet(KeyPrefixVoucher+"SUMMER10", "used_count"); got != "1" {
		t.Errorf("used_count = %q, want %q", got, "1")
	}
}

func TestTryRedeemVoucherExhausted(t *testing.T) {
	mr := miniredis.RunT(t)
	vs := NewVoucherStore(newTestValkeyClient(t, mr))
	ctx := context.Background()

	now := time.Now().Unix()
	seedVoucher(t, mr, "USED", 2, 2, true, now-3600, now+3600)

	ok, err := vs.TryRedeemVoucher(ctx, "USED", now)
	if err != nil {
		t.Fatalf("TryRedeemVoucher failed: %v", err)
	}
	if ok {
		t.Error("expected redemption to fail for exhausted voucher")
	}
	if got := mr.HGet(KeyPrefixVoucher+"USED", "used_count"); got != "2" {
		t.Errorf("used_count = %q, want unchanged %q", got, "2")
	}
}

func TestTryRedeemVoucherNotFound(t *testing.T) {
	mr := miniredis.RunT(t)
	vs := NewVoucherStore(newTestValkeyClient(t, mr))

	_, err := vs.TryRedeemVoucher(context.Background(), "MISSING", time.Now().Unix())
	if !errors.Is(err, ErrVoucherNotFound) {
		t.Errorf("err = %v, want ErrVoucherNotFound", err)
	}
}

func TestTryRedeemVoucherInactive(t *testing.T) {
	mr := miniredis.RunT(t)
	vs := NewVoucherStore(newTestValkeyClient(t, mr))
	ctx := context.Background()

	now := time.Now().Unix()
	seedVoucher(t, mr, "OFF", 5, 0, false, now-3600, now+3600)

	_, err := vs.TryRedeemVoucher(ctx, "OFF", now)
	if !errors.Is(err, ErrVoucherNotRedeemable) {
		t.Errorf("err = %v, want ErrVoucherNotRedeemable", err)
	}
}

func TestTryRedeemVoucherOutsideWindow(t *testing.T) {
	mr := miniredis.RunT(t)
	vs := NewVoucherStore(newTestValkeyClient(t, mr))
	ctx := context.Background()

	now := time.Now().Unix()
	seedVoucher(t, mr, "EXPIRED", 5, 0, true, now-7200, now-3600)

	_, err := vs.TryRedeemVoucher(ctx, "EXPIRED", now)
	if !errors.Is(err, ErrVoucherNotRedeemable) {
		t.Errorf("err = %v, want ErrVoucherNotRedeemable", err)
	}
}

// TestTryRedeemVoucherConcurrent はuse_limit=Nのバウチャーに対して
// M>Nの同時引き換えを行い、成功がちょうどN回であることを検証する。
func TestTryRedeemVoucherConcurrent(t *testing.T) {
	mr := miniredis.RunT(t)
	vs := NewVoucherStore(newTestValkeyClient(t, mr))
	ctx := context.Background()

	const useLimit = 10
	const attempts = 25

	now := time.Now().Unix()
	seedVoucher(t, mr, "RACE", useLimit, 0, true, now-3600, now+3600)

	var wg sync.WaitGroup
	results := make(chan bool, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := vs.TryRedeemVoucher(ctx, "RACE", now)
			if err != nil {
				t.Errorf("TryRedeemVoucher failed: %v", err)
				return
			}
			results <- ok
		}()
	}
	wg.Wait()
	close(results)

	succeeded := 0
	for ok := range results {
		if ok {
			succeeded++
		}
	}

	if succeeded != useLimit {
		t.Errorf("succeeded = %d, want %d", succeeded, useLimit)
	}
	if got := mr.HGet(KeyPrefixVoucher+"RACE", "used_count"); got != strconv.Itoa(useLimit) {
		t.Errorf("used_count = %q, want %q", got, strconv.Itoa(useLimit))
	}
}
