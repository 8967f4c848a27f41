package store

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
)

func TestFindUserByID(t *testing.T) {
	mr := miniredis.RunT(t)
	us := NewUserStore(newTestValkeyClient(t, mr))
	ctx := context.Background()

	mr.HSet(KeyPrefixUser+"alice@example.com",
		"id", "alice@example.com",
		"email", "alice@example.com",
		"mac", "AA:BB:CC:11:22:33",
		"created_at", "1700000000",
	)

	u, err := us.FindUserByID(ctx, "alice@example.com")
	if err != nil {
		t.Fatalf("FindUserByID failed: %v", err)
	}
	if u.ID != "alice@example.com" {
		t.Errorf("ID = %q, want %q", u.ID, "alice@example.com")
	}
	if u.MAC != "AA:BB:CC:11:22:33" {
		t.Errorf("MAC = %q, want %q", u.MAC, "AA:BB:CC:11:22:33")
	}
	if u.CreatedAt != 1700000000 {
		t.Errorf("CreatedAt = %d, want %d", u.CreatedAt, 1700000000)
	}
}

func TestFindUserByIDNotFound(t *testing.T) {
	mr := miniredis.RunT(t)
	us := NewUserStore(newTestValkeyClient(t, mr))

	_, err := us.FindUserByID(context.Background(), "nobody")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestFindUserByMAC(t *testing.T) {
	mr := miniredis.RunT(t)
	us := NewUserStore(newTestValkeyClient(t, mr))
	ctx := context.Background()

	mr.HSet(KeyPrefixUser+"bob@example.com", "id", "bob@example.com")
	mr.Set(KeyPrefixMACIndex+"DE:AD:BE:EF:00:01", "bob@example.com")

	u, err := us.FindUserByMAC(ctx, "DE:AD:BE:EF:00:01")
	if err != nil {
		t.Fatalf("FindUserByMAC failed: %v", err)
	}
	if u.ID != "bob@example.com" {
		t.Errorf("ID = %q, want %q", u.ID, "bob@example.com")
	}
}

func TestFindUserByMACNotFound(t *testing.T) {
	mr := miniredis.RunT(t)
	us := NewUserStore(newTestValkeyClient(t, mr))

	_, err := us.FindUserByMAC(context.Background(), "00:00:00:00:00:00")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestTouchLastSeen(t *testing.T) {
	mr := miniredis.RunT(t)
	us := NewUserStore(newTestValkeyClient(t, mr))
	ctx := context.Background()

	mr.HSet(KeyPrefixUser+"alice", "id", "alice")

	now := time.Now().Unix()
	if err := us.TouchLastSeen(ctx, "alice", now); err != nil {
		t.Fatalf("TouchLastSeen failed: %v", err)
	}

	u, err := us.FindUserByID(ctx, "alice")
	if err != nil {
		t.Fatalf("FindUserByID failed: %v", err)
	}
	if u.LastSeenAt != now {
		t.Errorf("LastSeenAt = %d, want %d", u.LastSeenAt, now)
	}
}

func TestCreateUserAccessIfAbsent(t *testing.T) {
	mr := miniredis.RunT(t)
	us := NewUserStore(newTestValkeyClient(t, mr))
	ctx := context.Background()

	ua, err := us.CreateUserAccessIfAbsent(ctx, "alice", "guest")
	if err != nil {
		t.Fatalf("CreateUserAccessIfAbsent failed: %v", err)
	}
	if ua.ProfileID != "guest" {
		t.Errorf("ProfileID = %q, want %q", ua.ProfileID, "guest")
	}
	if ua.QuotaUsedMB != 0 || ua.MinutesUsed != 0 {
		t.Errorf("counters = %d/%d, want 0/0", ua.QuotaUsedMB, ua.MinutesUsed)
	}
}

// TestCreateUserAccessIfAbsentPreservesCounters は既存カウンターが
// 再プロビジョニングで巻き戻らないことを検証する。
func TestCreateUserAccessIfAbsentPreservesCounters(t *testing.T) {
	mr := miniredis.RunT(t)
	us := NewUserStore(newTestValkeyClient(t, mr))
	ctx := context.Background()

	mr.HSet(KeyPrefixUsage+"alice",
		"profile_id", "premium",
		"quota_used_mb", "512",
		"minutes_used", "90",
	)

	ua, err := us.CreateUserAccessIfAbsent(ctx, "alice", "guest")
	if err != nil {
		t.Fatalf("CreateUserAccessIfAbsent failed: %v", err)
	}
	if ua.ProfileID != "premium" {
		t.Errorf("ProfileID = %q, want existing %q", ua.ProfileID, "premium")
	}
	if ua.QuotaUsedMB != 512 {
		t.Errorf("QuotaUsedMB = %d, want existing %d", ua.QuotaUsedMB, 512)
	}
	if ua.MinutesUsed != 90 {
		t.Errorf("MinutesUsed = %d, want existing %d", ua.MinutesUsed, 90)
	}
}

func TestCreateUserAccessIfAbsentConcurrent(t *testing.T) {
	mr := miniredis.RunT(t)
	us := NewUserStore(newTestValkeyClient(t, mr))
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := us.CreateUserAccessIfAbsent(ctx, "alice", "guest"); err != nil {
				t.Errorf("CreateUserAccessIfAbsent failed: %v", err)
			}
		}()
	}
	wg.Wait()

	ua, err := us.FindUserAccess(ctx, "alice")
	if err != nil {
		t.Fatalf("FindUserAccess failed: %v", err)
	}
	if ua.ProfileID != "guest" {
		t.Errorf("ProfileID = %q, want %q", ua.ProfileID, "guest")
	}
	if ua.QuotaUsedMB != 0 || ua.MinutesUsed != 0 {
		t.Errorf("counters = %d/%d, want 0/0", ua.QuotaUsedMB, ua.MinutesUsed)
	}
}

func TestIncrementUsage(t *testing.T) {
	mr := miniredis.RunT(t)
	us := NewUserStore(newTestValkeyClient(t, mr))
	ctx := context.Background()

	mr.HSet(KeyPrefixUsage+"alice",
		"profile_id", "guest",
		"quota_used_mb", "100",
		"minutes_used", "30",
	)

	if err := us.IncrementUsage(ctx, "alice", 50, 10); err != nil {
		t.Fatalf("IncrementUsage failed: %v", err)
	}

	ua, err := us.FindUserAccess(ctx, "alice")
	if err != nil {
		t.Fatalf("FindUserAccess failed: %v", err)
	}
	if ua.QuotaUsedMB != 150 {
		t.Errorf("QuotaUsedMB = %d, want %d", ua.QuotaUsedMB, 150)
	}
	if ua.MinutesUsed != 40 {
		t.Errorf("MinutesUsed = %d, want %d", ua.MinutesUsed, 40)
	}
}

func TestIncrementUsageRejectsNegative(t *testing.T) {
	mr := miniredis.RunT(t)
	us := NewUserStore(newTestValkeyClient(t, mr))
	ctx := context.Background()

	if err := us.IncrementUsage(ctx, "alice", -1, 0); !errors.Is(err, ErrNegativeIncrement) {
		t.Errorf("err = %v, want ErrNegativeIncrement", err)
	}
	if err := us.IncrementUsage(ctx, "alice", 0, -1); !errors.Is(err, ErrNegativeIncrement) {
		t.Errorf("err = %v, want ErrNegativeIncrement", err)
	}
}

// TestIncrementUsageConcurrent は並行加算でカウンターが取りこぼしなく
// 単調増加することを検証する。
func TestIncrementUsageConcurrent(t *testing.T) {
	mr := miniredis.RunT(t)
	us := NewUserStore(newTestValkeyClient(t, mr))
	ctx := context.Background()

	mr.HSet(KeyPrefixUsage+"alice",
		"profile_id", "guest",
		"quota_used_mb", "0",
		"minutes_used", "0",
	)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := us.IncrementUsage(ctx, "alice", 5, 1); err != nil {
				t.Errorf("IncrementUsage failed: %v", err)
			}
		}()
	}
	wg.Wait()

	ua, err := us.FindUserAccess(ctx, "alice")
	if err != nil {
		t.Fatalf("FindUserAccess failed: %v", err)
	}
	if ua.QuotaUsedMB != 100 {
		t.Errorf("QuotaUsedMB = %d, want %d", ua.QuotaUsedMB, 100)
	}
	if ua.MinutesUsed != 20 {
		t.Errorf("MinutesUsed = %d, want %d", ua.MinutesUsed, 20)
	}
}
