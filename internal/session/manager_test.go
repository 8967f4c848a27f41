package session_test

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/melbas/premiumconnect-admin-portal-sub002/internal/identity"
	"github.com/melbas/premiumconnect-admin-portal-sub002/internal/model"
	"github.com/melbas/premiumconnect-admin-portal-sub002/internal/session"
	"github.com/melbas/premiumconnect-admin-portal-sub002/internal/store"
)

func newTestManager(t *testing.T) (session.Manager, store.SessionStore) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	ss := store.NewSessionStore(store.NewValkeyClientFromRedis(client))
	return session.NewManager(ss), ss
}

func testParams() session.EstablishParams {
	return session.EstablishParams{
		SessionID:       "sess-001",
		MAC:             "AA:BB:CC:11:22:33",
		NasIP:           "192.0.2.10",
		NasPortID:       "ge-0/0/1",
		AttachmentPoint: "ap-lobby-01",
		NetworkName:     "PremiumConnect",
	}
}

func testIdentity() *identity.ResolvedIdentity {
	return &identity.ResolvedIdentity{
		UserID: "alice",
		Profile: &model.AccessProfile{
			ID:       "guest",
			VlanID:   100,
			QuotaMB:  500,
			QuotaMin: 60,
			IsActive: true,
		},
		Usage: &model.UserAccess{ProfileID: "guest", QuotaUsedMB: 100, MinutesUsed: 15},
	}
}

func TestEstablish(t *testing.T) {
	m, ss := newTestManager(t)
	ctx := context.Background()

	sess, remaining, err := m.Establish(ctx, testParams(), testIdentity())
	if err != nil {
		t.Fatalf("Establish failed: %v", err)
	}
	if sess.State != model.SessionStateActive {
		t.Errorf("State = %q, want %q", sess.State, model.SessionStateActive)
	}
	if sess.ProfileID != "guest" {
		t.Errorf("ProfileID = %q, want %q", sess.ProfileID, "guest")
	}
	if sess.VlanID != 100 {
		t.Errorf("VlanID = %d, want %d", sess.VlanID, 100)
	}
	if !remaining.Limited {
		t.Fatal("remaining.Limited = false, want true")
	}
	if remaining.Minutes != 45 {
		t.Errorf("remaining.Minutes = %d, want %d", remaining.Minutes, 45)
	}

	stored, err := ss.Get(ctx, "sess-001")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if stored.UserID != "alice" {
		t.Errorf("stored.UserID = %q, want %q", stored.UserID, "alice")
	}
}

// TestEstablishRetransmission は同一ID・同一MACの再送が既存レコードを
// 返し、2行目を作らないことを検証する。
func TestEstablishRetransmission(t *testing.T) {
	m, _ := newTestManager(t)
	ctx := context.Background()

	first, _, err := m.Establish(ctx, testParams(), testIdentity())
	if err != nil {
		t.Fatalf("Establish failed: %v", err)
	}

	second, _, err := m.Establish(ctx, testParams(), testIdentity())
	if err != nil {
		t.Fatalf("retransmitted Establish failed: %v", err)
	}
	if second.CreatedAt != first.CreatedAt {
		t.Errorf("CreatedAt = %d, want first writer's %d", second.CreatedAt, first.CreatedAt)
	}
}

// TestEstablishDuplicateMAC は同一IDが別MACで使用中の場合に
// ErrDuplicateSessionを返すことを検証する。
func TestEstablishDuplicateMAC(t *testing.T) {
	m, _ := newTestManager(t)
	ctx := context.Background()

	if _, _, err := m.Establish(ctx, testParams(), testIdentity()); err != nil {
		t.Fatalf("Establish failed: %v", err)
	}

	params := testParams()
	params.MAC = "DE:AD:BE:EF:00:01"
	_, _, err := m.Establish(ctx, params, testIdentity())
	if !errors.Is(err, session.ErrDuplicateSession) {
		t.Errorf("err = %v, want ErrDuplicateSession", err)
	}
}

// TestEstablishClosedSessionID はclose済みセッションIDの再利用が
// 重複として拒否されることを検証する（closedからの再開は許可しない）。
func TestEstablishClosedSessionID(t *testing.T) {
	m, ss := newTestManager(t)
	ctx := context.Background()

	if _, _, err := m.Establish(ctx, testParams(), testIdentity()); err != nil {
		t.Fatalf("Establish failed: %v", err)
	}
	if err := ss.Close(ctx, "sess-001", 1700000000); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	_, _, err := m.Establish(ctx, testParams(), testIdentity())
	if !errors.Is(err, session.ErrDuplicateSession) {
		t.Errorf("err = %v, want ErrDuplicateSession for closed session id", err)
	}
}

func TestEstablishAnonymous(t *testing.T) {
	m, ss := newTestManager(t)
	ctx := context.Background()

	res := &identity.ResolvedIdentity{
		Profile: &model.AccessProfile{ID: "premium", VlanID: 200, IsActive: true},
	}

	sess, remaining, err := m.Establish(ctx, testParams(), res)
	if err != nil {
		t.Fatalf("Establish failed: %v", err)
	}
	if sess.UserID != "" {
		t.Errorf("UserID = %q, want empty for anonymous session", sess.UserID)
	}
	if remaining.Limited {
		t.Error("remaining.Limited = true, want false for unlimited profile")
	}

	stored, err := ss.Get(ctx, "sess-001")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if stored.ProfileID != "premium" {
		t.Errorf("stored.ProfileID = %q, want %q", stored.ProfileID, "premium")
	}
}

// TestEstablishAnonymousTimeQuota は匿名フローでもプロファイルの
// 時間クォータ全量が残量になることを検証する。
func TestEstablishAnonymousTimeQuota(t *testing.T) {
	m, _ := newTestManager(t)
	ctx := context.Background()

	res := &identity.ResolvedIdentity{
		Profile: &model.AccessProfile{ID: "daypass", QuotaMin: 1440, IsActive: true},
	}

	_, remaining, err := m.Establish(ctx, testParams(), res)
	if err != nil {
		t.Fatalf("Establish failed: %v", err)
	}
	if !remaining.Limited {
		t.Fatal("remaining.Limited = false, want true")
	}
	if remaining.Minutes != 1440 {
		t.Errorf("remaining.Minutes = %d, want %d", remaining.Minutes, 1440)
	}
}
