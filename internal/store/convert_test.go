package store

import (
	"testing"

	"github.com/melbas/premiumconnect-admin-portal-sub002/internal/model"
)

func TestStructToMap(t *testing.T) {
	p := &model.AccessProfile{
		ID:          "guest",
		Name:        "Guest",
		VlanID:      100,
		MaxUpKbps:   2048,
		MaxDownKbps: 8192,
		QuotaMB:     500,
		QuotaMin:    60,
		IsActive:    true,
	}

	m := StructToMap(p)

	if m["id"] != "guest" {
		t.Errorf("id = %v, want %q", m["id"], "guest")
	}
	if m["vlan_id"] != 100 {
		t.Errorf("vlan_id = %v, want %d", m["vlan_id"], 100)
	}
	if m["quota_mb"] != int64(500) {
		t.Errorf("quota_mb = %v, want %d", m["quota_mb"], 500)
	}
	if m["is_active"] != true {
		t.Errorf("is_active = %v, want true", m["is_active"])
	}
}

func TestMapToStruct(t *testing.T) {
	m := map[string]string{
		"id":            "guest",
		"name":          "Guest",
		"vlan_id":       "100",
		"max_up_kbps":   "2048",
		"max_down_kbps": "8192",
		"quota_mb":      "500",
		"quota_minutes": "60",
		"is_active":     "1",
	}

	var p model.AccessProfile
	if err := MapToStruct(m, &p); err != nil {
		t.Fatalf("MapToStruct failed: %v", err)
	}

	if p.ID != "guest" {
		t.Errorf("ID = %q, want %q", p.ID, "guest")
	}
	if p.VlanID != 100 {
		t.Errorf("VlanID = %d, want %d", p.VlanID, 100)
	}
	if p.QuotaMB != 500 {
		t.Errorf("QuotaMB = %d, want %d", p.QuotaMB, 500)
	}
	if !p.IsActive {
		t.Error("IsActive = false, want true")
	}
}

// TestMapToStructPartial は欠損フィールドがゼロ値のまま残ることを検証する。
func TestMapToStructPartial(t *testing.T) {
	m := map[string]string{
		"id": "guest",
	}

	var p model.AccessProfile
	if err := MapToStruct(m, &p); err != nil {
		t.Fatalf("MapToStruct failed: %v", err)
	}
	if p.ID != "guest" {
		t.Errorf("ID = %q, want %q", p.ID, "guest")
	}
	if p.VlanID != 0 {
		t.Errorf("VlanID = %d, want 0", p.VlanID)
	}
}

func TestMapToStructInvalidInt(t *testing.T) {
	m := map[string]string{
		"vlan_id": "not-a-number",
	}

	var p model.AccessProfile
	if err := MapToStruct(m, &p); err == nil {
		t.Error("expected error for invalid int value")
	}
}

func TestMapToStructRequiresPointer(t *testing.T) {
	var p model.AccessProfile
	if err := MapToStruct(map[string]string{}, p); err == nil {
		t.Error("expected error for non-pointer value")
	}
}
