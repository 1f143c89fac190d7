package model

import "testing"

func TestDefaultAppConfigMatchesDefaultRoom(t *testing.T) {
	cfg := DefaultAppConfig()
	room := DefaultRoom()

	if cfg.DefaultRoom != room {
		t.Errorf("DefaultRoom mismatch: config=%+v room=%+v", cfg.DefaultRoom, room)
	}
	if cfg.HistoryDepth != 50 {
		t.Errorf("expected HistoryDepth=50, got %d", cfg.HistoryDepth)
	}
	if cfg.Theme != "system" {
		t.Errorf("expected default theme=system, got %s", cfg.Theme)
	}
	if cfg.RecentLayouts == nil {
		t.Error("RecentLayouts should not be nil")
	}
}

func TestNormalizeFillsDefaults(t *testing.T) {
	cfg := AppConfig{DefaultRoom: RoomDimensions{Width: 0, Length: 4, Height: 2}}
	cfg.Normalize()

	if cfg.DefaultRoom != DefaultRoom() {
		t.Errorf("expected invalid room to be replaced, got %+v", cfg.DefaultRoom)
	}
	if cfg.HistoryDepth != 50 {
		t.Errorf("expected HistoryDepth=50, got %d", cfg.HistoryDepth)
	}
	if cfg.RecentLayouts == nil {
		t.Error("RecentLayouts should not be nil after Normalize")
	}
	if cfg.Theme != "system" {
		t.Errorf("expected theme=system, got %s", cfg.Theme)
	}
}

func TestNormalizeKeepsValidRoom(t *testing.T) {
	cfg := AppConfig{DefaultRoom: RoomDimensions{Width: 5, Length: 6, Height: 2.7}, HistoryDepth: 10, Theme: "dark"}
	cfg.Normalize()

	if cfg.DefaultRoom.Width != 5 || cfg.DefaultRoom.Length != 6 {
		t.Errorf("valid room should be kept, got %+v", cfg.DefaultRoom)
	}
	if cfg.HistoryDepth != 10 {
		t.Errorf("expected HistoryDepth=10, got %d", cfg.HistoryDepth)
	}
	if cfg.Theme != "dark" {
		t.Errorf("expected theme=dark, got %s", cfg.Theme)
	}
}

func TestAddRecentLayout(t *testing.T) {
	cfg := DefaultAppConfig()
	cfg.AddRecentLayout("/a.json")
	cfg.AddRecentLayout("/b.json")
	cfg.AddRecentLayout("/a.json")

	if len(cfg.RecentLayouts) != 2 {
		t.Fatalf("expected 2 recent layouts, got %d", len(cfg.RecentLayouts))
	}
	if cfg.RecentLayouts[0] != "/a.json" || cfg.RecentLayouts[1] != "/b.json" {
		t.Errorf("unexpected order: %v", cfg.RecentLayouts)
	}
}

func TestAddRecentLayoutCapsLength(t *testing.T) {
	cfg := DefaultAppConfig()
	for i := 0; i < 15; i++ {
		cfg.AddRecentLayout(string(rune('a'+i)) + ".json")
	}
	if len(cfg.RecentLayouts) != 10 {
		t.Errorf("expected 10 recent layouts, got %d", len(cfg.RecentLayouts))
	}
	if cfg.RecentLayouts[0] != "o.json" {
		t.Errorf("expected newest first, got %s", cfg.RecentLayouts[0])
	}
}
