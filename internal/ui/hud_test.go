package ui

import (
	"strings"
	"testing"

	"go-waypoint-defense/internal/app"
	"go-waypoint-defense/internal/config"
	"go-waypoint-defense/internal/defs"
)

func newTestHUD(t *testing.T) *HUD {
	t.Helper()
	lib, err := defs.Default()
	if err != nil {
		t.Fatalf("defs.Default: %v", err)
	}
	return NewHUD(lib)
}

func TestToRoman(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, ""},
		{1, "I"},
		{4, "IV"},
		{9, "IX"},
		{14, "XIV"},
		{40, "XL"},
		{1994, "MCMXCIV"},
	}
	for _, tt := range tests {
		if got := toRoman(tt.in); got != tt.want {
			t.Errorf("toRoman(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestHUDLayout(t *testing.T) {
	h := newTestHUD(t)

	want := []Action{ActionPlaceTower, ActionPlaceTower, ActionPlaceTower, ActionUpgrade, ActionNewRound, ActionToggleAuto, ActionPause}
	if len(h.Buttons) != len(want) {
		t.Fatalf("Expected %d buttons, got %d", len(want), len(h.Buttons))
	}
	for i, b := range h.Buttons {
		if b.Action != want[i] {
			t.Errorf("Button %d: expected action %d, got %d", i, want[i], b.Action)
		}
		if !h.Contains(b.Rect.Center()) {
			t.Errorf("Button %d lies outside the panel", i)
		}
		if b.Rect.X+b.Rect.W > config.ScreenWidth {
			t.Errorf("Button %d runs off screen", i)
		}
	}
	if h.Buttons[0].DefID != "basic" || h.Buttons[0].Text != "1 Basic 50" {
		t.Errorf("Unexpected first button %q (%s)", h.Buttons[0].Text, h.Buttons[0].DefID)
	}
}

func TestHUDClick(t *testing.T) {
	h := newTestHUD(t)
	fan := h.Buttons[2]

	b, ok := h.Click(fan.Rect.Center())
	if !ok || b != fan {
		t.Fatalf("Expected the fan button, got %+v", b)
	}
	if b.LastClickTime.IsZero() {
		t.Error("Expected click time recorded")
	}

	if _, ok := h.Click(h.Bounds.Min()); ok {
		t.Error("Click on the panel edge should hit no button")
	}

	h.Buttons[3].Disabled = true
	if _, ok := h.Click(h.Buttons[3].Rect.Center()); ok {
		t.Error("Disabled button must swallow the click")
	}
}

func TestHUDUpdateButtonStates(t *testing.T) {
	h := newTestHUD(t)

	h.Update(0, app.Status{Pending: "sniper", RoundCompleted: true})
	for _, b := range h.Buttons {
		switch b.Action {
		case ActionPlaceTower:
			if b.Active != (b.DefID == "sniper") {
				t.Errorf("%s: unexpected Active %t", b.DefID, b.Active)
			}
		case ActionUpgrade:
			if !b.Disabled {
				t.Error("Upgrade must be disabled without a selection")
			}
		case ActionNewRound:
			if b.Disabled {
				t.Error("New round must be enabled between rounds")
			}
		}
	}

	h.Update(0, app.Status{AutoAdvance: true, Selected: &app.TowerInfo{CanUpgrade: true}})
	for _, b := range h.Buttons {
		switch b.Action {
		case ActionUpgrade:
			if b.Disabled {
				t.Error("Upgrade must be enabled for an affordable selection")
			}
		case ActionNewRound:
			if !b.Disabled {
				t.Error("New round must be disabled with auto-advance on")
			}
		case ActionToggleAuto:
			if !b.Active {
				t.Error("Auto button must be highlighted")
			}
		}
	}
}

func TestFlashExpires(t *testing.T) {
	h := newTestHUD(t)
	h.Flash("need %d coins", 50)

	if got := h.FlashText(); got != "need 50 coins" {
		t.Errorf("Expected flash text, got %q", got)
	}
	h.Update(1.5, app.Status{})
	if h.FlashText() == "" {
		t.Error("Flash gone too early")
	}
	h.Update(0.6, app.Status{})
	if got := h.FlashText(); got != "" {
		t.Errorf("Expected flash expired, got %q", got)
	}
}

func TestStatusLine(t *testing.T) {
	line := StatusLine(app.Status{Round: 4, Coins: 75, BaseHealth: 18, BaseHealthMax: 20,
		EnemiesKilled: 2, EnemiesSpawned: 5, TotalEnemies: 14, AutoAdvance: true})
	for _, want := range []string{"Round IV (running)", "Enemies 2/5/14", "Coins 75", "Base 18/20", "Auto on"} {
		if !strings.Contains(line, want) {
			t.Errorf("Status line %q lacks %q", line, want)
		}
	}

	if line := StatusLine(app.Status{RoundCompleted: true}); !strings.Contains(line, "Round - (idle)") {
		t.Errorf("Unexpected idle line %q", line)
	}
}
