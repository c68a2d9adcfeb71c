package component

import (
	"testing"

	"go-waypoint-defense/pkg/geom"
)

func TestHealth(t *testing.T) {
	h := NewHealth(30)
	if h.Ratio() != 1 || h.Depleted() {
		t.Fatalf("Fresh health: %+v", h)
	}
	if left := h.Damage(20); left != 10 {
		t.Errorf("Expected 10 left, got %d", left)
	}
	if r := h.Ratio(); r < 0.333 || r > 0.334 {
		t.Errorf("Expected ratio 1/3, got %f", r)
	}
	h.Damage(25)
	if !h.Depleted() || h.Current != -15 || h.Ratio() != 0 {
		t.Errorf("Expected overkill to deplete, got %+v", h)
	}
}

func TestTimer(t *testing.T) {
	var tm Timer
	tm.Add(0.5)
	tm.Add(0.5)
	if !tm.Reached(1.0) || tm.Reached(1.01) {
		t.Errorf("Unexpected Reached at %f", tm.Elapsed)
	}
	tm.Reset()
	if tm.Elapsed != 0 {
		t.Errorf("Expected reset, got %f", tm.Elapsed)
	}
}

func TestWaveRunning(t *testing.T) {
	w := Wave{Completed: true}
	if w.Running() {
		t.Error("Completed wave is not running")
	}
	w.Completed = false
	if !w.Running() {
		t.Error("Incomplete wave is running")
	}
}

func TestBounds(t *testing.T) {
	pos := &Position{X: 100, Y: 50}
	if got := (Collider{Width: 20, Height: 10}).Bounds(pos); got != (geom.Rect{X: 90, Y: 45, W: 20, H: 10}) {
		t.Errorf("Collider bounds: got %+v", got)
	}
	tower := &Tower{}
	tower.Footprint.W, tower.Footprint.H = 32, 32
	if got := tower.Bounds(pos); got.Center() != pos.Vec() || got.W != 32 {
		t.Errorf("Tower bounds: got %+v", got)
	}
	if TowerPending.String() != "pending" || TowerRemoved.String() != "removed" {
		t.Error("Unexpected tower state names")
	}
}
