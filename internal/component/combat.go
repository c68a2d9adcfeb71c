// internal/component/combat.go
package component

import "go-waypoint-defense/pkg/geom"

// Health — пул здоровья. Current может уйти в минус при перебитом уроне.
type Health struct {
	Current int
	Max     int
}

func NewHealth(max int) *Health {
	return &Health{Current: max, Max: max}
}

// Damage вычитает урон и возвращает остаток.
func (h *Health) Damage(amount int) int {
	h.Current -= amount
	return h.Current
}

func (h *Health) Depleted() bool { return h.Current <= 0 }

// Ratio returns the remaining share of health clamped to [0, 1].
func (h *Health) Ratio() float64 {
	if h.Max <= 0 || h.Current <= 0 {
		return 0
	}
	if h.Current >= h.Max {
		return 1
	}
	return float64(h.Current) / float64(h.Max)
}

// Collider — размеры AABB, выровненного по центру сущности
type Collider struct {
	Width, Height float64
}

func (c Collider) Bounds(p *Position) geom.Rect {
	return geom.RectAt(p.Vec(), c.Width, c.Height)
}
