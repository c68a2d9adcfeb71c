// internal/component/tower.go
package component

import (
	"go-waypoint-defense/internal/defs"
	"go-waypoint-defense/pkg/geom"
)

// TowerState — стадия жизненного цикла башни.
type TowerState int

const (
	TowerPending TowerState = iota // следует за курсором, не оплачена
	TowerActive                    // оплачена, неподвижна, стреляет
	TowerRemoved                   // терминальное состояние
)

func (s TowerState) String() string {
	switch s {
	case TowerPending:
		return "pending"
	case TowerActive:
		return "active"
	case TowerRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

type Tower struct {
	DefID string
	Kind  defs.TowerKind
	State TowerState
	Cost  int

	Range        float64
	FireInterval float64
	Damage       int
	Directions   int // только для directional

	ProjectileSpeed    float64
	ProjectileLifetime float64
	ProjectileBox      defs.Size
	Footprint          defs.Size

	FireTimer Timer
	Aim       geom.Vec2 // текущее направление ствола
	Angle     float64

	Level      int
	IsSelected bool
	ShowRange  bool // превью радиуса при установке
	Blocked    bool // курсор в запретной зоне
}

// Bounds returns the tower footprint centred on p.
func (t *Tower) Bounds(p *Position) geom.Rect {
	return geom.RectAt(p.Vec(), t.Footprint.W, t.Footprint.H)
}
