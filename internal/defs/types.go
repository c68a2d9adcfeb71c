// internal/defs/types.go
package defs

import "fmt"

// TowerKind selects how a tower fires.
type TowerKind string

const (
	TowerStandard    TowerKind = "standard"    // one projectile toward the target
	TowerDirectional TowerKind = "directional" // a fixed fan of compass directions
)

func (k TowerKind) Valid() bool {
	return k == TowerStandard || k == TowerDirectional
}

// Size is a width/height pair in world units.
type Size struct {
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

func (s Size) IsZero() bool { return s.W == 0 && s.H == 0 }

func (s Size) validate(what string) error {
	if s.W <= 0 || s.H <= 0 {
		return fmt.Errorf("%s must be positive, got %gx%g", what, s.W, s.H)
	}
	return nil
}

var (
	DefaultEnemyBox       = Size{W: 32, H: 32}
	DefaultTowerFootprint = Size{W: 32, H: 32}
	DefaultProjectileBox  = Size{W: 24, H: 4}
)
