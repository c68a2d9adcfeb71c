// internal/component/projectile.go
package component

import (
	"go-waypoint-defense/internal/types"
	"go-waypoint-defense/pkg/geom"
)

// Projectile представляет летящий снаряд.
// Direction фиксируется при выстреле и больше не меняется.
type Projectile struct {
	Source    types.EntityID
	Origin    geom.Vec2
	Direction geom.Vec2
	Speed     float64
	Damage    int
	Lifetime  float64
	Age       Timer
	Consumed  bool
}
