package system

import (
	"testing"

	"go-waypoint-defense/internal/component"
	"go-waypoint-defense/internal/defs"
	"go-waypoint-defense/internal/entity"
	"go-waypoint-defense/internal/level"
	"go-waypoint-defense/internal/types"
	"go-waypoint-defense/pkg/geom"
)

func mustPath(t *testing.T, points ...geom.Vec2) *level.Path {
	t.Helper()
	p, err := level.NewPath(points)
	if err != nil {
		t.Fatalf("NewPath: %v", err)
	}
	return p
}

func mustLibrary(t *testing.T) *defs.Library {
	t.Helper()
	lib, err := defs.Default()
	if err != nil {
		t.Fatalf("defs.Default: %v", err)
	}
	return lib
}

type enemySpec struct {
	pos      geom.Vec2
	speed    float64
	health   int
	reward   int
	contact  int
	waypoint int
}

func addEnemy(ecs *entity.ECS, s enemySpec) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: s.pos.X, Y: s.pos.Y}
	ecs.Velocities[id] = &component.Velocity{Speed: s.speed}
	ecs.PathFollowers[id] = &component.PathFollower{WaypointIndex: s.waypoint}
	ecs.Healths[id] = component.NewHealth(s.health)
	ecs.Colliders[id] = &component.Collider{Width: 32, Height: 32}
	ecs.Enemies[id] = &component.Enemy{DefID: "grunt", ContactDamage: s.contact, KillReward: s.reward}
	return id
}

func addProjectile(ecs *entity.ECS, at, dir geom.Vec2, speed float64, damage int, lifetime float64) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: at.X, Y: at.Y}
	ecs.Projectiles[id] = &component.Projectile{
		Origin:    at,
		Direction: dir,
		Speed:     speed,
		Damage:    damage,
		Lifetime:  lifetime,
	}
	ecs.Colliders[id] = &component.Collider{Width: 24, Height: 4}
	return id
}

func removalsByID(res entity.FlushResult) map[types.EntityID]entity.Removal {
	out := make(map[types.EntityID]entity.Removal, len(res.Removed))
	for _, r := range res.Removed {
		out[r.ID] = r
	}
	return out
}
