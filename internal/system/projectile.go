// internal/system/projectile.go
package system

import (
	"go-waypoint-defense/internal/entity"
)

// ProjectileSystem двигает снаряды по прямой и списывает истёкшие.
type ProjectileSystem struct {
	ecs *entity.ECS
}

func NewProjectileSystem(ecs *entity.ECS) *ProjectileSystem {
	return &ProjectileSystem{ecs: ecs}
}

func (s *ProjectileSystem) Update(deltaTime float64) {
	for _, id := range s.ecs.ProjectileIDs() {
		if s.ecs.Commands.Pending(id) {
			continue
		}
		proj := s.ecs.Projectiles[id]
		pos, ok := s.ecs.Positions[id]
		if !ok {
			continue
		}
		proj.Age.Add(deltaTime)
		// Позиция зависит только от точки выстрела, направления и возраста.
		pos.Set(proj.Origin.Add(proj.Direction.Scale(proj.Speed * proj.Age.Elapsed)))
		if proj.Age.Reached(proj.Lifetime) {
			s.ecs.Commands.QueueRemoval(id, entity.CauseExpired, 0)
		}
	}
}
