// internal/system/collision.go
package system

import (
	"go-waypoint-defense/internal/entity"
)

// CollisionSystem сопоставляет снаряды с врагами по AABB, наносит урон и
// ставит в очередь награды и удаления.
type CollisionSystem struct {
	ecs       *entity.ECS
	hitReward int
}

func NewCollisionSystem(ecs *entity.ECS, hitReward int) *CollisionSystem {
	return &CollisionSystem{ecs: ecs, hitReward: hitReward}
}

// Update scans projectiles (outer) against enemies (inner), both in ascending
// ID order. A projectile scores at most one hit.
func (s *CollisionSystem) Update(deltaTime float64) {
	projectiles := s.ecs.ProjectileIDs()
	enemies := s.ecs.EnemyIDs()
	cmds := s.ecs.Commands

	for _, projID := range projectiles {
		proj := s.ecs.Projectiles[projID]
		if proj.Consumed || cmds.Pending(projID) {
			continue
		}
		projPos, ok := s.ecs.Positions[projID]
		projCol, hasCol := s.ecs.Colliders[projID]
		if !ok || !hasCol {
			continue
		}
		projBox := projCol.Bounds(projPos)

		for _, enemyID := range enemies {
			if cmds.Pending(enemyID) {
				continue
			}
			enemyPos, ok := s.ecs.Positions[enemyID]
			col, hasCol := s.ecs.Colliders[enemyID]
			if !ok || !hasCol {
				continue
			}
			if !projBox.Overlaps(col.Bounds(enemyPos)) {
				continue
			}

			proj.Consumed = true
			cmds.QueueRemoval(projID, entity.CauseConsumed, 0)

			if _, depleted := ApplyDamage(s.ecs, enemyID, proj.Damage); depleted {
				reward := 0
				if enemy, ok := s.ecs.Enemies[enemyID]; ok {
					reward = enemy.KillReward
				}
				cmds.QueueRemoval(enemyID, entity.CauseKilled, reward)
			} else {
				cmds.QueueReward(s.hitReward)
			}
			break // один снаряд — одно попадание
		}
	}
}
