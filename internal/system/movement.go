// internal/system/movement.go
package system

import (
	"go-waypoint-defense/internal/entity"
	"go-waypoint-defense/internal/level"
)

// MovementSystem ведёт врагов по маршруту и обнаруживает утечки.
type MovementSystem struct {
	ecs              *entity.ECS
	path             *level.Path
	arrivalThreshold float64
}

func NewMovementSystem(ecs *entity.ECS, path *level.Path, arrivalThreshold float64) *MovementSystem {
	return &MovementSystem{ecs: ecs, path: path, arrivalThreshold: arrivalThreshold}
}

// Update advances every live enemy by one tick. An enemy within the arrival
// threshold of its waypoint advances the index without moving; at the final
// waypoint it is queued as leaked instead.
func (s *MovementSystem) Update(deltaTime float64) {
	last := s.path.LastIndex()
	for _, id := range s.ecs.EnemyIDs() {
		if s.ecs.Commands.Pending(id) {
			continue
		}
		pos, hasPos := s.ecs.Positions[id]
		follower, hasPath := s.ecs.PathFollowers[id]
		vel, hasVel := s.ecs.Velocities[id]
		if !hasPos || !hasPath || !hasVel {
			continue
		}

		target := s.path.Point(follower.WaypointIndex)
		current := pos.Vec()
		dist := current.Dist(target)

		if dist <= s.arrivalThreshold {
			if follower.WaypointIndex >= last {
				enemy := s.ecs.Enemies[id]
				s.ecs.Commands.QueueRemoval(id, entity.CauseLeaked, enemy.ContactDamage)
				continue
			}
			follower.WaypointIndex++
			continue
		}

		dir := target.Sub(current).Normalize()
		step := vel.Speed * deltaTime
		if step > dist {
			step = dist // не проскакиваем точку маршрута
		}
		pos.Set(current.Add(dir.Scale(step)))
		vel.Direction = dir
	}
}
