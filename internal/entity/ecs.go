// internal/entity/ecs.go
package entity

import (
	"slices"

	"go-waypoint-defense/internal/component"
	"go-waypoint-defense/internal/types"
)

type ECS struct {
	GameTime      float64
	NextID        types.EntityID
	Positions     map[types.EntityID]*component.Position
	Velocities    map[types.EntityID]*component.Velocity
	PathFollowers map[types.EntityID]*component.PathFollower
	Healths       map[types.EntityID]*component.Health
	Colliders     map[types.EntityID]*component.Collider
	Enemies       map[types.EntityID]*component.Enemy
	Towers        map[types.EntityID]*component.Tower
	Projectiles   map[types.EntityID]*component.Projectile
	Commands      *CommandBuffer
}

func NewECS() *ECS {
	return &ECS{
		NextID:        1,
		Positions:     make(map[types.EntityID]*component.Position),
		Velocities:    make(map[types.EntityID]*component.Velocity),
		PathFollowers: make(map[types.EntityID]*component.PathFollower),
		Healths:       make(map[types.EntityID]*component.Health),
		Colliders:     make(map[types.EntityID]*component.Collider),
		Enemies:       make(map[types.EntityID]*component.Enemy),
		Towers:        make(map[types.EntityID]*component.Tower),
		Projectiles:   make(map[types.EntityID]*component.Projectile),
		Commands:      NewCommandBuffer(),
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// Exists reports whether the entity still has a position.
func (ecs *ECS) Exists(id types.EntityID) bool {
	_, ok := ecs.Positions[id]
	return ok
}

// Remove удаляет все компоненты сущности немедленно.
// Внутри тика используйте Commands.QueueRemoval.
func (ecs *ECS) Remove(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Velocities, id)
	delete(ecs.PathFollowers, id)
	delete(ecs.Healths, id)
	delete(ecs.Colliders, id)
	delete(ecs.Enemies, id)
	delete(ecs.Towers, id)
	delete(ecs.Projectiles, id)
}

// Стабильный порядок обхода: карты Go итерируются случайно.

func (ecs *ECS) EnemyIDs() []types.EntityID { return sortedKeys(ecs.Enemies) }

func (ecs *ECS) TowerIDs() []types.EntityID { return sortedKeys(ecs.Towers) }

func (ecs *ECS) ProjectileIDs() []types.EntityID { return sortedKeys(ecs.Projectiles) }

func sortedKeys[V any](m map[types.EntityID]V) []types.EntityID {
	var keys []types.EntityID
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// FlushResult reports what a Flush applied.
type FlushResult struct {
	Removed []Removal
	Spawned []types.EntityID
	Reward  int
}

// Flush applies queued intents once: removals first, then spawns.
// Removals of entities that no longer exist are dropped.
func (ecs *ECS) Flush() FlushResult {
	cb := ecs.Commands
	result := FlushResult{Reward: cb.reward}
	for _, r := range cb.removals {
		if !ecs.Exists(r.ID) {
			continue
		}
		ecs.Remove(r.ID)
		result.Removed = append(result.Removed, r)
	}
	for _, spawn := range cb.spawns {
		result.Spawned = append(result.Spawned, spawn(ecs))
	}
	cb.reset()
	return result
}
