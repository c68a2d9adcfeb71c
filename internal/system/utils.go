// internal/system/utils.go
package system

import (
	"go-waypoint-defense/internal/entity"
	"go-waypoint-defense/internal/types"
)

// ApplyDamage наносит урон сущности на месте и сообщает, исчерпано ли здоровье.
// Удаление не выполняется: за него отвечает буфер команд.
func ApplyDamage(ecs *entity.ECS, entityID types.EntityID, damage int) (remaining int, depleted bool) {
	health, ok := ecs.Healths[entityID]
	if !ok {
		return 0, false
	}
	if damage < 0 {
		damage = 0
	}
	remaining = health.Damage(damage)
	return remaining, health.Depleted()
}
