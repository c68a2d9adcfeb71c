// internal/event/types.go
package event

import (
	"go-waypoint-defense/internal/types"
	"go-waypoint-defense/pkg/geom"
)

const (
	EnemySpawned      EventType = "EnemySpawned"      // EntityPayload
	EnemyKilled       EventType = "EnemyKilled"       // EntityPayload, Amount = награда
	EnemyLeaked       EventType = "EnemyLeaked"       // EntityPayload, Amount = урон базе
	ProjectileFired   EventType = "ProjectileFired"   // EntityPayload (Source = башня)
	ProjectileExpired EventType = "ProjectileExpired" // EntityPayload
	TowerPlaced       EventType = "TowerPlaced"       // EntityPayload, Amount = цена
	TowerRemoved      EventType = "TowerRemoved"      // EntityPayload
	TowerUpgraded     EventType = "TowerUpgraded"     // EntityPayload, Amount = цена
	TowerSelected     EventType = "TowerSelected"     // EntityPayload, ID = 0 при снятии выбора
	RoundStarted      EventType = "RoundStarted"      // RoundPayload
	RoundCompleted    EventType = "RoundCompleted"    // RoundPayload
	BaseDestroyed     EventType = "BaseDestroyed"     // RoundPayload
)

// EntityPayload describes the entity an event is about.
type EntityPayload struct {
	ID       types.EntityID
	DefID    string
	Source   types.EntityID
	Position geom.Vec2
	Amount   int
}

// RoundPayload describes the round state an event is about.
type RoundPayload struct {
	Round        int
	TotalEnemies int
	Killed       int
}
