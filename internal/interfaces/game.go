// internal/interfaces/game.go
package interfaces

import "go-waypoint-defense/internal/types"

// Commands — команды, которые UI может отдать игровой сессии.
// Каждая команда проверяется и либо применяется, либо возвращает ошибку.
type Commands interface {
	PlaceTower(defID string) (types.EntityID, error)
	UpgradeSelected() error
	StartNewRound() error
	SetAutoAdvance(on bool)
	AutoAdvance() bool
}
