// internal/app/commands.go
package app

import (
	"go-waypoint-defense/internal/component"
	"go-waypoint-defense/internal/interfaces"
	"go-waypoint-defense/internal/types"
)

var _ interfaces.Commands = (*Game)(nil)

// StartNewRound is the UI command "start new round".
func (g *Game) StartNewRound() error {
	if g.gameOver {
		return ErrGameOver
	}
	return g.WaveSystem.StartRound()
}

// PlaceTower is the UI command "place tower of archetype X". The tower
// appears Pending under the last known pointer and is paid for when the
// placement is confirmed.
func (g *Game) PlaceTower(defID string) (types.EntityID, error) {
	if g.gameOver {
		return 0, ErrGameOver
	}
	return g.TowerSystem.BeginPlacement(defID, g.pointer)
}

// UpgradeSelected is the UI command "upgrade selected tower".
func (g *Game) UpgradeSelected() error {
	if g.gameOver {
		return ErrGameOver
	}
	return g.TowerSystem.UpgradeSelected()
}

func (g *Game) SetAutoAdvance(on bool) { g.WaveSystem.SetAutoAdvance(on) }

func (g *Game) AutoAdvance() bool { return g.WaveSystem.Wave().AutoAdvance }

// TowerInfo summarises a tower for the HUD.
type TowerInfo struct {
	ID           types.EntityID
	DefID        string
	Level        int
	Range        float64
	FireInterval float64
	Damage       int
	UpgradeCost  int
	CanUpgrade   bool
}

// Status is the UI surface read by the HUD each frame.
type Status struct {
	SessionID      string
	Round          int
	Coins          int
	RoundCompleted bool
	AutoAdvance    bool
	BaseHealth     int
	BaseHealthMax  int
	EnemiesSpawned int
	EnemiesKilled  int
	TotalEnemies   int
	GameOver       bool
	GameTime       float64
	Pending        string // архетип башни в режиме установки
	Selected       *TowerInfo
}

func (g *Game) Status() Status {
	w := g.WaveSystem.Wave()
	st := Status{
		SessionID:      g.SessionID,
		Round:          w.Round,
		Coins:          g.Economy.Balance(),
		RoundCompleted: w.Completed,
		AutoAdvance:    w.AutoAdvance,
		BaseHealth:     g.BaseHealth.Current,
		BaseHealthMax:  g.BaseHealth.Max,
		EnemiesSpawned: w.EnemiesSpawned,
		EnemiesKilled:  w.EnemiesKilled,
		TotalEnemies:   w.TotalEnemies,
		GameOver:       g.gameOver,
		GameTime:       g.gameTime,
	}
	if t, ok := g.ECS.Towers[g.TowerSystem.Pending()]; ok {
		st.Pending = t.DefID
	}
	if id := g.TowerSystem.Selected(); id != 0 {
		if t, ok := g.ECS.Towers[id]; ok && t.State == component.TowerActive {
			st.Selected = &TowerInfo{
				ID:           id,
				DefID:        t.DefID,
				Level:        t.Level,
				Range:        t.Range,
				FireInterval: t.FireInterval,
				Damage:       t.Damage,
				UpgradeCost:  g.Rules.Upgrade.Cost,
				CanUpgrade:   g.Economy.CanAfford(g.Rules.Upgrade.Cost),
			}
		}
	}
	return st
}
