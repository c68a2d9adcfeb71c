// internal/app/game.go
package app

import (
	"errors"
	"fmt"
	"math"

	"go-waypoint-defense/internal/component"
	"go-waypoint-defense/internal/config"
	"go-waypoint-defense/internal/defs"
	"go-waypoint-defense/internal/economy"
	"go-waypoint-defense/internal/entity"
	"go-waypoint-defense/internal/event"
	"go-waypoint-defense/internal/input"
	"go-waypoint-defense/internal/level"
	"go-waypoint-defense/internal/logger"
	"go-waypoint-defense/internal/system"
	"go-waypoint-defense/internal/types"
	"go-waypoint-defense/internal/utils"
	"go-waypoint-defense/pkg/geom"

	"github.com/google/uuid"
)

var (
	// ErrGameOver is returned by UI commands once the base is destroyed.
	ErrGameOver = errors.New("game over")
	// ErrMissingLevel is returned by NewGame without level geometry.
	ErrMissingLevel = errors.New("level geometry is required")
	// ErrMissingLibrary is returned by NewGame without archetype tables.
	ErrMissingLibrary = errors.New("archetype library is required")
)

// Game holds the main game state and logic.
type Game struct {
	SessionID       string
	Level           *level.Level
	Library         *defs.Library
	Rules           config.Rules
	ECS             *entity.ECS
	Economy         *economy.Economy
	BaseHealth      *component.Health
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService

	MovementSystem   *system.MovementSystem
	TowerSystem      *system.TowerSystem
	ProjectileSystem *system.ProjectileSystem
	CollisionSystem  *system.CollisionSystem
	WaveSystem       *system.WaveSystem

	// Game state
	gameTime  float64
	gameOver  bool
	pointer   geom.Vec2
	despawned []types.EntityID
}

// NewGame initializes a new game instance. It refuses to build a game
// without valid geometry, archetypes and rules.
func NewGame(lvl *level.Level, library *defs.Library, rules config.Rules) (*Game, error) {
	if lvl == nil || lvl.Path == nil || lvl.Path.Len() < 2 {
		return nil, ErrMissingLevel
	}
	if library == nil {
		return nil, ErrMissingLibrary
	}
	if err := rules.Validate(); err != nil {
		return nil, fmt.Errorf("invalid rules: %w", err)
	}

	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	econ := economy.New(rules.StartingCoins)
	rng := utils.NewPRNGService(rules.Seed)

	g := &Game{
		SessionID:       uuid.New().String(),
		Level:           lvl,
		Library:         library,
		Rules:           rules,
		ECS:             ecs,
		Economy:         econ,
		BaseHealth:      component.NewHealth(rules.BaseHealth),
		EventDispatcher: eventDispatcher,
		Rng:             rng,
	}
	g.MovementSystem = system.NewMovementSystem(ecs, lvl.Path, rules.ArrivalThreshold)
	g.TowerSystem = system.NewTowerSystem(ecs, lvl, library, econ, eventDispatcher, rules.LeadDistance, rules.Upgrade)
	g.ProjectileSystem = system.NewProjectileSystem(ecs)
	g.CollisionSystem = system.NewCollisionSystem(ecs, rules.HitReward)
	g.WaveSystem = system.NewWaveSystem(ecs, lvl.Path, library, rules.Waves, rng, eventDispatcher)
	g.WaveSystem.SetAutoAdvance(rules.AutoAdvance)

	listener := &GameEventListener{game: g}
	eventDispatcher.SubscribeAll(listener,
		event.EnemyKilled,
		event.EnemyLeaked,
		event.TowerRemoved,
		event.BaseDestroyed,
	)

	logger.Game.Info("Сессия %s: уровень %q, сид %d, монет %d", g.SessionID, lvl.Name, rng.Seed(), econ.Balance())
	return g, nil
}

// Tick advances the simulation by one frame. Systems run in a fixed order and
// only queue structural changes; the queue is applied once before the
// completion and game-over checks.
func (g *Game) Tick(deltaTime float64, in input.State) {
	if g.gameOver {
		return
	}
	dt := math.Max(0, math.Min(deltaTime, config.MaxDeltaTime))
	g.gameTime += dt
	g.ECS.GameTime = g.gameTime
	g.pointer = in.Pointer

	g.TowerSystem.HandleInput(in)
	g.WaveSystem.Spawn(dt)
	g.MovementSystem.Update(dt)
	g.TowerSystem.Update(dt)
	g.ProjectileSystem.Update(dt)
	g.CollisionSystem.Update(dt)
	g.applyCommands()
	g.WaveSystem.CheckCompletion()

	if g.BaseHealth.Depleted() {
		g.gameOver = true
		w := g.WaveSystem.Wave()
		g.dispatch(event.BaseDestroyed, event.RoundPayload{Round: w.Round, TotalEnemies: w.TotalEnemies, Killed: w.EnemiesKilled})
	}
}

// applyCommands flushes the command buffer and settles every removed entity
// exactly once.
func (g *Game) applyCommands() {
	result := g.ECS.Flush()
	g.Economy.Reward(result.Reward)

	g.despawned = g.despawned[:0]
	for _, r := range result.Removed {
		g.despawned = append(g.despawned, r.ID)
		payload := event.EntityPayload{ID: r.ID, Amount: r.Amount}
		switch r.Cause {
		case entity.CauseKilled:
			g.Economy.Reward(r.Amount)
			g.WaveSystem.RecordResolved()
			g.dispatch(event.EnemyKilled, payload)
		case entity.CauseLeaked:
			g.BaseHealth.Damage(r.Amount)
			g.WaveSystem.RecordResolved()
			g.dispatch(event.EnemyLeaked, payload)
		case entity.CauseExpired:
			g.dispatch(event.ProjectileExpired, payload)
		case entity.CauseCancelled, entity.CauseDemolished:
			g.dispatch(event.TowerRemoved, payload)
		}
	}
}

func (g *Game) IsGameOver() bool { return g.gameOver }

func (g *Game) GetGameTime() float64 { return g.gameTime }

func (g *Game) dispatch(t event.EventType, data interface{}) {
	g.EventDispatcher.Dispatch(event.Event{Type: t, Data: data})
}

// GameEventListener пишет в журнал события, важные для основного игрового цикла.
type GameEventListener struct {
	game *Game
}

func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemyKilled:
		if p, ok := e.Data.(event.EntityPayload); ok {
			logger.Game.Debug("Враг %d убит, награда %d", p.ID, p.Amount)
		}
	case event.EnemyLeaked:
		if p, ok := e.Data.(event.EntityPayload); ok {
			logger.Game.Info("Враг %d прорвался: база -%d (осталось %d)", p.ID, p.Amount, l.game.BaseHealth.Current)
		}
	case event.TowerRemoved:
		if p, ok := e.Data.(event.EntityPayload); ok {
			logger.Tower.Debug("Башня %d удалена", p.ID)
		}
	case event.BaseDestroyed:
		if p, ok := e.Data.(event.RoundPayload); ok {
			logger.Game.Warn("База разрушена в раунде %d (сессия %s)", p.Round, l.game.SessionID)
		}
	}
}
