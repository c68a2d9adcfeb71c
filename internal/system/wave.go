// internal/system/wave.go
package system

import (
	"errors"
	"math"

	"go-waypoint-defense/internal/component"
	"go-waypoint-defense/internal/config"
	"go-waypoint-defense/internal/defs"
	"go-waypoint-defense/internal/entity"
	"go-waypoint-defense/internal/event"
	"go-waypoint-defense/internal/level"
	"go-waypoint-defense/internal/logger"
	"go-waypoint-defense/internal/types"
	"go-waypoint-defense/internal/utils"
)

// ErrRoundInProgress is returned when a new round is requested while enemies
// of the current one are still outstanding.
var ErrRoundInProgress = errors.New("round in progress")

// WaveSystem — режиссёр волн: раунды, спавн, завершение, сложность.
type WaveSystem struct {
	ecs             *entity.ECS
	path            *level.Path
	library         *defs.Library
	rules           config.WaveRules
	rng             *utils.PRNGService
	eventDispatcher *event.Dispatcher
	wave            *component.Wave
}

// NewWaveSystem returns a director in the Idle state before round 1.
func NewWaveSystem(ecs *entity.ECS, path *level.Path, library *defs.Library, rules config.WaveRules,
	rng *utils.PRNGService, eventDispatcher *event.Dispatcher) *WaveSystem {
	return &WaveSystem{
		ecs:             ecs,
		path:            path,
		library:         library,
		rules:           rules,
		rng:             rng,
		eventDispatcher: eventDispatcher,
		wave: &component.Wave{
			TotalEnemies:  rules.InitialEnemies,
			Completed:     true,
			SpawnInterval: rules.InitialSpawnInterval,
		},
	}
}

// Wave exposes the round state. The director is its only writer.
func (s *WaveSystem) Wave() *component.Wave { return s.wave }

func (s *WaveSystem) SetAutoAdvance(on bool) { s.wave.AutoAdvance = on }

// Increment is the number of enemies added to the round total when round
// begins. It grows by RampStep every RampEvery rounds.
func (s *WaveSystem) Increment(round int) int {
	if round < 1 {
		round = 1
	}
	return s.rules.BaseIncrement + ((round-1)/s.rules.RampEvery)*s.rules.RampStep
}

// NewRound advances to the next round unconditionally.
func (s *WaveSystem) NewRound() {
	w := s.wave
	w.Round++
	w.EnemiesSpawned = 0
	w.EnemiesKilled = 0
	w.TotalEnemies += s.Increment(w.Round)
	w.SpawnInterval = math.Max(s.rules.SpawnIntervalFloor, w.SpawnInterval-s.rules.SpawnIntervalDecrement)
	w.SpawnTimer.Reset()
	w.Completed = false

	logger.Wave.Info("Раунд %d начат: врагов %d, интервал %.2fs", w.Round, w.TotalEnemies, w.SpawnInterval)
	s.dispatch(event.RoundStarted, s.roundPayload())
}

// StartRound is the UI command "start new round".
func (s *WaveSystem) StartRound() error {
	if s.wave.Running() {
		return ErrRoundInProgress
	}
	s.NewRound()
	return nil
}

// Spawn is the per-tick spawn check. The enemy itself is created when the
// command buffer is flushed.
func (s *WaveSystem) Spawn(deltaTime float64) {
	w := s.wave
	if w.EnemiesSpawned >= w.TotalEnemies || w.Completed {
		w.SpawnTimer.Reset()
		return
	}
	w.SpawnTimer.Add(deltaTime)
	if !w.SpawnTimer.Reached(w.SpawnInterval) {
		return
	}

	unlocked := s.library.UnlockedEnemies(w.Round)
	idx := s.rng.ChooseIndex(len(unlocked))
	if idx < 0 {
		logger.Wave.Error("Нет доступных врагов для раунда %d", w.Round)
		w.SpawnTimer.Reset()
		return
	}
	def := unlocked[idx]
	s.ecs.Commands.QueueSpawn(func(ecs *entity.ECS) types.EntityID {
		return s.spawnEnemy(ecs, def)
	})
	w.EnemiesSpawned++
	w.SpawnTimer.Reset()
}

func (s *WaveSystem) spawnEnemy(ecs *entity.ECS, def defs.EnemyDefinition) types.EntityID {
	id := ecs.NewEntity()
	start := s.path.Start()
	ecs.Positions[id] = &component.Position{X: start.X, Y: start.Y}
	ecs.Velocities[id] = &component.Velocity{Speed: def.Speed}
	ecs.PathFollowers[id] = &component.PathFollower{WaypointIndex: 0}
	ecs.Healths[id] = component.NewHealth(def.Health)
	ecs.Colliders[id] = &component.Collider{Width: def.Box.W, Height: def.Box.H}
	ecs.Enemies[id] = &component.Enemy{
		DefID:         def.ID,
		ContactDamage: def.ContactDamage,
		KillReward:    def.KillReward,
	}
	s.dispatch(event.EnemySpawned, event.EntityPayload{ID: id, DefID: def.ID, Position: start})
	return id
}

// RecordResolved counts a killed or leaked enemy toward the round tally.
func (s *WaveSystem) RecordResolved() {
	s.wave.EnemiesKilled++
}

// CheckCompletion marks the round completed once every enemy of the round is
// resolved, and starts the next one when auto-advance is on. It reports
// whether the round completed during this call.
func (s *WaveSystem) CheckCompletion() bool {
	w := s.wave
	justCompleted := false
	if !w.Completed && w.EnemiesKilled == w.EnemiesSpawned && w.EnemiesKilled >= w.TotalEnemies {
		w.Completed = true
		justCompleted = true
		logger.Wave.Info("Раунд %d завершён", w.Round)
		s.dispatch(event.RoundCompleted, s.roundPayload())
	}
	if w.Completed && w.AutoAdvance {
		s.NewRound()
	}
	return justCompleted
}

func (s *WaveSystem) roundPayload() event.RoundPayload {
	return event.RoundPayload{Round: s.wave.Round, TotalEnemies: s.wave.TotalEnemies, Killed: s.wave.EnemiesKilled}
}

func (s *WaveSystem) dispatch(t event.EventType, data interface{}) {
	if s.eventDispatcher == nil {
		return
	}
	s.eventDispatcher.Dispatch(event.Event{Type: t, Data: data})
}
