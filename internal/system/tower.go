// internal/system/tower.go
package system

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
	"go-waypoint-defense/internal/types"
	"go-waypoint-defense/pkg/geom"
)

var (
	// ErrNoSelection is returned by UpgradeSelected without a selected active tower.
	ErrNoSelection = errors.New("no tower selected")
	// ErrUnknownArchetype is returned for a tower id missing from the library.
	ErrUnknownArchetype = errors.New("unknown tower archetype")
)

// TowerSystem управляет установкой, выбором, улучшением и стрельбой башен.
type TowerSystem struct {
	ecs             *entity.ECS
	level           *level.Level
	library         *defs.Library
	economy         *economy.Economy
	eventDispatcher *event.Dispatcher
	leadDistance    float64
	upgrade         config.UpgradeRules

	pending  types.EntityID // 0 — нет башни в режиме установки
	selected types.EntityID
}

func NewTowerSystem(ecs *entity.ECS, lvl *level.Level, library *defs.Library, econ *economy.Economy,
	eventDispatcher *event.Dispatcher, leadDistance float64, upgrade config.UpgradeRules) *TowerSystem {
	return &TowerSystem{
		ecs:             ecs,
		level:           lvl,
		library:         library,
		economy:         econ,
		eventDispatcher: eventDispatcher,
		leadDistance:    leadDistance,
		upgrade:         upgrade,
	}
}

// Pending returns the tower following the cursor, or 0.
func (s *TowerSystem) Pending() types.EntityID { return s.pending }

// Selected returns the selected active tower, or 0.
func (s *TowerSystem) Selected() types.EntityID { return s.selected }

// BeginPlacement creates an unpaid Pending tower of archetype defID at the
// pointer. A previous Pending tower is cancelled. The cost is only checked
// here; it is charged when the placement is confirmed.
func (s *TowerSystem) BeginPlacement(defID string, at geom.Vec2) (types.EntityID, error) {
	def, ok := s.library.Tower(defID)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownArchetype, defID)
	}
	if !s.economy.CanAfford(def.Cost) {
		return 0, fmt.Errorf("tower %q costs %d: %w", defID, def.Cost, economy.ErrInsufficientFunds)
	}
	if s.pending != 0 {
		s.discardPending()
	}
	s.Select(0)

	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{X: at.X, Y: at.Y}
	tower := &component.Tower{
		DefID:              def.ID,
		Kind:               def.Kind,
		State:              component.TowerPending,
		Cost:               def.Cost,
		Range:              def.Range,
		FireInterval:       def.FireInterval,
		Damage:             def.Damage,
		Directions:         def.Directions,
		ProjectileSpeed:    def.ProjectileSpeed,
		ProjectileLifetime: def.ProjectileLifetime,
		ProjectileBox:      def.ProjectileBox,
		Footprint:          def.Footprint,
		Aim:                geom.V(1, 0),
		Level:              1,
		ShowRange:          true,
	}
	s.ecs.Towers[id] = tower
	tower.Blocked = s.blocked(id, at, tower)
	s.pending = id
	return id, nil
}

// discardPending удаляет башню установки вне тика (команда UI).
func (s *TowerSystem) discardPending() {
	id := s.pending
	s.pending = 0
	if t, ok := s.ecs.Towers[id]; ok {
		t.State = component.TowerRemoved
	}
	s.ecs.Remove(id)
	s.dispatch(event.TowerRemoved, event.EntityPayload{ID: id})
}

// HandleInput applies one tick of player input.
func (s *TowerSystem) HandleInput(in input.State) {
	if s.pending != 0 {
		s.handlePending(in)
		return
	}
	if in.OverUI {
		return
	}
	if in.Primary.Pressed {
		s.Select(s.towerAt(in.Pointer))
	}
	if in.Secondary.Pressed && s.selected != 0 {
		if s.towerAt(in.Pointer) == s.selected {
			s.demolish(s.selected)
		}
	}
}

func (s *TowerSystem) handlePending(in input.State) {
	id := s.pending
	tower, ok := s.ecs.Towers[id]
	pos, hasPos := s.ecs.Positions[id]
	if !ok || !hasPos || tower.State != component.TowerPending {
		s.pending = 0
		return
	}

	pos.Set(in.Pointer)
	tower.Blocked = s.blocked(id, in.Pointer, tower)

	if in.Secondary.Pressed {
		tower.State = component.TowerRemoved
		s.ecs.Commands.QueueRemoval(id, entity.CauseCancelled, 0)
		s.pending = 0
		return
	}
	if !in.Primary.Pressed || in.OverUI || tower.Blocked {
		return
	}
	if err := s.economy.Spend(tower.Cost); err != nil {
		logger.Tower.Debug("Установка %s отклонена: %v", tower.DefID, err)
		return
	}
	tower.State = component.TowerActive
	tower.ShowRange = false
	tower.Blocked = false
	s.pending = 0
	logger.Tower.Info("Башня %s (%d) установлена в (%.0f, %.0f)", tower.DefID, id, pos.X, pos.Y)
	s.dispatch(event.TowerPlaced, event.EntityPayload{ID: id, DefID: tower.DefID, Position: pos.Vec(), Amount: tower.Cost})
}

// blocked reports whether a pending tower at p may not be confirmed: the
// point is inside a path-exclusion zone or its footprint overlaps an active
// tower.
func (s *TowerSystem) blocked(self types.EntityID, p geom.Vec2, tower *component.Tower) bool {
	if !s.level.CanPlace(p) {
		return true
	}
	box := geom.RectAt(p, tower.Footprint.W, tower.Footprint.H)
	for _, id := range s.ecs.TowerIDs() {
		other := s.ecs.Towers[id]
		if id == self || other.State != component.TowerActive {
			continue
		}
		if box.Overlaps(other.Bounds(s.ecs.Positions[id])) {
			return true
		}
	}
	return false
}

// towerAt returns the lowest-ID active tower whose footprint strictly
// contains p, or 0.
func (s *TowerSystem) towerAt(p geom.Vec2) types.EntityID {
	for _, id := range s.ecs.TowerIDs() {
		tower := s.ecs.Towers[id]
		if tower.State != component.TowerActive || s.ecs.Commands.Pending(id) {
			continue
		}
		b := tower.Bounds(s.ecs.Positions[id])
		lo, hi := b.Min(), b.Max()
		if p.X > lo.X && p.X < hi.X && p.Y > lo.Y && p.Y < hi.Y {
			return id
		}
	}
	return 0
}

// Select makes id the only selected tower; 0 clears the selection.
func (s *TowerSystem) Select(id types.EntityID) {
	for towerID, tower := range s.ecs.Towers {
		tower.IsSelected = towerID == id
	}
	if id == s.selected {
		return
	}
	s.selected = id
	s.dispatch(event.TowerSelected, event.EntityPayload{ID: id})
}

func (s *TowerSystem) demolish(id types.EntityID) {
	tower := s.ecs.Towers[id]
	tower.State = component.TowerRemoved
	tower.IsSelected = false
	s.selected = 0
	s.ecs.Commands.QueueRemoval(id, entity.CauseDemolished, 0)
	logger.Tower.Info("Башня %s (%d) снесена", tower.DefID, id)
}

// UpgradeSelected charges the fixed upgrade price and improves the selected
// tower. Nothing changes when the price cannot be paid.
func (s *TowerSystem) UpgradeSelected() error {
	id := s.selected
	tower, ok := s.ecs.Towers[id]
	if id == 0 || !ok || tower.State != component.TowerActive {
		return ErrNoSelection
	}
	if err := s.economy.Spend(s.upgrade.Cost); err != nil {
		return fmt.Errorf("upgrade tower %d: %w", id, err)
	}
	tower.Range += s.upgrade.RangeDelta
	tower.FireInterval = math.Max(s.upgrade.IntervalFloor, tower.FireInterval-s.upgrade.IntervalDelta)
	tower.Level++
	logger.Tower.Info("Башня %s (%d) улучшена до уровня %d: радиус %.0f, интервал %.2fs",
		tower.DefID, id, tower.Level, tower.Range, tower.FireInterval)
	s.dispatch(event.TowerUpgraded, event.EntityPayload{ID: id, DefID: tower.DefID, Amount: s.upgrade.Cost})
	return nil
}

// Update accumulates fire timers and fires at the nearest lead point in range.
// The timer keeps running without a target and is only reset by a shot.
func (s *TowerSystem) Update(deltaTime float64) {
	candidates := LeadCandidates(s.ecs, s.leadDistance)
	for _, id := range s.ecs.TowerIDs() {
		tower := s.ecs.Towers[id]
		if tower.State != component.TowerActive || s.ecs.Commands.Pending(id) {
			continue
		}
		pos := s.ecs.Positions[id]
		tower.FireTimer.Add(deltaTime)

		target, found := FindNearest(pos.Vec(), tower.Range, candidates)
		if !found {
			continue
		}
		if aim := target.Point.Sub(pos.Vec()); !aim.IsZero() {
			tower.Aim = aim.Normalize()
			tower.Angle = tower.Aim.Angle()
		}
		if !tower.FireTimer.Reached(tower.FireInterval) {
			continue
		}
		s.fire(id, pos.Vec(), tower)
		tower.FireTimer.Reset()
	}
}

func (s *TowerSystem) fire(id types.EntityID, origin geom.Vec2, tower *component.Tower) {
	switch tower.Kind {
	case defs.TowerDirectional:
		n := max(tower.Directions, 1)
		for k := 0; k < n; k++ {
			s.queueProjectile(id, origin, geom.FromAngle(2*math.Pi*float64(k)/float64(n)), tower)
		}
	default:
		s.queueProjectile(id, origin, tower.Aim, tower)
	}
}

func (s *TowerSystem) queueProjectile(source types.EntityID, origin, dir geom.Vec2, tower *component.Tower) {
	proj := component.Projectile{
		Source:    source,
		Origin:    origin,
		Direction: dir,
		Speed:     tower.ProjectileSpeed,
		Damage:    tower.Damage,
		Lifetime:  tower.ProjectileLifetime,
	}
	box := tower.ProjectileBox
	s.ecs.Commands.QueueSpawn(func(ecs *entity.ECS) types.EntityID {
		id := ecs.NewEntity()
		p := proj
		ecs.Positions[id] = &component.Position{X: origin.X, Y: origin.Y}
		ecs.Projectiles[id] = &p
		ecs.Colliders[id] = &component.Collider{Width: box.W, Height: box.H}
		s.dispatch(event.ProjectileFired, event.EntityPayload{ID: id, Source: source, Position: origin})
		return id
	})
}

func (s *TowerSystem) dispatch(t event.EventType, data interface{}) {
	if s.eventDispatcher == nil {
		return
	}
	s.eventDispatcher.Dispatch(event.Event{Type: t, Data: data})
}
