// internal/app/snapshot.go
package app

import (
	"cmp"
	"slices"

	"go-waypoint-defense/internal/component"
	"go-waypoint-defense/internal/types"
	"go-waypoint-defense/pkg/geom"
)

type EntityKind int

const (
	KindEnemy EntityKind = iota
	KindTower
	KindProjectile
)

func (k EntityKind) String() string {
	switch k {
	case KindEnemy:
		return "enemy"
	case KindTower:
		return "tower"
	case KindProjectile:
		return "projectile"
	default:
		return "unknown"
	}
}

// EntityView is the render surface of one live entity.
type EntityView struct {
	ID          types.EntityID
	Kind        EntityKind
	DefID       string
	Position    geom.Vec2
	Angle       float64 // радианы, 0 — восток
	W, H        float64
	HealthRatio float64
	Range       float64
	ShowRange   bool
	Selected    bool
	Pending     bool
	Blocked     bool
}

// Snapshot lists every live entity in ascending ID order, plus the entities
// removed by the last flush.
type Snapshot struct {
	Entities  []EntityView
	Despawned []types.EntityID
}

func (g *Game) Snapshot() Snapshot {
	ecs := g.ECS
	views := make([]EntityView, 0, len(ecs.Enemies)+len(ecs.Towers)+len(ecs.Projectiles))

	for _, id := range ecs.EnemyIDs() {
		enemy, pos := ecs.Enemies[id], ecs.Positions[id]
		v := EntityView{ID: id, Kind: KindEnemy, DefID: enemy.DefID, Position: pos.Vec(), HealthRatio: 1}
		if vel, ok := ecs.Velocities[id]; ok {
			v.Angle = vel.Direction.Angle()
		}
		if col, ok := ecs.Colliders[id]; ok {
			v.W, v.H = col.Width, col.Height
		}
		if h, ok := ecs.Healths[id]; ok {
			v.HealthRatio = h.Ratio()
		}
		views = append(views, v)
	}
	for _, id := range ecs.TowerIDs() {
		t, pos := ecs.Towers[id], ecs.Positions[id]
		if t.State == component.TowerRemoved {
			continue
		}
		views = append(views, EntityView{
			ID:          id,
			Kind:        KindTower,
			DefID:       t.DefID,
			Position:    pos.Vec(),
			Angle:       t.Angle,
			W:           t.Footprint.W,
			H:           t.Footprint.H,
			HealthRatio: 1,
			Range:       t.Range,
			ShowRange:   t.ShowRange || t.IsSelected,
			Selected:    t.IsSelected,
			Pending:     t.State == component.TowerPending,
			Blocked:     t.Blocked,
		})
	}
	for _, id := range ecs.ProjectileIDs() {
		p, pos := ecs.Projectiles[id], ecs.Positions[id]
		v := EntityView{ID: id, Kind: KindProjectile, Position: pos.Vec(), Angle: p.Direction.Angle(), HealthRatio: 1}
		if src, ok := ecs.Towers[p.Source]; ok {
			v.DefID = src.DefID
		}
		if col, ok := ecs.Colliders[id]; ok {
			v.W, v.H = col.Width, col.Height
		}
		views = append(views, v)
	}

	slices.SortFunc(views, func(a, b EntityView) int { return cmp.Compare(a.ID, b.ID) })
	return Snapshot{Entities: views, Despawned: slices.Clone(g.despawned)}
}
