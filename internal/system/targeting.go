// internal/system/targeting.go
package system

import (
	"go-waypoint-defense/internal/entity"
	"go-waypoint-defense/internal/types"
	"go-waypoint-defense/pkg/geom"
)

// Candidate is an enemy's lead point: its position pushed forward along its
// last movement direction.
type Candidate struct {
	ID    types.EntityID
	Point geom.Vec2
}

// LeadCandidates builds candidates for every live enemy in ascending ID order.
// Enemies already queued for removal are not targetable.
func LeadCandidates(ecs *entity.ECS, leadDistance float64) []Candidate {
	ids := ecs.EnemyIDs()
	out := make([]Candidate, 0, len(ids))
	for _, id := range ids {
		if ecs.Commands.Pending(id) {
			continue
		}
		pos, ok := ecs.Positions[id]
		if !ok {
			continue
		}
		lead := geom.Vec2{}
		if vel, ok := ecs.Velocities[id]; ok {
			lead = vel.Direction.Scale(leadDistance)
		}
		out = append(out, Candidate{ID: id, Point: pos.Vec().Add(lead)})
	}
	return out
}

// FindNearest returns the candidate nearest to from within radius.
// On equal distance the earlier candidate wins.
func FindNearest(from geom.Vec2, radius float64, candidates []Candidate) (Candidate, bool) {
	var best Candidate
	bestDist := 0.0
	found := false
	for _, c := range candidates {
		d := from.Dist(c.Point)
		if d > radius {
			continue
		}
		if !found || d < bestDist {
			best, bestDist, found = c, d, true
		}
	}
	return best, found
}
