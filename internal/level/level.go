// Package level holds the static level geometry: the waypoint path enemies
// walk and the rectangles where towers may not be built.
package level

import (
	"errors"
	"fmt"

	"go-waypoint-defense/pkg/geom"
)

// ErrPathTooShort is returned for a path with fewer than two waypoints.
var ErrPathTooShort = errors.New("path needs at least 2 waypoints")

// Path is an ordered, immutable waypoint sequence.
type Path struct {
	points []geom.Vec2
}

// NewPath copies points into a Path.
func NewPath(points []geom.Vec2) (*Path, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrPathTooShort, len(points))
	}
	return &Path{points: append([]geom.Vec2(nil), points...)}, nil
}

func (p *Path) Len() int { return len(p.points) }

// Point returns waypoint i.
func (p *Path) Point(i int) geom.Vec2 { return p.points[i] }

func (p *Path) Start() geom.Vec2 { return p.points[0] }

// LastIndex is the index of the final waypoint.
func (p *Path) LastIndex() int { return len(p.points) - 1 }

// Points returns a copy of the waypoints.
func (p *Path) Points() []geom.Vec2 { return append([]geom.Vec2(nil), p.points...) }

// Length is the total polyline length.
func (p *Path) Length() float64 {
	total := 0.0
	for i := 1; i < len(p.points); i++ {
		total += p.points[i-1].Dist(p.points[i])
	}
	return total
}

// Zone is a path-exclusion rectangle.
type Zone struct {
	Name string
	Rect geom.Rect
}

// Level is the geometry loaded once at startup.
type Level struct {
	Name  string
	Path  *Path
	Zones []Zone
}

// CanPlace reports whether a tower may be placed at p.
func (l *Level) CanPlace(p geom.Vec2) bool {
	for _, z := range l.Zones {
		if z.Rect.Contains(p) {
			return false
		}
	}
	return true
}
