// internal/component/movement.go
package component

import "go-waypoint-defense/pkg/geom"

// Position — компонент позиции (центр сущности в мировых координатах)
type Position struct {
	X, Y float64
}

func (p Position) Vec() geom.Vec2 { return geom.Vec2{X: p.X, Y: p.Y} }

func (p *Position) Set(v geom.Vec2) {
	p.X = v.X
	p.Y = v.Y
}

// Velocity — скорость и последнее направление движения.
// Direction нужен башням для упреждения.
type Velocity struct {
	Speed     float64
	Direction geom.Vec2
}

// PathFollower — прогресс врага по маршруту
type PathFollower struct {
	WaypointIndex int
}
