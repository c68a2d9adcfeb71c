// Package input describes the semantic input the simulation consumes. Hosts
// translate device polling into a State once per tick.
package input

import "go-waypoint-defense/pkg/geom"

// Button is the edge/level state of one pointer button during a tick.
type Button struct {
	Pressed  bool // went down this tick
	Released bool // went up this tick
	Held     bool
}

// State is everything the Tower Controller reads from the player in a tick.
type State struct {
	Pointer   geom.Vec2 // world position
	Primary   Button    // place / confirm / select
	Secondary Button    // cancel / remove
	OverUI    bool      // pointer is over a HUD widget
}

// PointerAt returns an idle State with the pointer at p.
func PointerAt(p geom.Vec2) State {
	return State{Pointer: p}
}

// Click returns a State with a primary press at p.
func Click(p geom.Vec2) State {
	return State{Pointer: p, Primary: Button{Pressed: true, Held: true}}
}

// RightClick returns a State with a secondary press at p.
func RightClick(p geom.Vec2) State {
	return State{Pointer: p, Secondary: Button{Pressed: true, Held: true}}
}
