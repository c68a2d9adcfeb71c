// Package sim drives a Game without a window, for batch runs and balance checks.
package sim

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go-waypoint-defense/internal/app"
	"go-waypoint-defense/internal/config"
	"go-waypoint-defense/internal/event"
	"go-waypoint-defense/internal/input"
	"go-waypoint-defense/pkg/geom"
)

// ErrPlacementRejected is returned when a scripted tower stays pending after
// the confirm click: the spot is blocked or the tower is unaffordable.
var ErrPlacementRejected = errors.New("placement rejected")

// Placement is one scripted tower.
type Placement struct {
	DefID string
	At    geom.Vec2
}

// ParsePlacements reads "id@x,y;id@x,y".
func ParsePlacements(s string) ([]Placement, error) {
	var out []Placement
	for _, part := range strings.Split(s, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, coords, ok := strings.Cut(part, "@")
		if !ok || id == "" {
			return nil, fmt.Errorf("%q: want id@x,y", part)
		}
		xs, ys, ok := strings.Cut(coords, ",")
		if !ok {
			return nil, fmt.Errorf("%q: want id@x,y", part)
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
		if err != nil {
			return nil, fmt.Errorf("%q: x: %w", part, err)
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
		if err != nil {
			return nil, fmt.Errorf("%q: y: %w", part, err)
		}
		out = append(out, Placement{DefID: id, At: geom.V(x, y)})
	}
	return out, nil
}

// Summary is the outcome of a run.
type Summary struct {
	Ticks       int
	SimTime     float64
	Round       int
	RoundsClear int
	Kills       int
	Leaks       int
	Shots       int
	Coins       int
	BaseHealth  int
	GameOver    bool
}

func (s Summary) String() string {
	return fmt.Sprintf("%.1fs in %d ticks, round %d (%d cleared), kills %d, leaks %d, shots %d, coins %d, base %d, game over %t",
		s.SimTime, s.Ticks, s.Round, s.RoundsClear, s.Kills, s.Leaks, s.Shots, s.Coins, s.BaseHealth, s.GameOver)
}

// Runner ticks a Game at a fixed step and tallies its events.
type Runner struct {
	game    *app.Game
	step    float64
	summary Summary
}

// NewRunner clamps step to config.MaxDeltaTime, as Game.Tick would.
func NewRunner(game *app.Game, step float64) *Runner {
	r := &Runner{game: game, step: min(step, config.MaxDeltaTime)}
	game.EventDispatcher.SubscribeAll(event.ListenerFunc(r.onEvent),
		event.EnemyKilled, event.EnemyLeaked, event.ProjectileFired, event.RoundCompleted)
	return r
}

func (r *Runner) onEvent(e event.Event) {
	switch e.Type {
	case event.EnemyKilled:
		r.summary.Kills++
	case event.EnemyLeaked:
		r.summary.Leaks++
	case event.ProjectileFired:
		r.summary.Shots++
	case event.RoundCompleted:
		r.summary.RoundsClear++
	}
}

// Place performs the same command sequence a player would: pick the
// archetype, move the pointer, confirm.
func (r *Runner) Place(p Placement) error {
	r.game.Tick(0, input.PointerAt(p.At))
	id, err := r.game.PlaceTower(p.DefID)
	if err != nil {
		return err
	}
	r.game.Tick(0, input.Click(p.At))
	if r.game.Status().Pending != "" {
		r.game.Tick(0, input.RightClick(p.At))
		return fmt.Errorf("tower %d: %w", id, ErrPlacementRejected)
	}
	return nil
}

// Run ticks until duration seconds have been simulated or the base falls.
func (r *Runner) Run(duration float64) Summary {
	idle := input.PointerAt(geom.V(-1, -1))
	for r.summary.SimTime < duration && !r.game.IsGameOver() {
		r.game.Tick(r.step, idle)
		r.summary.Ticks++
		r.summary.SimTime += r.step
	}
	st := r.game.Status()
	r.summary.Round = st.Round
	r.summary.Coins = st.Coins
	r.summary.BaseHealth = st.BaseHealth
	r.summary.GameOver = st.GameOver
	return r.summary
}
