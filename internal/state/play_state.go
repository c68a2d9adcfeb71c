// internal/state/play_state.go
package state

import (
	"errors"

	"go-waypoint-defense/internal/app"
	"go-waypoint-defense/internal/economy"
	"go-waypoint-defense/internal/event"
	"go-waypoint-defense/internal/input"
	"go-waypoint-defense/internal/interfaces"
	"go-waypoint-defense/internal/logger"
	"go-waypoint-defense/internal/render"
	"go-waypoint-defense/internal/system"
	"go-waypoint-defense/internal/ui"
	"go-waypoint-defense/pkg/geom"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var _ State = (*PlayState)(nil)

var towerKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5,
	ebiten.Key6, ebiten.Key7, ebiten.Key8, ebiten.Key9}

// PlayState — основное игровое состояние: опрос ввода, тик, отрисовка.
type PlayState struct {
	sm       *StateMachine
	game     *app.Game
	factory  GameFactory
	renderer *render.Renderer
	hud      *ui.HUD
	pointer  geom.Vec2
}

func NewPlayState(sm *StateMachine, game *app.Game, factory GameFactory) *PlayState {
	s := &PlayState{
		sm:       sm,
		game:     game,
		factory:  factory,
		renderer: render.NewRenderer(game.Level, render.DefaultMapColors()),
		hud:      ui.NewHUD(game.Library),
	}
	game.EventDispatcher.SubscribeAll(event.ListenerFunc(s.onEvent),
		event.RoundStarted, event.RoundCompleted, event.EnemyLeaked, event.TowerUpgraded)
	return s
}

func (s *PlayState) Game() *app.Game { return s.game }

func (s *PlayState) Enter() {}

func (s *PlayState) Exit() {}

func (s *PlayState) onEvent(e event.Event) {
	switch e.Type {
	case event.RoundStarted:
		if p, ok := e.Data.(event.RoundPayload); ok {
			s.hud.Flash("Round %d: %d enemies", p.Round, p.TotalEnemies)
		}
	case event.RoundCompleted:
		if p, ok := e.Data.(event.RoundPayload); ok {
			s.hud.Flash("Round %d cleared", p.Round)
		}
	case event.EnemyLeaked:
		s.hud.Flash("The base is under attack!")
	case event.TowerUpgraded:
		s.hud.Flash("Tower upgraded")
	}
}

func (s *PlayState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.sm.SetState(NewPauseState(s.sm, s))
		return
	}

	x, y := ebiten.CursorPosition()
	s.pointer = geom.V(float64(x), float64(y))
	in := input.State{
		Pointer:   s.pointer,
		Primary:   mouseButton(ebiten.MouseButtonLeft),
		Secondary: mouseButton(ebiten.MouseButtonRight),
		OverUI:    s.hud.Contains(s.pointer),
	}

	s.handleKeys()
	if in.Primary.Pressed && in.OverUI {
		if b, ok := s.hud.Click(s.pointer); ok {
			s.do(b.Action, b.DefID)
		}
	}
	if s.sm.Current() != s {
		return // кнопка паузы
	}

	s.game.Tick(deltaTime, in)
	s.hud.Update(deltaTime, s.game.Status())

	if s.game.IsGameOver() {
		s.sm.SetState(NewGameOverState(s.sm, s))
	}
}

func (s *PlayState) handleKeys() {
	for i, key := range towerKeys {
		if i < len(s.game.Library.TowerOrder) && inpututil.IsKeyJustPressed(key) {
			s.do(ui.ActionPlaceTower, s.game.Library.TowerOrder[i])
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyU) {
		s.do(ui.ActionUpgrade, "")
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		s.do(ui.ActionNewRound, "")
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyA) {
		s.do(ui.ActionToggleAuto, "")
	}
}

// do выполняет команду UI и показывает отказ во вспышке HUD.
func (s *PlayState) do(action ui.Action, defID string) {
	if action == ui.ActionPause {
		s.sm.SetState(NewPauseState(s.sm, s))
		return
	}
	if err := execute(s.game, action, defID); err != nil {
		s.reject(action, err)
	}
}

// execute переводит действие HUD в команду сессии.
func execute(cmd interfaces.Commands, action ui.Action, defID string) error {
	switch action {
	case ui.ActionPlaceTower:
		_, err := cmd.PlaceTower(defID)
		return err
	case ui.ActionUpgrade:
		return cmd.UpgradeSelected()
	case ui.ActionNewRound:
		return cmd.StartNewRound()
	case ui.ActionToggleAuto:
		cmd.SetAutoAdvance(!cmd.AutoAdvance())
	}
	return nil
}

func (s *PlayState) reject(action ui.Action, err error) {
	switch {
	case errors.Is(err, economy.ErrInsufficientFunds):
		s.hud.Flash("Not enough coins")
	case errors.Is(err, system.ErrNoSelection):
		s.hud.Flash("Select a tower first")
	case errors.Is(err, system.ErrRoundInProgress):
		s.hud.Flash("Round in progress")
	default:
		logger.Game.Warn("Команда %d отклонена: %v", action, err)
		s.hud.Flash("%v", err)
	}
}

func (s *PlayState) Draw(screen *ebiten.Image) {
	s.renderer.Draw(screen, s.game.Snapshot())
	s.hud.Draw(screen, s.game.Status(), s.pointer)
}

func mouseButton(b ebiten.MouseButton) input.Button {
	return input.Button{
		Pressed:  inpututil.IsMouseButtonJustPressed(b),
		Released: inpututil.IsMouseButtonJustReleased(b),
		Held:     ebiten.IsMouseButtonPressed(b),
	}
}
