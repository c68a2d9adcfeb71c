// internal/state/game_over_state.go
package state

import (
	"fmt"

	"go-waypoint-defense/internal/logger"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var _ State = (*GameOverState)(nil)

// GameOverState показывает итог и перезапускает игру по R.
type GameOverState struct {
	sm   *StateMachine
	play *PlayState
}

func NewGameOverState(sm *StateMachine, play *PlayState) *GameOverState {
	return &GameOverState{sm: sm, play: play}
}

func (s *GameOverState) Enter() {
	st := s.play.game.Status()
	logger.Game.Info("Игра окончена: раунд %d, монет %d, время %.1fs", st.Round, st.Coins, st.GameTime)
}

func (s *GameOverState) Update(deltaTime float64) {
	if !inpututil.IsKeyJustPressed(ebiten.KeyR) || s.play.factory == nil {
		return
	}
	game, err := s.play.factory()
	if err != nil {
		logger.Game.Error("Не удалось перезапустить игру: %v", err)
		return
	}
	s.sm.SetState(NewPlayState(s.sm, game, s.play.factory))
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	s.play.Draw(screen)
	st := s.play.game.Status()
	drawOverlay(screen, fmt.Sprintf("BASE DESTROYED IN ROUND %d", st.Round), "press R to restart")
}

func (s *GameOverState) Exit() {}
