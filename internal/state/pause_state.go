// internal/state/pause_state.go
package state

import (
	"image/color"

	"go-waypoint-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState замораживает симуляцию: предыдущее состояние не обновляется,
// только рисуется под затемнением.
type PauseState struct {
	stateMachine  *StateMachine
	previousState State
}

func NewPauseState(sm *StateMachine, prevState State) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.stateMachine.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	if s.previousState != nil {
		s.previousState.Draw(screen)
	}
	drawOverlay(screen, "PAUSED", "press P to resume")
}

func (s *PauseState) Exit() {}

// drawOverlay затемняет экран и пишет заголовок по центру.
func drawOverlay(screen *ebiten.Image, title, hint string) {
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, color.RGBA{0, 0, 0, 128}, false)

	face := basicfont.Face7x13
	titleBounds := text.BoundString(face, title)
	text.Draw(screen, title, face, (config.ScreenWidth-titleBounds.Dx())/2, config.ScreenHeight/2-10, config.TextLightColor)
	hintBounds := text.BoundString(face, hint)
	text.Draw(screen, hint, face, (config.ScreenWidth-hintBounds.Dx())/2, config.ScreenHeight/2+14, config.TextLightColor)
}
