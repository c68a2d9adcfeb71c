// internal/ui/button.go
package ui

import (
	"image/color"
	"math"
	"time"

	"go-waypoint-defense/internal/config"
	"go-waypoint-defense/pkg/geom"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Action — команда, которую кнопка HUD передаёт игровому состоянию.
type Action int

const (
	ActionNone Action = iota
	ActionPlaceTower
	ActionUpgrade
	ActionNewRound
	ActionToggleAuto
	ActionPause
)

// Button представляет собой кликабельную кнопку в UI.
type Button struct {
	Rect          geom.Rect
	Text          string
	Action        Action
	DefID         string // архетип для ActionPlaceTower
	Active        bool   // подсветка включённого режима
	Disabled      bool
	LastClickTime time.Time
}

// Contains reports whether p lies on the button.
func (b *Button) Contains(p geom.Vec2) bool {
	return b.Rect.Contains(p)
}

// HandleClick запоминает время клика для анимации.
func (b *Button) HandleClick() {
	b.LastClickTime = time.Now()
}

// Draw отрисовывает кнопку.
func (b *Button) Draw(screen *ebiten.Image, face font.Face, hover bool) {
	var bg color.RGBA
	switch {
	case b.Disabled:
		bg = config.HUDColor
	case b.Active:
		bg = config.ButtonActiveColor
	case hover:
		bg = config.ButtonHoverColor
	default:
		bg = config.ButtonColor
	}

	// Короткое «вздутие» после клика
	elapsed := time.Since(b.LastClickTime).Seconds()
	grow := float32(4 * math.Exp(-elapsed*8))

	x, y := float32(b.Rect.X)-grow/2, float32(b.Rect.Y)-grow/2
	w, h := float32(b.Rect.W)+grow, float32(b.Rect.H)+grow
	vector.DrawFilledRect(screen, x, y, w, h, bg, true)
	vector.StrokeRect(screen, x, y, w, h, config.StrokeWidth, config.TextLightColor, true)

	bounds := text.BoundString(face, b.Text)
	textX := int(b.Rect.X) + (int(b.Rect.W)-bounds.Dx())/2
	textY := int(b.Rect.Y) + (int(b.Rect.H)-bounds.Dy())/2 - bounds.Min.Y
	text.Draw(screen, b.Text, face, textX, textY, config.TextLightColor)
}
