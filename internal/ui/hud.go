// internal/ui/hud.go
package ui

import (
	"fmt"
	"strings"

	"go-waypoint-defense/internal/app"
	"go-waypoint-defense/internal/config"
	"go-waypoint-defense/internal/defs"
	"go-waypoint-defense/pkg/geom"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

const flashDuration = 2.0 // секунды показа сообщения

// HUD — нижняя панель: кнопки башен и команд, строка состояния.
type HUD struct {
	Buttons []*Button
	Bounds  geom.Rect
	face    font.Face

	flash      string
	flashTimer float64
}

// NewHUD lays out one button per tower archetype (in library order) followed
// by the command buttons.
func NewHUD(library *defs.Library) *HUD {
	top := float64(config.ScreenHeight - config.HUDHeight)
	h := &HUD{
		Bounds: geom.Rect{X: 0, Y: top, W: config.ScreenWidth, H: config.HUDHeight},
		face:   basicfont.Face7x13,
	}

	x := float64(config.HUDPadding)
	y := top + (config.HUDHeight-config.HUDButtonHeight)/2
	add := func(label string, action Action, defID string) {
		h.Buttons = append(h.Buttons, &Button{
			Rect:   geom.Rect{X: x, Y: y, W: config.HUDButtonWidth, H: config.HUDButtonHeight},
			Text:   label,
			Action: action,
			DefID:  defID,
		})
		x += config.HUDButtonWidth + config.HUDPadding
	}

	for i, id := range library.TowerOrder {
		def, _ := library.Tower(id)
		add(fmt.Sprintf("%d %s %d", i+1, def.Name, def.Cost), ActionPlaceTower, id)
	}
	add("U Upgrade", ActionUpgrade, "")
	add("N Round", ActionNewRound, "")
	add("A Auto", ActionToggleAuto, "")
	add("P Pause", ActionPause, "")
	return h
}

// Contains reports whether p is over the HUD, which keeps the click away
// from the map.
func (h *HUD) Contains(p geom.Vec2) bool {
	return h.Bounds.Contains(p)
}

// ButtonAt returns the button under p, or nil.
func (h *HUD) ButtonAt(p geom.Vec2) *Button {
	for _, b := range h.Buttons {
		if b.Contains(p) {
			return b
		}
	}
	return nil
}

// Click returns the button hit by a click at p. Disabled buttons swallow the
// click without an action.
func (h *HUD) Click(p geom.Vec2) (*Button, bool) {
	b := h.ButtonAt(p)
	if b == nil || b.Disabled {
		return nil, false
	}
	b.HandleClick()
	return b, true
}

// Flash shows a short message above the panel.
func (h *HUD) Flash(format string, args ...any) {
	h.flash = fmt.Sprintf(format, args...)
	h.flashTimer = flashDuration
}

// FlashText returns the message currently shown, if any.
func (h *HUD) FlashText() string {
	if h.flashTimer <= 0 {
		return ""
	}
	return h.flash
}

func (h *HUD) Update(deltaTime float64, status app.Status) {
	if h.flashTimer > 0 {
		h.flashTimer -= deltaTime
	}
	for _, b := range h.Buttons {
		switch b.Action {
		case ActionPlaceTower:
			b.Active = status.Pending == b.DefID
		case ActionUpgrade:
			b.Disabled = status.Selected == nil || !status.Selected.CanUpgrade
		case ActionNewRound:
			b.Disabled = !status.RoundCompleted || status.AutoAdvance
		case ActionToggleAuto:
			b.Active = status.AutoAdvance
		}
	}
}

func (h *HUD) Draw(screen *ebiten.Image, status app.Status, pointer geom.Vec2) {
	vector.DrawFilledRect(screen, float32(h.Bounds.X), float32(h.Bounds.Y), float32(h.Bounds.W), float32(h.Bounds.H), config.HUDColor, false)
	for _, b := range h.Buttons {
		b.Draw(screen, h.face, b.Contains(pointer))
	}

	text.Draw(screen, StatusLine(status), h.face, config.HUDPadding, 18, config.TextLightColor)
	if s := status.Selected; s != nil {
		line := fmt.Sprintf("%s lv.%d  range %.0f  every %.2fs  dmg %d  upgrade %d",
			s.DefID, s.Level, s.Range, s.FireInterval, s.Damage, s.UpgradeCost)
		text.Draw(screen, line, h.face, config.HUDPadding, 36, config.SelectedColor)
	}
	if msg := h.FlashText(); msg != "" {
		bounds := text.BoundString(h.face, msg)
		x := (config.ScreenWidth - bounds.Dx()) / 2
		text.Draw(screen, msg, h.face, x, int(h.Bounds.Y)-12, config.TextLightColor)
	}
}

// StatusLine formats the top status row.
func StatusLine(s app.Status) string {
	round := "-"
	if s.Round > 0 {
		round = toRoman(s.Round)
	}
	state := "running"
	if s.RoundCompleted {
		state = "idle"
	}
	auto := "off"
	if s.AutoAdvance {
		auto = "on"
	}
	return fmt.Sprintf("Round %s (%s)  Enemies %d/%d/%d  Coins %d  Base %d/%d  Auto %s",
		round, state, s.EnemiesKilled, s.EnemiesSpawned, s.TotalEnemies, s.Coins, s.BaseHealth, s.BaseHealthMax, auto)
}

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}
