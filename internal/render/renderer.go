// internal/render/renderer.go
package render

import (
	"image/color"
	"math"

	"go-waypoint-defense/internal/app"
	"go-waypoint-defense/internal/config"
	"go-waypoint-defense/internal/level"
	"go-waypoint-defense/pkg/geom"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Renderer рисует уровень и сущности из снимка состояния.
// Сам ничего не знает о симуляции.
type Renderer struct {
	level    *level.Level
	colors   MapColors
	mapImage *ebiten.Image // предрендеренная статичная карта
}

func NewRenderer(lvl *level.Level, colors MapColors) *Renderer {
	return &Renderer{level: lvl, colors: colors}
}

// RenderMapImage draws the static path and zones once.
func (r *Renderer) RenderMapImage() {
	img := ebiten.NewImage(config.ScreenWidth, config.ScreenHeight)
	img.Fill(r.colors.BackgroundColor)

	for _, z := range r.level.Zones {
		vector.DrawFilledRect(img, float32(z.Rect.X), float32(z.Rect.Y), float32(z.Rect.W), float32(z.Rect.H), r.colors.ZoneColor, false)
	}

	points := r.level.Path.Points()
	for i := 1; i < len(points); i++ {
		a, b := points[i-1], points[i]
		vector.StrokeLine(img, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), r.colors.PathWidth, r.colors.PathColor, true)
		vector.DrawFilledCircle(img, float32(b.X), float32(b.Y), r.colors.PathWidth/2, r.colors.PathColor, true)
	}
	start, end := points[0], points[len(points)-1]
	vector.DrawFilledCircle(img, float32(start.X), float32(start.Y), r.colors.PathWidth/2, r.colors.SpawnColor, true)
	vector.DrawFilledCircle(img, float32(end.X), float32(end.Y), r.colors.PathWidth/2+4, r.colors.BaseColor, true)

	r.mapImage = img
}

func (r *Renderer) Draw(screen *ebiten.Image, snap app.Snapshot) {
	if r.mapImage == nil {
		r.RenderMapImage()
	}
	screen.DrawImage(r.mapImage, nil)

	for _, e := range snap.Entities {
		switch e.Kind {
		case app.KindEnemy:
			r.drawEnemy(screen, e)
		case app.KindTower:
			r.drawTower(screen, e)
		case app.KindProjectile:
			r.drawProjectile(screen, e)
		}
	}
}

func (r *Renderer) drawEnemy(screen *ebiten.Image, e app.EntityView) {
	box := geom.RectAt(e.Position, e.W, e.H)
	vector.DrawFilledRect(screen, float32(box.X), float32(box.Y), float32(box.W), float32(box.H), EnemyColor(e.DefID), false)

	// Полоска здоровья над врагом
	barY := float32(box.Y) - config.HealthBarHeight - 2
	vector.DrawFilledRect(screen, float32(box.X), barY, float32(box.W), config.HealthBarHeight, config.HealthBackColor, false)
	vector.DrawFilledRect(screen, float32(box.X), barY, float32(box.W*e.HealthRatio), config.HealthBarHeight, config.HealthColor, false)
}

func (r *Renderer) drawTower(screen *ebiten.Image, e app.EntityView) {
	cx, cy := float32(e.Position.X), float32(e.Position.Y)
	if e.ShowRange {
		rangeColor := config.RangeColor
		if e.Blocked {
			rangeColor = config.BlockedColor
		}
		vector.StrokeCircle(screen, cx, cy, float32(e.Range), r.colors.StrokeWidth, rangeColor, true)
	}

	fill := TowerColor(e.DefID)
	if e.Pending {
		fill = DarkenColor(fill)
	}
	box := geom.RectAt(e.Position, e.W, e.H)
	vector.DrawFilledRect(screen, float32(box.X), float32(box.Y), float32(box.W), float32(box.H), fill, false)

	var outline color.Color = config.TextDarkColor
	switch {
	case e.Blocked:
		outline = config.BlockedColor
	case e.Selected:
		outline = config.SelectedColor
	}
	vector.StrokeRect(screen, float32(box.X), float32(box.Y), float32(box.W), float32(box.H), r.colors.StrokeWidth, outline, false)

	// Ствол по направлению прицела
	barrel := geom.FromAngle(e.Angle).Scale(e.W * 0.6)
	vector.StrokeLine(screen, cx, cy, cx+float32(barrel.X), cy+float32(barrel.Y), 3, config.TextLightColor, true)
}

func (r *Renderer) drawProjectile(screen *ebiten.Image, e app.EntityView) {
	half := geom.FromAngle(e.Angle).Scale(e.W / 2)
	a, b := e.Position.Sub(half), e.Position.Add(half)
	width := float32(math.Max(e.H, 1))
	vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), width, config.ProjectileColor, true)
}
