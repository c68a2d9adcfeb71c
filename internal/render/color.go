// internal/render/color.go
package render

import (
	"image/color"

	"go-waypoint-defense/internal/config"
)

// MapColors holds all the color definitions needed to render the static map background.
type MapColors struct {
	BackgroundColor color.RGBA
	PathColor       color.RGBA
	ZoneColor       color.RGBA
	SpawnColor      color.RGBA
	BaseColor       color.RGBA
	PathWidth       float32
	StrokeWidth     float32
}

// DefaultMapColors reads the palette from config.
func DefaultMapColors() MapColors {
	return MapColors{
		BackgroundColor: config.BackgroundColor,
		PathColor:       config.PathColor,
		ZoneColor:       config.ZoneColor,
		SpawnColor:      config.SpawnColor,
		BaseColor:       config.BaseColor,
		PathWidth:       24,
		StrokeWidth:     float32(config.StrokeWidth),
	}
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// EnemyColor returns the palette entry of an enemy archetype.
func EnemyColor(defID string) color.RGBA {
	if c, ok := config.EnemyColors[defID]; ok {
		return c
	}
	return config.FallbackColor
}

// TowerColor returns the palette entry of a tower archetype.
func TowerColor(defID string) color.RGBA {
	if c, ok := config.TowerColors[defID]; ok {
		return c
	}
	return config.FallbackColor
}
