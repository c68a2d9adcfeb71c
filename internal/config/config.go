// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1024
	ScreenHeight = 768
	MaxDeltaTime = 0.06

	HUDHeight       = 56
	HUDPadding      = 8
	HUDButtonWidth  = 96
	HUDButtonHeight = 40

	HealthBarHeight = 4
	StrokeWidth     = 2.0
)

var (
	BackgroundColor   = color.RGBA{20, 20, 30, 255}
	PathColor         = color.RGBA{90, 80, 60, 255}
	ZoneColor         = color.RGBA{150, 70, 70, 60}
	BaseColor         = color.RGBA{50, 205, 50, 255}
	SpawnColor        = color.RGBA{220, 60, 60, 255}
	HUDColor          = color.RGBA{30, 34, 48, 235}
	ButtonColor       = color.RGBA{70, 130, 180, 220}
	ButtonHoverColor  = color.RGBA{100, 160, 210, 235}
	ButtonActiveColor = color.RGBA{220, 160, 60, 235}
	TextLightColor    = color.RGBA{240, 240, 240, 255}
	TextDarkColor     = color.RGBA{20, 20, 30, 255}
	RangeColor        = color.RGBA{255, 255, 255, 60}
	BlockedColor      = color.RGBA{255, 40, 40, 140}
	SelectedColor     = color.RGBA{255, 215, 0, 255}
	ProjectileColor   = color.RGBA{255, 240, 120, 255}
	HealthBackColor   = color.RGBA{60, 0, 0, 255}
	HealthColor       = color.RGBA{80, 220, 80, 255}

	EnemyColors = map[string]color.RGBA{
		"grunt":  {200, 60, 60, 255},
		"runner": {230, 140, 40, 255},
		"brute":  {140, 40, 160, 255},
	}
	TowerColors = map[string]color.RGBA{
		"basic":  {50, 100, 255, 255},
		"sniper": {50, 200, 120, 255},
		"fan":    {180, 50, 230, 255},
	}
	FallbackColor = color.RGBA{128, 128, 128, 255}
)
