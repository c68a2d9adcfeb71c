// internal/app/bootstrap.go
package app

import (
	"fmt"

	"go-waypoint-defense/internal/config"
	"go-waypoint-defense/internal/defs"
	"go-waypoint-defense/internal/level"
	"go-waypoint-defense/internal/logger"
)

// Sources names the files a session is built from. Empty fields fall back to
// the embedded defaults.
type Sources struct {
	LevelPath   string
	EnemiesPath string
	TowersPath  string
	RulesPath   string
}

// Resources is everything NewGame needs, loaded once at startup.
type Resources struct {
	Level   *level.Level
	Library *defs.Library
	Rules   config.Rules
}

// LoadResources reads and validates level geometry, archetypes and rules.
// Any error is a fatal configuration error for the caller.
func LoadResources(src Sources) (*Resources, error) {
	var (
		res Resources
		err error
	)

	if src.LevelPath != "" {
		res.Level, err = level.Load(src.LevelPath)
	} else {
		res.Level, err = level.Default()
	}
	if err != nil {
		return nil, fmt.Errorf("load level: %w", err)
	}

	switch {
	case src.EnemiesPath == "" && src.TowersPath == "":
		res.Library, err = defs.Default()
	case src.EnemiesPath != "" && src.TowersPath != "":
		res.Library, err = defs.Load(src.EnemiesPath, src.TowersPath)
	default:
		err = fmt.Errorf("enemies and towers files must be given together")
	}
	if err != nil {
		return nil, fmt.Errorf("load archetypes: %w", err)
	}

	res.Rules = config.DefaultRules()
	if src.RulesPath != "" {
		if res.Rules, err = config.LoadRules(src.RulesPath); err != nil {
			return nil, fmt.Errorf("load rules: %w", err)
		}
	}

	logger.Config.Info("Уровень %q: %d точек маршрута, %d зон; врагов %d, башен %d",
		res.Level.Name, res.Level.Path.Len(), len(res.Level.Zones), len(res.Library.Enemies), len(res.Library.Towers))
	return &res, nil
}

// NewGameFrom builds a Game from loaded resources.
func NewGameFrom(res *Resources) (*Game, error) {
	return NewGame(res.Level, res.Library, res.Rules)
}
