// cmd/simulate/main.go
//
// simulate runs a session without a window: it places a scripted set of
// towers, turns on auto-advance and ticks at a fixed step until the base
// falls or the time budget runs out.
package main

import (
	"flag"
	"strings"

	"go-waypoint-defense/internal/app"
	"go-waypoint-defense/internal/logger"
	"go-waypoint-defense/internal/sim"
)

func main() {
	var src app.Sources
	flag.StringVar(&src.LevelPath, "level", "", "level YAML (default: embedded)")
	flag.StringVar(&src.EnemiesPath, "enemies", "", "enemy archetypes YAML")
	flag.StringVar(&src.TowersPath, "towers", "", "tower archetypes YAML")
	flag.StringVar(&src.RulesPath, "rules", "", "gameplay rules YAML")
	towers := flag.String("place", "basic@240,240;basic@380,390;basic@640,400",
		"towers to place as id@x,y separated by ';'")
	duration := flag.Float64("duration", 300, "simulated seconds")
	step := flag.Float64("dt", 1.0/60, "tick length in seconds")
	seed := flag.Int64("seed", 1, "PRNG seed, 0 = clock")
	logLevel := flag.String("log-level", "info", "debug, info, warn, error")
	flag.Parse()

	level, err := logger.ParseLevel(*logLevel)
	if err != nil {
		logger.Config.Fatal("%v", err)
	}
	logger.SetGlobalLogLevel(level)

	res, err := app.LoadResources(src)
	if err != nil {
		logger.Config.Fatal("%v", err)
	}
	res.Rules.Seed = *seed
	res.Rules.AutoAdvance = true

	placements, err := sim.ParsePlacements(*towers)
	if err != nil {
		logger.Config.Fatal("-place: %v", err)
	}
	game, err := app.NewGameFrom(res)
	if err != nil {
		logger.Config.Fatal("%v", err)
	}

	runner := sim.NewRunner(game, *step)
	for _, p := range placements {
		if err := runner.Place(p); err != nil {
			logger.Game.Warn("Башня %s в (%.0f, %.0f) не поставлена: %v", p.DefID, p.At.X, p.At.Y, err)
		}
	}
	if err := game.StartNewRound(); err != nil {
		logger.Game.Warn("%v", err)
	}
	summary := runner.Run(*duration)

	logger.Game.Info("Итог: %s", strings.TrimSpace(summary.String()))
}
