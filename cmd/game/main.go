// cmd/game/main.go
package main

import (
	"flag"
	"net/http"
	_ "net/http/pprof"
	"time"

	"go-waypoint-defense/internal/app"
	"go-waypoint-defense/internal/config"
	"go-waypoint-defense/internal/logger"
	"go-waypoint-defense/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	var src app.Sources
	flag.StringVar(&src.LevelPath, "level", "", "level YAML (default: embedded)")
	flag.StringVar(&src.EnemiesPath, "enemies", "", "enemy archetypes YAML")
	flag.StringVar(&src.TowersPath, "towers", "", "tower archetypes YAML")
	flag.StringVar(&src.RulesPath, "rules", "", "gameplay rules YAML")
	logLevel := flag.String("log-level", "info", "debug, info, warn, error")
	pprofAddr := flag.String("pprof", "", "serve net/http/pprof on this address, e.g. localhost:6060")
	flag.Parse()

	level, err := logger.ParseLevel(*logLevel)
	if err != nil {
		logger.Config.Fatal("%v", err)
	}
	logger.SetGlobalLogLevel(level)

	if *pprofAddr != "" {
		go func() {
			logger.Game.Warn("pprof: %v", http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	res, err := app.LoadResources(src)
	if err != nil {
		logger.Config.Fatal("%v", err)
	}
	factory := func() (*app.Game, error) { return app.NewGameFrom(res) }
	game, err := factory()
	if err != nil {
		logger.Config.Fatal("%v", err)
	}

	sm := state.NewStateMachine() // Создаём машину состояний
	sm.SetState(state.NewPlayState(sm, game, factory))
	a := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Waypoint Defense: " + res.Level.Name)
	if err := ebiten.RunGame(a); err != nil {
		logger.Game.Fatal("%v", err)
	}
}
