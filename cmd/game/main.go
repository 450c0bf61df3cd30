// cmd/game/main.go
package main

import (
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"go-ninja-idle/internal/app"
	"go-ninja-idle/internal/config"
	"go-ninja-idle/internal/defs"
	"go-ninja-idle/internal/event"
	"go-ninja-idle/internal/state"
	"go-ninja-idle/internal/stats"
	"go-ninja-idle/internal/storage"
	"go-ninja-idle/internal/stream"
	"go-ninja-idle/internal/utils"
)

const (
	startZone    = "ZONE_FOREST"
	maxDeltaTime = 0.06
	saveInterval = 15 * time.Second
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > maxDeltaTime {
		deltaTime = maxDeltaTime
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
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		With().Timestamp().Logger()

	settings, err := config.LoadSettings(".")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load settings")
	}
	if level, err := zerolog.ParseLevel(settings.LogLevel); err == nil {
		log = log.Level(level)
	}

	lib, err := defs.LoadLibrary("assets")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load definitions")
	}
	log.Info().Int("enemies", len(lib.Enemies)).Int("zones", len(lib.Zones)).
		Int("abilities", len(lib.Abilities)).Msg("definitions loaded")

	store, err := storage.Open(settings.SavePath, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open save store")
	}

	dispatcher := event.NewDispatcher()
	ninja := stats.NewNinja(dispatcher)
	if rec, ok, err := store.LoadNinja(); err != nil {
		log.Error().Err(err).Msg("loading ninja save")
	} else if ok {
		ninja.Level = rec.Level
		ninja.Experience = rec.Experience
		ninja.Gold = rec.Gold
		ninja.Gems = rec.Gems
	}

	rng := utils.NewPRNGService(settings.Seed)
	combat := app.NewCombat(lib, startZone, ninja, dispatcher, rng, log)

	if rec, ok, err := store.LoadProgress(startZone); err != nil {
		log.Error().Err(err).Msg("loading zone progress")
	} else if ok {
		combat.RestoreProgress(rec.Level, rec.Kills)
	}

	if settings.Spectator.Enabled {
		spectator := stream.NewServer(settings.Spectator.Addr, log)
		combat.SetSnapshotListener(func(s *app.Snapshot) { spectator.Broadcast(s) })
		go spectator.Run()
		defer spectator.Close()
		log.Info().Str("addr", settings.Spectator.Addr).Msg("spectator feed enabled")
	}

	saver := storage.NewAutoSaver(store, combat.Snapshot, saveInterval)

	sm := state.NewStateMachine()
	sm.SetState(state.NewMenuState(sm, func() state.State {
		return state.NewGameState(sm, combat, saver)
	}))

	appGame := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Ninja Idle")
	if err := ebiten.RunGame(appGame); err != nil {
		log.Fatal().Err(err).Msg("game loop ended")
	}
}
