package scenes

import (
	"math/rand"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/grimhold/rockbuster/assets"
	cfg "github.com/grimhold/rockbuster/config"
	"github.com/grimhold/rockbuster/events"
	"github.com/grimhold/rockbuster/shared/gameclock"
	"github.com/grimhold/rockbuster/shared/leveldata"
	"github.com/grimhold/rockbuster/systems"
	"github.com/grimhold/rockbuster/systems/factory"
	"github.com/grimhold/rockbuster/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// StageScene runs one level of the game. Restarting tears the whole
// world down and rebuilds it; the session singleton and its hub live
// and die with the world.
type StageScene struct {
	ecs       *ecs.ECS
	levelPath string // optional TMX on disk, empty = embedded default
	pauseUI   *ui.PauseUI
	once      sync.Once
}

func NewStageScene(levelPath string) *StageScene {
	return &StageScene{levelPath: levelPath}
}

func (s *StageScene) Update() {
	s.once.Do(s.configure)

	session := systems.GetSession(s.ecs)
	if session.RestartRequested {
		cfg.Logger().Info("restarting stage")
		s.configure()
		session = systems.GetSession(s.ecs)
	}

	s.ecs.Update()

	if session.Paused {
		s.pauseUI.UI.Update()
	}
}

func (s *StageScene) Draw(screen *ebiten.Image) {
	s.ecs.Draw(screen)
	if systems.GetSession(s.ecs).Paused {
		s.pauseUI.UI.Draw(screen)
	}
}

func (s *StageScene) configure() {
	e := ecs.NewECS(donburi.NewWorld())
	s.ecs = e

	factory.CreateSession(e,
		gameclock.NewReal(),
		rand.New(rand.NewSource(time.Now().UnixNano())))
	factory.BuildLevel(e, s.loadLevel())
	s.subscribeObservers()

	// Audio and input run always; everything between pause and camera
	// is gated on the live-simulation checks.
	e.AddSystem(systems.UpdateAudio)
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdatePause)
	e.AddSystem(systems.UpdateSession)

	e.AddSystem(systems.WithGameplayChecks(systems.UpdateCleanup))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdatePlayerStates))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdatePlayer))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateEnemies))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdatePhysics))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateCollisions))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateProjectiles))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateHitTests))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateDamage))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateCamera))

	e.AddRenderer(cfg.Default, systems.DrawWorld)
	e.AddRenderer(cfg.Default, systems.DrawHUD)

	s.pauseUI = ui.NewPauseUI(
		func() { systems.GetSession(s.ecs).Paused = false },
		func() { systems.GetSession(s.ecs).RestartRequested = true },
		func() bool {
			audioData := systems.GetOrCreateAudio(s.ecs)
			audioData.Muted = !audioData.Muted
			return audioData.Muted
		},
	)
	s.pauseUI.SetMuted(systems.GetOrCreateAudio(e).Muted)
}

// loadLevel picks the TMX from disk if a path was given, then the
// embedded stage, then the built-in grid as the last resort.
func (s *StageScene) loadLevel() *leveldata.Level {
	if s.levelPath != "" {
		dir, file := filepath.Split(s.levelPath)
		if dir == "" {
			dir = "."
		}
		level, err := leveldata.LoadTMX(os.DirFS(dir), file)
		if err == nil {
			return level
		}
		cfg.Logger().Warn("level file failed to load, falling back", "path", s.levelPath, "err", err)
	}

	level, err := leveldata.LoadTMX(assets.LevelFS(), "levels/level1.tmx")
	if err == nil {
		return level
	}
	cfg.Logger().Warn("embedded level failed to load, using built-in stage", "err", err)
	return leveldata.Stage1(cfg.C.TileSize)
}

// subscribeObservers wires the reactive subsystems to the event hub.
// Insertion order is delivery order: score and health settle before
// sound and achievements react.
func (s *StageScene) subscribeObservers() {
	session := systems.GetSession(s.ecs)
	hub := session.Hub

	score := &events.ScoreObserver{Keeper: session}
	hub.Subscribe(events.EnemyDefeated, score)
	hub.Subscribe(events.ItemCollected, score)

	health := &events.HealthObserver{Healer: &systems.PlayerHealer{ECS: s.ecs}}
	hub.Subscribe(events.ItemCollected, health)

	sound := &events.SoundObserver{Player: &systems.SoundQueue{ECS: s.ecs}}
	hub.Subscribe(events.EnemyDefeated, sound)
	hub.Subscribe(events.ItemCollected, sound)
	hub.Subscribe(events.PlayerHit, sound)
	hub.Subscribe(events.LevelComplete, sound)

	achievements := events.NewAchievementObserver()
	hub.Subscribe(events.EnemyDefeated, achievements)
	hub.Subscribe(events.LevelComplete, achievements)
}
