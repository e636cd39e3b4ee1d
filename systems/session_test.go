package systems

import (
	"testing"

	"github.com/grimhold/rockbuster/components"
	cfg "github.com/grimhold/rockbuster/config"
	"github.com/grimhold/rockbuster/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

func TestPauseTogglesOnEdge(t *testing.T) {
	e, _ := newSimWorld(800, 480)
	session := GetSession(e)

	SetActions(e, cfg.ActionPause)
	UpdatePause(e)
	if !session.Paused {
		t.Fatal("pause press did not pause")
	}

	// Holding the key is not a second press.
	SetActions(e, cfg.ActionPause)
	UpdatePause(e)
	if !session.Paused {
		t.Error("held pause key toggled again")
	}

	SetActions(e)
	UpdatePause(e)
	SetActions(e, cfg.ActionPause)
	UpdatePause(e)
	if session.Paused {
		t.Error("second press did not resume")
	}
}

func TestPauseIgnoredAfterSessionEnds(t *testing.T) {
	e, _ := newSimWorld(800, 480)
	session := GetSession(e)
	session.GameOver = true

	SetActions(e, cfg.ActionPause)
	UpdatePause(e)
	if session.Paused {
		t.Error("paused a finished session")
	}
}

func TestGameplayChecksGateSystems(t *testing.T) {
	e, _ := newSimWorld(800, 480)
	session := GetSession(e)

	ran := 0
	system := WithGameplayChecks(func(*ecs.ECS) { ran++ })

	system(e)
	if ran != 1 {
		t.Fatalf("live session: system ran %d times, want 1", ran)
	}

	session.Paused = true
	system(e)
	session.Paused = false
	session.GameOver = true
	system(e)
	session.GameOver = false
	session.LevelComplete = true
	system(e)

	if ran != 1 {
		t.Errorf("gated session: system ran %d extra times", ran-1)
	}
}

func TestRestartRequestedOnlyAfterEnd(t *testing.T) {
	e, _ := newSimWorld(800, 480)
	session := GetSession(e)

	SetActions(e, cfg.ActionRestart)
	UpdateSession(e)
	if session.RestartRequested {
		t.Fatal("restart honored while the session was live")
	}

	session.GameOver = true
	SetActions(e)
	UpdateSession(e)
	SetActions(e, cfg.ActionRestart)
	UpdateSession(e)
	if !session.RestartRequested {
		t.Error("restart press after game over not honored")
	}
}

func TestCameraKeepsPlayerAnchored(t *testing.T) {
	e, _ := newSimWorld(2000, 480)
	player := factory.CreatePlayer(e, 1000, 100)
	obj := components.Object.Get(player)

	UpdateCamera(e)

	levelEntry, _ := components.Level.First(e.World)
	level := components.Level.Get(levelEntry)
	anchor := float64(cfg.C.Width)/2 - obj.W/2
	if want := obj.X - anchor; level.ScrollX != want {
		t.Errorf("scroll = %v, want %v", level.ScrollX, want)
	}

	// Near the edges the camera clamps instead of following.
	obj.X = 10
	UpdateCamera(e)
	if level.ScrollX != 0 {
		t.Errorf("left edge scroll = %v, want 0", level.ScrollX)
	}

	obj.X = 1990
	UpdateCamera(e)
	if want := float64(2000 - cfg.C.Width); level.ScrollX != want {
		t.Errorf("right edge scroll = %v, want %v", level.ScrollX, want)
	}
}
