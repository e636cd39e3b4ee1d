package systems

import (
	"math/rand"
	"time"

	"github.com/grimhold/rockbuster/archetypes"
	"github.com/grimhold/rockbuster/components"
	cfg "github.com/grimhold/rockbuster/config"
	"github.com/grimhold/rockbuster/events"
	"github.com/grimhold/rockbuster/shared/gameclock"
	"github.com/yohamta/donburi/ecs"
)

// GetSession returns the session singleton for this ECS, creating a
// default one if the scene has not set one up.
func GetSession(e *ecs.ECS) *components.SessionData {
	entry, ok := components.Session.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Session))
		components.Session.SetValue(entry, components.SessionData{
			Hub:   events.NewHub(),
			Clock: gameclock.NewReal(),
			Rand:  rand.New(rand.NewSource(time.Now().UnixNano())),
		})
	}
	return components.Session.Get(entry)
}

// GetInput returns the input singleton for this ECS, creating it if
// needed.
func GetInput(e *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(e.World)
	if !ok {
		entry = archetypes.Input.Spawn(e)
		components.Input.SetValue(entry, components.InputData{})
	}
	return components.Input.Get(entry)
}

// UpdateSession handles the restart request once a session has ended.
// The scene owning this ECS watches RestartRequested and rebuilds the
// world.
func UpdateSession(e *ecs.ECS) {
	session := GetSession(e)
	if !session.GameOver && !session.LevelComplete {
		return
	}
	if GetInput(e).JustPressed(cfg.ActionRestart) {
		session.RestartRequested = true
	}
}
