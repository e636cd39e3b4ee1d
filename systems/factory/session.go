package factory

import (
	"math/rand"

	"github.com/grimhold/rockbuster/archetypes"
	"github.com/grimhold/rockbuster/components"
	"github.com/grimhold/rockbuster/events"
	"github.com/grimhold/rockbuster/shared/gameclock"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSession spawns the session singleton with its event hub, clock,
// and random source. One per scene; torn down with the scene's world.
func CreateSession(ecs *ecs.ECS, clock gameclock.Clock, rng *rand.Rand) *donburi.Entry {
	session := archetypes.Session.Spawn(ecs)
	components.Session.SetValue(session, components.SessionData{
		Hub:   events.NewHub(),
		Clock: clock,
		Rand:  rng,
	})
	return session
}
