package components

import (
	"github.com/grimhold/rockbuster/config"
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	TypeName   string                  // "sentry", "flitter", "golem"
	TypeConfig *config.EnemyTypeConfig // cached reference to type configuration
	Direction  float64

	// Sentry
	LastFired int64 // clock ms of the last volley, 0 = never

	// Flitter patrol. The flyer oscillates around its spawn point,
	// each axis reversing independently at its amplitude.
	OriginX      float64
	OriginY      float64
	PatrolSpeedX float64
	PatrolSpeedY float64

	// Golem
	Phase      config.GolemPhase
	PhaseStart int64 // clock ms the current phase began
}

var Enemy = donburi.NewComponentType[EnemyData]()
