package components

import "github.com/yohamta/donburi"

type PlayerData struct {
	Direction float64 // facing, config.DirectionLeft or DirectionRight

	// Shooting. LastShot gates the fire rate; the cooldown is shared
	// across all three shooting states.
	LastShot int64 // clock ms of the most recent shot, 0 = never

	// Invincibility window after taking damage.
	InvincibleSince int64 // clock ms, 0 = not invincible

	// Walk-cycle animation, advanced on its own interval independent
	// of the shoot cooldown.
	AnimFrame    int
	LastAnimStep int64 // clock ms of the last frame advance
}

var Player = donburi.NewComponentType[PlayerData]()
