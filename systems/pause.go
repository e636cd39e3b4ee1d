package systems

import (
	cfg "github.com/grimhold/rockbuster/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePause toggles the global pause gate. While paused, the scene
// skips the whole update phase; nothing moves, resolves, or publishes.
func UpdatePause(ecs *ecs.ECS) {
	session := GetSession(ecs)
	if session.GameOver || session.LevelComplete {
		return
	}
	if GetInput(ecs).JustPressed(cfg.ActionPause) {
		session.Paused = !session.Paused
		cfg.Logger().Debug("pause toggled", "paused", session.Paused)
	}
}

// WithGameplayChecks wraps a system so it only runs while the
// simulation is live: not paused, not game over, not level complete.
func WithGameplayChecks(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		session := GetSession(e)
		if session.Paused || session.GameOver || session.LevelComplete {
			return
		}
		system(e)
	}
}
