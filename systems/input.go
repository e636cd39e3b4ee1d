package systems

import (
	cfg "github.com/grimhold/rockbuster/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdateInput polls the keyboard and updates the input singleton.
// Must run before any system that reads actions.
func UpdateInput(ecs *ecs.ECS) {
	input := GetInput(ecs)

	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
				break
			}
		}
	}
}

// SetActions overrides the polled state for this frame, keeping the
// previous frame for edge detection. Tests drive the simulation with
// it instead of a real keyboard.
func SetActions(ecs *ecs.ECS, held ...cfg.ActionID) {
	input := GetInput(ecs)
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	for _, a := range held {
		input.Current[a] = true
	}
}
