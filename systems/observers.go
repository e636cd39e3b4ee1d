package systems

import (
	"github.com/grimhold/rockbuster/components"
	"github.com/yohamta/donburi/ecs"
)

// PlayerHealer adapts the player's health to the event observers.
// Implements events.Healer.
type PlayerHealer struct {
	ECS *ecs.ECS
}

func (h *PlayerHealer) HealPlayer(amount int) {
	entry, ok := components.Player.First(h.ECS.World)
	if !ok || entry.HasComponent(components.Death) {
		return
	}
	components.Health.Get(entry).Heal(amount)
}
