package systems

import (
	"github.com/grimhold/rockbuster/components"
	cfg "github.com/grimhold/rockbuster/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera keeps the player at a fixed horizontal screen position
// by scrolling the world under it, clamped to the level bounds.
func UpdateCamera(ecs *ecs.ECS) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	playerEntry, ok := components.Player.First(ecs.World)
	if !ok {
		return
	}

	level := components.Level.Get(levelEntry)
	obj := components.Object.Get(playerEntry)

	anchor := float64(cfg.C.Width)/2 - obj.W/2
	scroll := obj.X - anchor

	if scroll < 0 {
		scroll = 0
	}
	if max := float64(level.Current.Width - cfg.C.Width); scroll > max {
		scroll = max
	}
	level.ScrollX = scroll
}
