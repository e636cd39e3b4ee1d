package factory

import (
	"github.com/grimhold/rockbuster/archetypes"
	"github.com/grimhold/rockbuster/components"
	cfg "github.com/grimhold/rockbuster/config"
	"github.com/grimhold/rockbuster/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	obj := resolv.NewObject(x, y, cfg.Player.Width, cfg.Player.Height)
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	obj.AddTags("character", tags.ResolvPlayer)
	obj.Data = player
	addToSpace(ecs, obj)

	components.Player.SetValue(player, components.PlayerData{
		Direction: cfg.DirectionRight,
	})
	components.State.SetValue(player, components.StateData{
		CurrentState:  cfg.StateIdle,
		PreviousState: cfg.StateNone,
		StateTimer:    0,
	})
	components.Physics.SetValue(player, components.PhysicsData{
		Gravity: cfg.Player.Gravity,
	})
	components.Health.SetValue(player, components.HealthData{
		Current: cfg.Player.MaxHealth,
		Max:     cfg.Player.MaxHealth,
	})
	components.Stats.SetValue(player, components.StatsData{
		BaseSpeed:     cfg.Player.Speed,
		BaseStrength:  float64(cfg.Player.BaseStrength),
		BaseDefense:   float64(cfg.Player.BaseDefense),
		BaseMaxHealth: float64(cfg.Player.MaxHealth),
	})
	components.Sprite.SetValue(player, components.SpriteData{Visible: true})

	return player
}
