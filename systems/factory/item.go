package factory

import (
	"math/rand"

	"github.com/grimhold/rockbuster/archetypes"
	"github.com/grimhold/rockbuster/components"
	cfg "github.com/grimhold/rockbuster/config"
	"github.com/grimhold/rockbuster/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateItem spawns a collectable of the named kind. Items pop upward
// and fall until they land.
func CreateItem(ecs *ecs.ECS, x, y float64, kindName string) *donburi.Entry {
	itemType, exists := cfg.Item.Types[kindName]
	if !exists {
		cfg.Logger().Warn("unknown item kind, skipping", "kind", kindName)
		return nil
	}

	item := archetypes.Item.Spawn(ecs)

	obj := resolv.NewObject(x, y, itemType.Width, itemType.Height)
	components.Object.SetValue(item, components.ObjectData{Object: obj})
	obj.AddTags(tags.ResolvItem)
	obj.Data = item
	addToSpace(ecs, obj)

	components.Item.SetValue(item, components.ItemData{
		TypeName:   kindName,
		TypeConfig: &itemType,
	})
	components.Physics.SetValue(item, components.PhysicsData{
		SpeedY:  cfg.Item.PopVelocity,
		Gravity: cfg.Item.Gravity,
	})
	components.Sprite.SetValue(item, components.SpriteData{Visible: true})

	return item
}

// RollDrop maps one uniform roll in [1,100] through the drop cascade.
// The ranges are order-sensitive and non-overlapping; at most one kind
// results. Empty string means no drop.
func RollDrop(rng *rand.Rand) string {
	return dropForRoll(rng.Intn(100) + 1)
}

func dropForRoll(roll int) string {
	switch {
	case roll <= cfg.Item.BigHealCeiling:
		return cfg.ItemBigHeal
	case roll <= cfg.Item.SmallHealCeiling:
		return cfg.ItemSmallHeal
	case roll <= cfg.Item.ScoreCeiling:
		return cfg.ItemScoreOrb
	default:
		return ""
	}
}

// DropRandom rolls the cascade once and spawns the resulting item, if
// any, at the defeated enemy's position.
func DropRandom(ecs *ecs.ECS, rng *rand.Rand, x, y float64) *donburi.Entry {
	kind := RollDrop(rng)
	if kind == "" {
		return nil
	}
	return CreateItem(ecs, x, y, kind)
}
