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

// CreateEnemy spawns an enemy of the named kind at x, y. An unknown
// kind is logged and skipped; level data with a typo should not take
// the whole level down.
func CreateEnemy(ecs *ecs.ECS, x, y float64, kindName string) *donburi.Entry {
	enemyType, exists := cfg.Enemy.Types[kindName]
	if !exists {
		cfg.Logger().Warn("unknown enemy kind in level data, skipping", "kind", kindName, "x", x, "y", y)
		return nil
	}

	enemy := archetypes.Enemy.Spawn(ecs)

	obj := resolv.NewObject(x, y, enemyType.Width, enemyType.Height)
	components.Object.SetValue(enemy, components.ObjectData{Object: obj})
	obj.AddTags("character", tags.ResolvEnemy)
	obj.Data = enemy
	addToSpace(ecs, obj)

	components.Enemy.SetValue(enemy, components.EnemyData{
		TypeName:     kindName,
		TypeConfig:   &enemyType,
		Direction:    cfg.DirectionLeft,
		OriginX:      x,
		OriginY:      y,
		PatrolSpeedX: enemyType.PatrolSpeedX,
		PatrolSpeedY: enemyType.PatrolSpeedY,
		Phase:        cfg.GolemIdle,
	})
	components.State.SetValue(enemy, components.StateData{
		CurrentState:  cfg.StateIdle,
		PreviousState: cfg.StateNone,
		StateTimer:    0,
	})
	components.Physics.SetValue(enemy, components.PhysicsData{
		Gravity:      enemyType.Gravity,
		IgnoresTiles: enemyType.Gravity == 0,
	})
	components.Health.SetValue(enemy, components.HealthData{
		Current: enemyType.Health,
		Max:     enemyType.Health,
	})
	components.Sprite.SetValue(enemy, components.SpriteData{Visible: true})

	return enemy
}
