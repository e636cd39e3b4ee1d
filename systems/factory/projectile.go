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

func createProjectile(ecs *ecs.ECS, x, y, w, h float64, data components.ProjectileData) *donburi.Entry {
	proj := archetypes.Projectile.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h)
	components.Object.SetValue(proj, components.ObjectData{Object: obj})
	obj.AddTags(tags.ResolvProjectile)
	obj.Data = proj
	addToSpace(ecs, obj)

	components.Projectile.SetValue(proj, data)
	components.Physics.SetValue(proj, components.PhysicsData{
		SpeedX:       data.SpeedX,
		SpeedY:       data.SpeedY,
		Gravity:      data.Gravity,
		IgnoresTiles: data.Gravity == 0,
	})
	components.Sprite.SetValue(proj, components.SpriteData{Visible: true})

	return proj
}

// CreatePlayerBullet fires a horizontal shot in the facing direction.
func CreatePlayerBullet(ecs *ecs.ECS, x, y, direction float64, damage int) *donburi.Entry {
	return createProjectile(ecs, x, y, cfg.Player.BulletWidth, cfg.Player.BulletHeight, components.ProjectileData{
		FromPlayer: true,
		Damage:     damage,
		SpeedX:     cfg.Player.BulletSpeed * direction,
	})
}

// CreateEnemyBullet fires a shot with an arbitrary velocity, used by
// the sentry's three-way spread.
func CreateEnemyBullet(ecs *ecs.ECS, x, y, speedX, speedY float64, enemyType *cfg.EnemyTypeConfig) *donburi.Entry {
	return createProjectile(ecs, x, y, enemyType.BulletWidth, enemyType.BulletHeight, components.ProjectileData{
		Damage: cfg.Player.BulletDamage,
		SpeedX: speedX,
		SpeedY: speedY,
	})
}

// CreateRock throws a lobbed projectile that falls under gravity.
func CreateRock(ecs *ecs.ECS, x, y, direction float64, enemyType *cfg.EnemyTypeConfig) *donburi.Entry {
	return createProjectile(ecs, x, y, 16, 16, components.ProjectileData{
		Damage:  enemyType.RockDamage,
		SpeedX:  enemyType.RockSpeed * direction,
		SpeedY:  enemyType.RockLob,
		Gravity: enemyType.RockGravity,
	})
}
