package systems

import (
	"github.com/grimhold/rockbuster/components"
	"github.com/grimhold/rockbuster/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollisions integrates every dynamic body and resolves it
// against the solid tiles, exactly once per frame. Only the vertical
// axis is resolved: the world scrolls horizontally under entities, so
// horizontal tile contact is deliberately left alone.
func UpdateCollisions(ecs *ecs.ECS) {
	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Object) {
			return
		}
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e)

		obj.X += physics.SpeedX
		if e.HasComponent(components.Player) {
			clampToLevel(ecs, obj.Object)
		}

		if physics.IgnoresTiles {
			obj.Y += physics.SpeedY
		} else {
			resolveVertical(e, physics, obj.Object)
		}

		obj.Update()
	})
}

func resolveVertical(e *donburi.Entry, physics *components.PhysicsData, obj *resolv.Object) {
	physics.OnGround = nil
	dy := physics.SpeedY

	// The extra pixel below keeps ground contact alive while resting.
	checkDistance := dy
	if dy >= 0 {
		checkDistance++
	}

	check := obj.Check(0, checkDistance, tags.ResolvSolid)
	if check == nil {
		obj.Y += dy
		return
	}
	solids := check.ObjectsByTags(tags.ResolvSolid)
	if len(solids) == 0 {
		obj.Y += dy
		return
	}

	if dy < 0 {
		// Ascending: snap to the tile's bottom edge.
		physics.SpeedY = 0
		obj.Y += check.ContactWithObject(solids[0]).Y()
		return
	}

	// Descending: snap to the tile's top edge and land.
	obj.Y += check.ContactWithObject(solids[0]).Y()
	physics.OnGround = solids[0]
	physics.SpeedY = 0
	onLand(e)
}

// onLand fires once per landing frame. Landing side effects that are
// not state transitions live here; the player and boss observe the
// cleared airborne flag on their own next update.
func onLand(e *donburi.Entry) {
	if e.HasComponent(components.Item) {
		item := components.Item.Get(e)
		if !item.Landed {
			item.Landed = true
			// Items fall only until their first ground contact.
			components.Physics.Get(e).Gravity = 0
		}
	}
	if e.HasComponent(components.Projectile) {
		// Lobbed projectiles shatter on the ground.
		if components.Projectile.Get(e).Gravity != 0 && !e.HasComponent(components.Consumed) {
			donburi.Add(e, components.Consumed, &components.ConsumedData{})
		}
	}
}

// clampToLevel keeps the player inside the level's horizontal bounds.
func clampToLevel(ecs *ecs.ECS, obj *resolv.Object) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry).Current
	if obj.X < 0 {
		obj.X = 0
	}
	if max := float64(level.Width) - obj.W; obj.X > max {
		obj.X = max
	}
}
