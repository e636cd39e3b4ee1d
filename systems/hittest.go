package systems

import (
	"github.com/grimhold/rockbuster/components"
	cfg "github.com/grimhold/rockbuster/config"
	"github.com/grimhold/rockbuster/events"
	"github.com/grimhold/rockbuster/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateHitTests runs the dynamic-vs-dynamic overlap passes after the
// collision resolver has settled positions. Hits never move anything;
// they record pending damage, consume projectiles and items, and
// publish events. A target already carrying a pending hit this frame
// is skipped, so overlapping sources coalesce into one hit.
func UpdateHitTests(ecs *ecs.ECS) {
	session := GetSession(ecs)

	projectilePasses(ecs)
	playerEnemyPass(ecs)
	playerItemPass(ecs, session)
	playerHazardPass(ecs)
	playerFallPass(ecs)
}

// recordHit attaches a pending damage event unless the target already
// has one this frame. Reports whether the hit registered.
func recordHit(target *donburi.Entry, data components.DamageEventData) bool {
	if target.HasComponent(components.Death) || target.HasComponent(components.DamageEvent) {
		return false
	}
	donburi.Add(target, components.DamageEvent, &data)
	return true
}

func projectilePasses(ecs *ecs.ECS) {
	session := GetSession(ecs)
	components.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(components.Consumed) {
			return
		}
		proj := components.Projectile.Get(e)
		obj := components.Object.Get(e)

		targetTag := tags.ResolvPlayer
		if proj.FromPlayer {
			targetTag = tags.ResolvEnemy
		}

		check := obj.Check(0, 0, targetTag)
		if check == nil {
			return
		}
		hit := check.ObjectsByTags(targetTag)
		if len(hit) == 0 {
			return
		}
		target, ok := hit[0].Data.(*donburi.Entry)
		if !ok || !target.Valid() {
			return
		}

		if !proj.FromPlayer && target.HasComponent(components.Player) {
			if PlayerInvincible(components.Player.Get(target), session.Now()) {
				// The shot is still spent; it just does nothing.
				donburi.Add(e, components.Consumed, &components.ConsumedData{})
				return
			}
		}

		if recordHit(target, components.DamageEventData{Amount: proj.Damage}) {
			donburi.Add(e, components.Consumed, &components.ConsumedData{})
		}
	})
}

func playerEnemyPass(ecs *ecs.ECS) {
	session := GetSession(ecs)
	components.Player.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(components.Death) {
			return
		}
		if PlayerInvincible(components.Player.Get(e), session.Now()) {
			return
		}
		obj := components.Object.Get(e)
		check := obj.Check(0, 0, tags.ResolvEnemy)
		if check == nil {
			return
		}
		for _, enemyObj := range check.ObjectsByTags(tags.ResolvEnemy) {
			enemyEntry, ok := enemyObj.Data.(*donburi.Entry)
			if !ok || !enemyEntry.Valid() || enemyEntry.HasComponent(components.Death) {
				continue
			}
			recordHit(e, components.DamageEventData{Amount: cfg.Player.ContactDamage})
			return
		}
	})
}

func playerItemPass(ecs *ecs.ECS, session *components.SessionData) {
	components.Player.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(components.Death) {
			return
		}
		obj := components.Object.Get(e)
		check := obj.Check(0, 0, tags.ResolvItem)
		if check == nil {
			return
		}
		for _, itemObj := range check.ObjectsByTags(tags.ResolvItem) {
			itemEntry, ok := itemObj.Data.(*donburi.Entry)
			if !ok || !itemEntry.Valid() || itemEntry.HasComponent(components.Consumed) {
				continue
			}
			item := components.Item.Get(itemEntry)
			donburi.Add(itemEntry, components.Consumed, &components.ConsumedData{})
			session.Hub.Publish(events.Event{
				Kind: events.ItemCollected,
				Payload: map[string]any{
					"item":  item.TypeName,
					"value": item.TypeConfig.Value,
				},
			})
		}
	})
}

// playerFallPass treats dropping out of the level like hazard contact.
func playerFallPass(ecs *ecs.ECS) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	height := float64(components.Level.Get(levelEntry).Current.Height)
	components.Player.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(components.Death) {
			return
		}
		if components.Object.Get(e).Y > height {
			recordHit(e, components.DamageEventData{Environment: true})
		}
	})
}

func playerHazardPass(ecs *ecs.ECS) {
	components.Player.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(components.Death) {
			return
		}
		obj := components.Object.Get(e)
		if check := obj.Check(0, 0, tags.ResolvHazard); check != nil {
			if len(check.ObjectsByTags(tags.ResolvHazard)) > 0 {
				recordHit(e, components.DamageEventData{Environment: true})
			}
		}
	})
}
