package systems

import (
	"github.com/grimhold/rockbuster/components"
	cfg "github.com/grimhold/rockbuster/config"
	"github.com/grimhold/rockbuster/events"
	"github.com/grimhold/rockbuster/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDamage applies the pending hits recorded by the hit-test pass.
// The DamageEvent component is consumed here, so each hit lands exactly
// once per frame per target.
func UpdateDamage(ecs *ecs.ECS) {
	session := GetSession(ecs)

	components.DamageEvent.Each(ecs.World, func(e *donburi.Entry) {
		hit := *components.DamageEvent.Get(e)
		donburi.Remove[components.DamageEventData](e, components.DamageEvent)

		switch {
		case e.HasComponent(components.Player):
			applyPlayerHit(ecs, e, hit, session)
		case e.HasComponent(components.Enemy):
			applyEnemyHit(ecs, e, hit, session)
		}
	})
}

func applyPlayerHit(ecs *ecs.ECS, e *donburi.Entry, hit components.DamageEventData, session *components.SessionData) {
	player := components.Player.Get(e)
	health := components.Health.Get(e)

	if hit.Environment {
		health.Kill()
	} else {
		if PlayerInvincible(player, session.Now()) {
			return
		}
		damage := hit.Amount
		if e.HasComponent(components.Stats) {
			defense := int(components.Stats.Get(e).Effective(components.StatDefense))
			damage -= defense
			if damage < 1 {
				damage = 1
			}
		}
		dealt := health.Damage(damage)
		if dealt == 0 {
			return
		}
		// A hit that downs the player opens no window.
		if !health.Dead() {
			player.InvincibleSince = session.Now()
		}
	}

	session.Hub.Publish(events.Event{
		Kind: events.PlayerHit,
		Payload: map[string]any{
			"damage": hit.Amount,
			"health": health.Current,
		},
	})

	if health.Dead() {
		donburi.Add(e, components.Death, &components.DeathData{})
		session.GameOver = true
		cfg.Logger().Info("player down", "score", session.Score)
	}
}

func applyEnemyHit(ecs *ecs.ECS, e *donburi.Entry, hit components.DamageEventData, session *components.SessionData) {
	enemy := components.Enemy.Get(e)
	health := components.Health.Get(e)

	health.Damage(hit.Amount)
	if !health.Dead() {
		return
	}

	// Defeat: mark for next-frame removal, publish exactly one event,
	// roll the drop cascade exactly once.
	donburi.Add(e, components.Death, &components.DeathData{})
	session.Kills++

	obj := components.Object.Get(e)
	session.Hub.Publish(events.Event{
		Kind: events.EnemyDefeated,
		Payload: map[string]any{
			"kind":  enemy.TypeName,
			"score": enemy.TypeConfig.Score,
		},
	})
	factory.DropRandom(ecs, session.Rand, obj.X+obj.W/2, obj.Y)

	if enemy.TypeName == cfg.KindGolem {
		session.LevelComplete = true
		payload := map[string]any{}
		if playerEntry, ok := components.Player.First(ecs.World); ok {
			playerHealth := components.Health.Get(playerEntry)
			payload["health"] = playerHealth.Current
			payload["max_health"] = playerHealth.Max
		}
		session.Hub.Publish(events.Event{Kind: events.LevelComplete, Payload: payload})
	}
}
