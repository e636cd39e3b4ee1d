package systems

import (
	"math"

	"github.com/grimhold/rockbuster/components"
	cfg "github.com/grimhold/rockbuster/config"
	"github.com/grimhold/rockbuster/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// enemyBehavior is the per-kind update strategy. One implementation
// per enemy kind; the kind name on the entity selects it.
type enemyBehavior interface {
	Update(ecs *ecs.ECS, e *donburi.Entry, session *components.SessionData)
}

var enemyBehaviors = map[string]enemyBehavior{
	cfg.KindSentry:  sentryBehavior{},
	cfg.KindFlitter: flitterBehavior{},
	cfg.KindGolem:   golemBehavior{},
}

// UpdateEnemies runs each living enemy's behavior strategy.
func UpdateEnemies(ecs *ecs.ECS) {
	session := GetSession(ecs)
	components.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(components.Death) {
			return
		}
		enemy := components.Enemy.Get(e)
		behavior, ok := enemyBehaviors[enemy.TypeName]
		if !ok {
			return
		}
		behavior.Update(ecs, e, session)
	})
}

// playerCenter returns the player's center position, false when no
// player is alive.
func playerCenter(ecs *ecs.ECS) (float64, float64, bool) {
	entry, ok := components.Player.First(ecs.World)
	if !ok || entry.HasComponent(components.Death) {
		return 0, 0, false
	}
	obj := components.Object.Get(entry)
	return obj.X + obj.W/2, obj.Y + obj.H/2, true
}

// sentryBehavior is the ranged guard. It always faces the player and,
// when the player is inside its detection range, fires a three-way
// spread on its cooldown. Out of range it holds a guarding stance.
type sentryBehavior struct{}

func (sentryBehavior) Update(ecs *ecs.ECS, e *donburi.Entry, session *components.SessionData) {
	enemy := components.Enemy.Get(e)
	state := components.State.Get(e)
	obj := components.Object.Get(e)

	px, _, ok := playerCenter(ecs)
	if !ok {
		state.CurrentState = cfg.StateIdle
		return
	}

	centerX := obj.X + obj.W/2
	if px < centerX {
		enemy.Direction = cfg.DirectionLeft
	} else {
		enemy.Direction = cfg.DirectionRight
	}
	components.Sprite.Get(e).FlipX = enemy.Direction == cfg.DirectionLeft

	if math.Abs(px-centerX) > enemy.TypeConfig.DetectionRange {
		// Guarding stance, no fire.
		state.CurrentState = cfg.StateIdle
		return
	}

	state.CurrentState = cfg.StateShooting
	now := session.Now()
	if enemy.LastFired != 0 && now-enemy.LastFired < enemy.TypeConfig.FireRateMS {
		return
	}
	enemy.LastFired = now
	fireSpread(ecs, e, enemy)
}

// fireSpread emits the straight, angled-up, and angled-down bullets.
func fireSpread(ecs *ecs.ECS, e *donburi.Entry, enemy *components.EnemyData) {
	obj := components.Object.Get(e)
	t := enemy.TypeConfig

	muzzleX := obj.X + obj.W
	if enemy.Direction == cfg.DirectionLeft {
		muzzleX = obj.X - t.BulletWidth
	}
	muzzleY := obj.Y + obj.H*0.3
	speedX := t.BulletSpeedX * enemy.Direction

	for _, speedY := range []float64{0, -t.BulletSpreadY, t.BulletSpreadY} {
		factory.CreateEnemyBullet(ecs, muzzleX, muzzleY, speedX, speedY, t)
	}
}

// flitterBehavior oscillates around the spawn point, each axis
// reversing independently at its amplitude. It never lands; tile
// collision is skipped entirely for it.
type flitterBehavior struct{}

func (flitterBehavior) Update(ecs *ecs.ECS, e *donburi.Entry, session *components.SessionData) {
	enemy := components.Enemy.Get(e)
	physics := components.Physics.Get(e)
	obj := components.Object.Get(e)
	t := enemy.TypeConfig

	if obj.X-enemy.OriginX >= t.PatrolAmplitudeX && enemy.PatrolSpeedX > 0 {
		enemy.PatrolSpeedX = -enemy.PatrolSpeedX
	} else if enemy.OriginX-obj.X >= t.PatrolAmplitudeX && enemy.PatrolSpeedX < 0 {
		enemy.PatrolSpeedX = -enemy.PatrolSpeedX
	}
	if obj.Y-enemy.OriginY >= t.PatrolAmplitudeY && enemy.PatrolSpeedY > 0 {
		enemy.PatrolSpeedY = -enemy.PatrolSpeedY
	} else if enemy.OriginY-obj.Y >= t.PatrolAmplitudeY && enemy.PatrolSpeedY < 0 {
		enemy.PatrolSpeedY = -enemy.PatrolSpeedY
	}

	physics.SpeedX = enemy.PatrolSpeedX
	physics.SpeedY = enemy.PatrolSpeedY
	enemy.Direction = math.Copysign(1, enemy.PatrolSpeedX)
	components.Sprite.Get(e).FlipX = enemy.Direction == cfg.DirectionLeft
}

// golemBehavior is the boss cycle idle -> jump or throw -> idle. Idle
// dwells a fixed duration, then jumps toward a distant player or winds
// up a rock throw against a close one. Landing from the jump forces
// the return to idle.
type golemBehavior struct{}

func (golemBehavior) Update(ecs *ecs.ECS, e *donburi.Entry, session *components.SessionData) {
	enemy := components.Enemy.Get(e)
	physics := components.Physics.Get(e)
	obj := components.Object.Get(e)
	t := enemy.TypeConfig
	now := session.Now()

	px, _, playerAlive := playerCenter(ecs)
	centerX := obj.X + obj.W/2
	if playerAlive {
		if px < centerX {
			enemy.Direction = cfg.DirectionLeft
		} else {
			enemy.Direction = cfg.DirectionRight
		}
		components.Sprite.Get(e).FlipX = enemy.Direction == cfg.DirectionLeft
	}

	if enemy.PhaseStart == 0 {
		enemy.PhaseStart = now
	}

	switch enemy.Phase {
	case cfg.GolemIdle:
		physics.SpeedX = 0
		if !playerAlive || now-enemy.PhaseStart < t.IdleDwellMS {
			return
		}
		if math.Abs(px-centerX) > t.AttackRange {
			enemy.Phase = cfg.GolemJump
			enemy.PhaseStart = now
			physics.SpeedY = t.JumpImpulse
			physics.SpeedX = t.JumpSpeedX * enemy.Direction
			physics.OnGround = nil
		} else {
			enemy.Phase = cfg.GolemThrow
			enemy.PhaseStart = now
		}

	case cfg.GolemJump:
		// Ballistic arc; horizontal velocity holds until ground
		// contact forces the return to idle.
		if physics.OnGround != nil {
			enemy.Phase = cfg.GolemIdle
			enemy.PhaseStart = now
			physics.SpeedX = 0
		}

	case cfg.GolemThrow:
		physics.SpeedX = 0
		if now-enemy.PhaseStart < t.ThrowWindupMS {
			return
		}
		rockX := obj.X + obj.W
		if enemy.Direction == cfg.DirectionLeft {
			rockX = obj.X - 16
		}
		factory.CreateRock(ecs, rockX, obj.Y, enemy.Direction, t)
		enemy.Phase = cfg.GolemIdle
		enemy.PhaseStart = now
	}
}

// BossHealthFraction exposes the boss health bar value in [0,1], false
// when no boss is present.
func BossHealthFraction(ecs *ecs.ECS) (float64, bool) {
	var fraction float64
	found := false
	components.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		if components.Enemy.Get(e).TypeName != cfg.KindGolem || found {
			return
		}
		health := components.Health.Get(e)
		if health.Max > 0 {
			fraction = float64(health.Current) / float64(health.Max)
		}
		found = true
	})
	return fraction, found
}
