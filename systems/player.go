package systems

import (
	"github.com/grimhold/rockbuster/components"
	cfg "github.com/grimhold/rockbuster/config"
	"github.com/grimhold/rockbuster/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// playerActor adapts a player entity to the capability surface the
// state implementations work through.
type playerActor struct {
	ecs     *ecs.ECS
	entry   *donburi.Entry
	session *components.SessionData
}

func (a *playerActor) beginFrame() {
	// Horizontal intent is per-frame; a state that wants motion asks
	// again every update.
	components.Physics.Get(a.entry).SpeedX = 0
}

func (a *playerActor) input() *components.InputData {
	return GetInput(a.ecs)
}

func (a *playerActor) Held(action cfg.ActionID) bool {
	return a.input().Held(action)
}

func (a *playerActor) JustPressed(action cfg.ActionID) bool {
	return a.input().JustPressed(action)
}

func (a *playerActor) Grounded() bool {
	return !components.Physics.Get(a.entry).Airborne()
}

func (a *playerActor) Move(dir float64) {
	stats := components.Stats.Get(a.entry)
	components.Player.Get(a.entry).Direction = dir
	components.Physics.Get(a.entry).SpeedX = stats.Effective(components.StatSpeed) * dir
}

func (a *playerActor) Jump() {
	physics := components.Physics.Get(a.entry)
	physics.SpeedY = cfg.Player.JumpImpulse
	physics.OnGround = nil
}

func (a *playerActor) CooldownElapsed() bool {
	player := components.Player.Get(a.entry)
	return a.session.Now()-player.LastShot >= cfg.Player.ShootCooldownMS
}

// TryShoot emits one projectile if the shared cooldown allows it. The
// same timestamp gates all three shooting states.
func (a *playerActor) TryShoot() bool {
	if !a.CooldownElapsed() {
		return false
	}
	player := components.Player.Get(a.entry)
	obj := components.Object.Get(a.entry)
	stats := components.Stats.Get(a.entry)

	muzzleX := obj.X + obj.W
	if player.Direction == cfg.DirectionLeft {
		muzzleX = obj.X - cfg.Player.BulletWidth
	}
	muzzleY := obj.Y + obj.H*0.35

	damage := int(stats.Effective(components.StatStrength))
	if damage < 1 {
		damage = 1
	}
	factory.CreatePlayerBullet(a.ecs, muzzleX, muzzleY, player.Direction, damage)
	player.LastShot = a.session.Now()
	return true
}

func (a *playerActor) StepAnimation() {
	player := components.Player.Get(a.entry)
	now := a.session.Now()
	if now-player.LastAnimStep < cfg.Player.AnimationInterval {
		return
	}
	player.AnimFrame = (player.AnimFrame + 1) % cfg.Player.WalkFrames
	player.LastAnimStep = now
}

// UpdatePlayer handles the per-frame player bookkeeping that is not
// state behavior: invincibility expiry and sprite facing.
func UpdatePlayer(ecs *ecs.ECS) {
	session := GetSession(ecs)
	components.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)

		if player.InvincibleSince != 0 &&
			session.Now()-player.InvincibleSince >= cfg.Player.InvincibilityMS {
			player.InvincibleSince = 0
		}

		sprite := components.Sprite.Get(e)
		sprite.FlipX = player.Direction == cfg.DirectionLeft
	})
}

// PlayerInvincible reports whether the invincibility window is open.
func PlayerInvincible(player *components.PlayerData, now int64) bool {
	return player.InvincibleSince != 0 &&
		now-player.InvincibleSince < cfg.Player.InvincibilityMS
}
