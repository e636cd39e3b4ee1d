package events

import "github.com/grimhold/rockbuster/config"

// The observers below react to gameplay events through narrow
// interfaces so they stay decoupled from the entity representation.

// ScoreKeeper accepts score points.
type ScoreKeeper interface {
	AddScore(points int)
}

// Healer restores player health.
type Healer interface {
	HealPlayer(amount int)
}

// SoundPlayer plays a named sound effect.
type SoundPlayer interface {
	PlaySound(name string)
}

// ScoreObserver credits points for defeated enemies and collected
// score pickups.
type ScoreObserver struct {
	Keeper ScoreKeeper
}

func (o *ScoreObserver) Notify(e Event) {
	switch e.Kind {
	case EnemyDefeated:
		o.Keeper.AddScore(e.Int("score"))
	case ItemCollected:
		if e.Str("item") == config.ItemScoreOrb {
			o.Keeper.AddScore(e.Int("value"))
		}
	}
}

// HealthObserver applies healing pickups.
type HealthObserver struct {
	Healer Healer
}

func (o *HealthObserver) Notify(e Event) {
	if e.Kind != ItemCollected {
		return
	}
	switch e.Str("item") {
	case config.ItemSmallHeal, config.ItemBigHeal:
		o.Healer.HealPlayer(e.Int("value"))
	}
}

// SoundObserver maps event kinds to sound effects.
type SoundObserver struct {
	Player SoundPlayer
}

func (o *SoundObserver) Notify(e Event) {
	switch e.Kind {
	case EnemyDefeated:
		o.Player.PlaySound("enemy-down")
	case ItemCollected:
		o.Player.PlaySound("pickup")
	case PlayerHit:
		o.Player.PlaySound("hurt")
	case LevelComplete:
		o.Player.PlaySound("clear")
	}
}

// AchievementObserver tracks simple milestones and logs each unlock
// once.
type AchievementObserver struct {
	kills    int
	unlocked map[string]bool
}

func NewAchievementObserver() *AchievementObserver {
	return &AchievementObserver{unlocked: make(map[string]bool)}
}

func (o *AchievementObserver) Notify(e Event) {
	switch e.Kind {
	case EnemyDefeated:
		o.kills++
		if o.kills == 1 {
			o.unlock("first-kill")
		}
		if o.kills == config.Session.TenKillThreshold {
			o.unlock("ten-kills")
		}
	case LevelComplete:
		if e.Int("health") >= e.Int("max_health") && e.Int("max_health") > 0 {
			o.unlock("perfect-health")
		}
	}
}

func (o *AchievementObserver) Unlocked(name string) bool {
	return o.unlocked[name]
}

func (o *AchievementObserver) unlock(name string) {
	if o.unlocked[name] {
		return
	}
	o.unlocked[name] = true
	config.Logger().Info("achievement unlocked", "name", name)
}
