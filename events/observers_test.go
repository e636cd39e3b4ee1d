package events

import (
	"testing"

	"github.com/grimhold/rockbuster/config"
)

type fakeKeeper struct{ total int }

func (k *fakeKeeper) AddScore(points int) { k.total += points }

type fakeHealer struct{ healed int }

func (h *fakeHealer) HealPlayer(amount int) { h.healed += amount }

type fakeSpeaker struct{ played []string }

func (s *fakeSpeaker) PlaySound(name string) { s.played = append(s.played, name) }

func TestScoreObserver(t *testing.T) {
	keeper := &fakeKeeper{}
	o := &ScoreObserver{Keeper: keeper}

	o.Notify(Event{Kind: EnemyDefeated, Payload: map[string]any{"score": 500}})
	if keeper.total != 500 {
		t.Errorf("score = %d after a defeat, want 500", keeper.total)
	}

	o.Notify(Event{Kind: ItemCollected, Payload: map[string]any{
		"item": config.ItemScoreOrb, "value": 100,
	}})
	if keeper.total != 600 {
		t.Errorf("score = %d after an orb, want 600", keeper.total)
	}

	// Heal pickups carry a value but never score.
	o.Notify(Event{Kind: ItemCollected, Payload: map[string]any{
		"item": config.ItemBigHeal, "value": 6,
	}})
	if keeper.total != 600 {
		t.Errorf("score = %d after a heal pickup, want 600", keeper.total)
	}
}

func TestHealthObserver(t *testing.T) {
	healer := &fakeHealer{}
	o := &HealthObserver{Healer: healer}

	o.Notify(Event{Kind: ItemCollected, Payload: map[string]any{
		"item": config.ItemSmallHeal, "value": 2,
	}})
	o.Notify(Event{Kind: ItemCollected, Payload: map[string]any{
		"item": config.ItemBigHeal, "value": 6,
	}})
	o.Notify(Event{Kind: ItemCollected, Payload: map[string]any{
		"item": config.ItemScoreOrb, "value": 100,
	}})

	if healer.healed != 8 {
		t.Errorf("healed %d, want 8 (orbs do not heal)", healer.healed)
	}
}

func TestSoundObserverMapping(t *testing.T) {
	speaker := &fakeSpeaker{}
	o := &SoundObserver{Player: speaker}

	for _, kind := range []Kind{EnemyDefeated, ItemCollected, PlayerHit, LevelComplete} {
		o.Notify(Event{Kind: kind})
	}

	want := []string{"enemy-down", "pickup", "hurt", "clear"}
	if len(speaker.played) != len(want) {
		t.Fatalf("played %d sounds, want %d", len(speaker.played), len(want))
	}
	for i := range want {
		if speaker.played[i] != want[i] {
			t.Errorf("sound %d = %q, want %q", i, speaker.played[i], want[i])
		}
	}
}

func TestAchievementObserverMilestones(t *testing.T) {
	o := NewAchievementObserver()

	o.Notify(Event{Kind: EnemyDefeated})
	if !o.Unlocked("first-kill") {
		t.Error("first-kill not unlocked after one defeat")
	}
	if o.Unlocked("ten-kills") {
		t.Error("ten-kills unlocked too early")
	}

	for i := 1; i < config.Session.TenKillThreshold; i++ {
		o.Notify(Event{Kind: EnemyDefeated})
	}
	if !o.Unlocked("ten-kills") {
		t.Errorf("ten-kills not unlocked after %d defeats", config.Session.TenKillThreshold)
	}
}

func TestAchievementObserverPerfectHealth(t *testing.T) {
	hurt := NewAchievementObserver()
	hurt.Notify(Event{Kind: LevelComplete, Payload: map[string]any{
		"health": 3, "max_health": 10,
	}})
	if hurt.Unlocked("perfect-health") {
		t.Error("perfect-health unlocked with damage taken")
	}

	perfect := NewAchievementObserver()
	perfect.Notify(Event{Kind: LevelComplete, Payload: map[string]any{
		"health": 10, "max_health": 10,
	}})
	if !perfect.Unlocked("perfect-health") {
		t.Error("perfect-health not unlocked at full health")
	}
}
