package events

import (
	"testing"
)

type recordingSubscriber struct {
	name string
	log  *[]string
}

func (r *recordingSubscriber) Notify(e Event) {
	*r.log = append(*r.log, r.name)
}

func TestSubscribeIsIdempotent(t *testing.T) {
	hub := NewHub()
	var log []string
	sub := &recordingSubscriber{name: "a", log: &log}

	hub.Subscribe(EnemyDefeated, sub)
	hub.Subscribe(EnemyDefeated, sub)
	hub.Subscribe(EnemyDefeated, sub)

	hub.Publish(Event{Kind: EnemyDefeated})

	if len(log) != 1 {
		t.Fatalf("expected exactly one notification, got %d", len(log))
	}
}

func TestDeliveryFollowsInsertionOrder(t *testing.T) {
	hub := NewHub()
	var log []string
	for _, name := range []string{"first", "second", "third"} {
		hub.Subscribe(ItemCollected, &recordingSubscriber{name: name, log: &log})
	}

	hub.Publish(Event{Kind: ItemCollected})

	want := []string{"first", "second", "third"}
	if len(log) != len(want) {
		t.Fatalf("expected %d notifications, got %d", len(want), len(log))
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("delivery %d: got %q, want %q", i, log[i], want[i])
		}
	}
}

func TestPublishOnlyReachesMatchingKind(t *testing.T) {
	hub := NewHub()
	var log []string
	hub.Subscribe(EnemyDefeated, &recordingSubscriber{name: "a", log: &log})

	hub.Publish(Event{Kind: PlayerHit})

	if len(log) != 0 {
		t.Fatalf("subscriber for another kind was notified %d times", len(log))
	}
}

// unsubscribingSubscriber removes itself (and optionally another) on
// its first notification.
type unsubscribingSubscriber struct {
	hub   *Hub
	kind  Kind
	other Subscriber
	calls int
}

func (u *unsubscribingSubscriber) Notify(e Event) {
	u.calls++
	u.hub.Unsubscribe(u.kind, u)
	if u.other != nil {
		u.hub.Unsubscribe(u.kind, u.other)
	}
}

func TestUnsubscribeDuringPublishUsesSnapshot(t *testing.T) {
	hub := NewHub()
	var log []string
	tail := &recordingSubscriber{name: "tail", log: &log}

	head := &unsubscribingSubscriber{hub: hub, kind: LevelComplete, other: tail}
	hub.Subscribe(LevelComplete, head)
	hub.Subscribe(LevelComplete, tail)

	// The in-flight cycle was snapshotted before head removed tail.
	hub.Publish(Event{Kind: LevelComplete})
	if len(log) != 1 {
		t.Fatalf("snapshot delivery: tail notified %d times, want 1", len(log))
	}

	// Both are gone for the next cycle.
	hub.Publish(Event{Kind: LevelComplete})
	if head.calls != 1 {
		t.Errorf("head notified %d times across both cycles, want 1", head.calls)
	}
	if len(log) != 1 {
		t.Errorf("tail notified %d times across both cycles, want 1", len(log))
	}
}

type panickingSubscriber struct{}

func (panickingSubscriber) Notify(e Event) {
	panic("subscriber failure")
}

func TestPanickingSubscriberDoesNotBlockDelivery(t *testing.T) {
	hub := NewHub()
	var log []string

	hub.Subscribe(PlayerHit, panickingSubscriber{})
	hub.Subscribe(PlayerHit, &recordingSubscriber{name: "after", log: &log})

	hub.Publish(Event{Kind: PlayerHit})

	if len(log) != 1 {
		t.Fatalf("subscriber after the failing one was not notified")
	}
}

func TestPayloadAccessors(t *testing.T) {
	e := Event{Kind: EnemyDefeated, Payload: map[string]any{
		"score": 500,
		"kind":  "sentry",
	}}

	if got := e.Int("score"); got != 500 {
		t.Errorf("Int(score) = %d, want 500", got)
	}
	if got := e.Str("kind"); got != "sentry" {
		t.Errorf("Str(kind) = %q, want sentry", got)
	}
	if got := e.Int("missing"); got != 0 {
		t.Errorf("Int(missing) = %d, want 0", got)
	}
	if got := e.Str("score"); got != "" {
		t.Errorf("Str on int field = %q, want empty", got)
	}
}
