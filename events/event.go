package events

// Kind tags a gameplay occurrence.
type Kind string

const (
	EnemyDefeated Kind = "enemy-defeated"
	ItemCollected Kind = "item-collected"
	PlayerHit     Kind = "player-hit"
	LevelComplete Kind = "level-complete"
)

// Event is a tagged occurrence with an associative payload.
type Event struct {
	Kind    Kind
	Payload map[string]any
}

// Int reads an integer payload field, zero if absent or mistyped.
func (e Event) Int(key string) int {
	v, _ := e.Payload[key].(int)
	return v
}

// Str reads a string payload field, empty if absent or mistyped.
func (e Event) Str(key string) string {
	v, _ := e.Payload[key].(string)
	return v
}

// Subscriber receives events it registered for.
type Subscriber interface {
	Notify(Event)
}
