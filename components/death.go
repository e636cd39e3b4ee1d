package components

import "github.com/yohamta/donburi"

// DeathData marks an enemy whose health reached zero this frame. The
// defeat event and drop roll happen at marking time; the entity itself
// is removed at the start of the next frame.
type DeathData struct{}

var Death = donburi.NewComponentType[DeathData]()

// ConsumedData marks a projectile or item as spent. Like Death, the
// mark is set during the frame and the entity is removed at the start
// of the next one.
type ConsumedData struct{}

var Consumed = donburi.NewComponentType[ConsumedData]()
