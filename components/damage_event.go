package components

import "github.com/yohamta/donburi"

// DamageEventData is a pending hit recorded during the hit-test pass and
// applied by the damage system later the same frame. At most one exists
// per entity per frame; a second overlapping hit in the same frame is
// dropped, so simultaneous bullets coalesce into a single hit.
type DamageEventData struct {
	Amount      int
	Environment bool // hazard contact, forces health to zero
}

var DamageEvent = donburi.NewComponentType[DamageEventData]()
