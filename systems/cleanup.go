package systems

import (
	"github.com/grimhold/rockbuster/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var toRemove []*donburi.Entry

// UpdateCleanup removes entities marked dead or consumed. It runs at
// the start of the frame, so a mark set during frame N takes effect at
// the start of frame N+1: removal happens exactly once, the frame
// after marking.
func UpdateCleanup(ecs *ecs.ECS) {
	toRemove = toRemove[:0]

	components.Death.Each(ecs.World, func(e *donburi.Entry) {
		// The player entity stays in the world after death so the
		// game-over overlay still has something to draw.
		if e.HasComponent(components.Player) {
			return
		}
		toRemove = append(toRemove, e)
	})
	components.Consumed.Each(ecs.World, func(e *donburi.Entry) {
		toRemove = append(toRemove, e)
	})

	for _, e := range toRemove {
		if !e.Valid() {
			continue
		}
		if e.HasComponent(components.Object) {
			obj := components.Object.Get(e)
			if spaceEntry, ok := components.Space.First(ecs.World); ok {
				components.Space.Get(spaceEntry).Remove(obj.Object)
			}
		}
		e.Remove()
	}
}
