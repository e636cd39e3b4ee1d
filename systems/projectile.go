package systems

import (
	"github.com/grimhold/rockbuster/components"
	cfg "github.com/grimhold/rockbuster/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// offscreenMargin lets a projectile live a little past the view edge
// before it is culled.
const offscreenMargin = 64.0

// UpdateProjectiles culls shots that left the visible world. Movement
// itself happens in the collision pass with every other dynamic body.
func UpdateProjectiles(ecs *ecs.ECS) {
	var scrollX float64
	if levelEntry, ok := components.Level.First(ecs.World); ok {
		scrollX = components.Level.Get(levelEntry).ScrollX
	}
	left := scrollX - offscreenMargin
	right := scrollX + float64(cfg.C.Width) + offscreenMargin
	bottom := float64(cfg.C.Height) + offscreenMargin

	components.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(components.Consumed) {
			return
		}
		obj := components.Object.Get(e)
		if obj.X+obj.W < left || obj.X > right || obj.Y > bottom || obj.Y+obj.H < -offscreenMargin {
			donburi.Add(e, components.Consumed, &components.ConsumedData{})
		}
	})
}
