package systems

import (
	"math"

	"github.com/grimhold/rockbuster/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// terminalSpeed caps vertical velocity so a long fall cannot tunnel
// through a tile in one step.
const terminalSpeed = 16

// UpdatePhysics applies gravity to every dynamic body. Position
// integration happens in the collision pass so corrections and
// movement stay in one place.
func UpdatePhysics(ecs *ecs.ECS) {
	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		physics.SpeedY += physics.Gravity
		physics.SpeedY = math.Max(math.Min(physics.SpeedY, terminalSpeed), -terminalSpeed)
	})
}
