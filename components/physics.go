package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Vector represents a 2D vector.
type Vector struct {
	X, Y float64
}

// PhysicsData is the moving-body half of every dynamic entity. Position
// lives on the resolv object; this holds velocity and ground contact.
type PhysicsData struct {
	SpeedX   float64
	SpeedY   float64
	Gravity  float64
	OnGround *resolv.Object // solid object last landed on, nil while airborne

	// IgnoresTiles skips vertical tile resolution entirely. Flying
	// enemies patrol through terrain and never land.
	IgnoresTiles bool
}

var Physics = donburi.NewComponentType[PhysicsData]()

// Airborne reports whether the body currently has no ground contact.
func (p *PhysicsData) Airborne() bool {
	return p.OnGround == nil
}
