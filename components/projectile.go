package components

import "github.com/yohamta/donburi"

type ProjectileData struct {
	FromPlayer bool // player bullets hit enemies, enemy shots hit the player
	Damage     int
	SpeedX     float64
	SpeedY     float64
	Gravity    float64 // nonzero for thrown rocks, zero for bullets
}

var Projectile = donburi.NewComponentType[ProjectileData]()
