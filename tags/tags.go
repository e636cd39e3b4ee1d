package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Enemy      = donburi.NewTag().SetName("Enemy")
	Projectile = donburi.NewTag().SetName("Projectile")
	Item       = donburi.NewTag().SetName("Item")
	Tile       = donburi.NewTag().SetName("Tile")
)

// Resolv tags for physics collision
const (
	ResolvSolid      = "solid"
	ResolvHazard     = "hazard"
	ResolvPlayer     = "Player"
	ResolvEnemy      = "Enemy"
	ResolvProjectile = "Projectile"
	ResolvItem       = "Item"
)
