// Package leveldata provides level-geometry parsing shared between the
// simulation and the render shell. It has no dependencies on ebitengine,
// donburi, or resolv.
package leveldata

// Tile codes for grid-based levels. A negative code is the non-solid
// background variant of the same tile; zero is empty.
const (
	TileEmpty = 0

	TileRock1 = 1
	TileRock2 = 2
	TileRock3 = 3
	TileRock4 = 4
	TileFloor = 5
	TileWall  = 6

	TileSpike = 7

	TileSentrySpawn  = 8
	TileFlitterSpawn = 9
	TileGolemSpawn   = 10
	TilePlayerSpawn  = 11
)

// Rect is an axis-aligned rectangle in world pixels.
type Rect struct {
	X, Y, W, H float64
}

// Tile is one drawable cell, solid or background.
type Tile struct {
	Rect
	Code   int // absolute tile code, for sprite lookup
	Solid  bool
	Hazard bool
}

// EnemySpawn marks where an enemy of a given kind starts.
type EnemySpawn struct {
	X, Y float64
	Kind string
}

// Level holds everything the stage builder needs: static geometry plus
// spawn markers. Immutable after load.
type Level struct {
	Name    string
	Width   int // pixels
	Height  int // pixels
	Tiles   []Tile
	Solids  []Rect
	Hazards []Rect

	EnemySpawns []EnemySpawn
	PlayerX     float64
	PlayerY     float64
	HasPlayer   bool
}
