package components

import (
	"github.com/grimhold/rockbuster/shared/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Current *leveldata.Level

	// ScrollX is how far the world has scrolled left. The player's
	// horizontal screen position is fixed; movement shifts the world.
	ScrollX float64
}

var Level = donburi.NewComponentType[LevelData]()
