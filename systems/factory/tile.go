package factory

import (
	"github.com/grimhold/rockbuster/archetypes"
	"github.com/grimhold/rockbuster/components"
	"github.com/grimhold/rockbuster/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSolidTile(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	tile := archetypes.Tile.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvSolid)
	obj.Data = tile

	components.Object.SetValue(tile, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return tile
}

// CreateHazardTile creates a spike zone. Hazards are not solid; contact
// is lethal instead of positional.
func CreateHazardTile(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	tile := archetypes.Tile.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvHazard)
	obj.Data = tile

	components.Object.SetValue(tile, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return tile
}
