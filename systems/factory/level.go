package factory

import (
	"github.com/grimhold/rockbuster/archetypes"
	"github.com/grimhold/rockbuster/components"
	cfg "github.com/grimhold/rockbuster/config"
	"github.com/grimhold/rockbuster/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// BuildLevel instantiates a parsed level: the collision space, every
// solid and hazard tile, enemy spawns, and the player. Returns the
// level entry.
func BuildLevel(ecs *ecs.ECS, level *leveldata.Level) *donburi.Entry {
	CreateSpace(ecs, level.Width, level.Height, cfg.C.TileSize, cfg.C.TileSize)

	for _, solid := range level.Solids {
		CreateSolidTile(ecs, solid.X, solid.Y, solid.W, solid.H)
	}
	for _, hazard := range level.Hazards {
		CreateHazardTile(ecs, hazard.X, hazard.Y, hazard.W, hazard.H)
	}
	for _, spawn := range level.EnemySpawns {
		CreateEnemy(ecs, spawn.X, spawn.Y, spawn.Kind)
	}

	px, py := level.PlayerX, level.PlayerY
	if !level.HasPlayer {
		px = float64(cfg.C.TileSize) * 2
		py = float64(level.Height) / 2
	}
	CreatePlayer(ecs, px, py)

	entry := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(entry, components.LevelData{Current: level})

	cfg.Logger().Info("level built",
		"name", level.Name,
		"solids", len(level.Solids),
		"hazards", len(level.Hazards),
		"enemies", len(level.EnemySpawns))

	return entry
}
