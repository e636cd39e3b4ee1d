package leveldata

// spawnKinds maps spawn-marker codes to enemy kind names. The names must
// match the keys of config.Enemy.Types, but this package stays free of a
// config dependency so the mapping is by convention.
var spawnKinds = map[int]string{
	TileSentrySpawn:  "sentry",
	TileFlitterSpawn: "flitter",
	TileGolemSpawn:   "golem",
}

// FromGrid builds a Level from a 2-D grid of tile codes. Negative codes
// are the non-solid background variant of the same tile; spawn markers
// become entity spawns rather than tiles.
func FromGrid(name string, codes [][]int, tileSize int) *Level {
	ts := float64(tileSize)
	level := &Level{Name: name}

	for row := range codes {
		if w := len(codes[row]) * tileSize; w > level.Width {
			level.Width = w
		}
		for col, code := range codes[row] {
			if code == TileEmpty {
				continue
			}

			x := float64(col) * ts
			y := float64(row) * ts
			rect := Rect{X: x, Y: y, W: ts, H: ts}

			if kind, ok := spawnKinds[code]; ok {
				level.EnemySpawns = append(level.EnemySpawns, EnemySpawn{X: x, Y: y, Kind: kind})
				continue
			}
			if code == TilePlayerSpawn {
				level.PlayerX = x
				level.PlayerY = y
				level.HasPlayer = true
				continue
			}
			if code == TileSpike {
				level.Hazards = append(level.Hazards, rect)
				level.Tiles = append(level.Tiles, Tile{Rect: rect, Code: code, Hazard: true})
				continue
			}

			background := code < 0
			abs := code
			if background {
				abs = -code
			}
			tile := Tile{Rect: rect, Code: abs, Solid: !background}
			level.Tiles = append(level.Tiles, tile)
			if tile.Solid {
				level.Solids = append(level.Solids, rect)
			}
		}
	}

	level.Height = len(codes) * tileSize
	return level
}
