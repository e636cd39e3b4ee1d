package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/lafriks/go-tiled"
)

// LoadTMX parses a TMX file into a Level. It takes an fs.FS so callers can
// pass embed.FS or os.DirFS. Tile layers named "solid" and "background"
// become tiles (solid and decorative respectively); a layer named "hazard"
// becomes hazard rects. Object groups "EnemySpawns" and "PlayerSpawn"
// supply entity placement; objects in EnemySpawns carry a "kind" property
// naming the enemy type.
func LoadTMX(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	level := &Level{
		Name:   strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
	}

	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	for _, layer := range levelMap.Layers {
		solid := false
		hazard := false
		switch layer.Name {
		case "solid":
			solid = true
		case "hazard":
			hazard = true
		case "background":
		default:
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}
				rect := Rect{
					X: float64(x) * tileW,
					Y: float64(y) * tileH,
					W: tileW,
					H: tileH,
				}
				if hazard {
					level.Hazards = append(level.Hazards, rect)
					level.Tiles = append(level.Tiles, Tile{Rect: rect, Code: TileSpike, Hazard: true})
					continue
				}
				level.Tiles = append(level.Tiles, Tile{Rect: rect, Code: int(tile.ID) + 1, Solid: solid})
				if solid {
					level.Solids = append(level.Solids, rect)
				}
			}
		}
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "EnemySpawns":
			for _, o := range og.Objects {
				kind := o.Properties.GetString("kind")
				if kind == "" {
					kind = o.Type
				}
				level.EnemySpawns = append(level.EnemySpawns, EnemySpawn{X: o.X, Y: o.Y, Kind: kind})
			}
		case "PlayerSpawn":
			for _, o := range og.Objects {
				level.PlayerX = o.X
				level.PlayerY = o.Y
				level.HasPlayer = true
			}
		}
	}

	return level, nil
}
