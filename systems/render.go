package systems

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/grimhold/rockbuster/assets"
	"github.com/grimhold/rockbuster/components"
	cfg "github.com/grimhold/rockbuster/config"
	"github.com/grimhold/rockbuster/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp  = &ebiten.DrawImageOptions{}
	sprites = assets.NewSpriteLoader("assets/images")
)

// DrawWorld renders the level tiles and every visible entity, offset by
// the camera scroll.
func DrawWorld(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.SkyBlue)

	var scrollX float64
	levelEntry, ok := components.Level.First(ecs.World)
	if ok {
		level := components.Level.Get(levelEntry)
		scrollX = level.ScrollX
		drawTiles(screen, level.Current, scrollX)
	}

	components.Sprite.Each(ecs.World, func(e *donburi.Entry) {
		sprite := components.Sprite.Get(e)
		if !sprite.Visible || !e.HasComponent(components.Object) {
			return
		}
		obj := components.Object.Get(e)

		x := obj.X - scrollX
		if x+obj.W < 0 || x > float64(cfg.C.Width) {
			return
		}

		img := sprites.Load(spriteKey(e), int(obj.W), int(obj.H))
		drawOp.GeoM.Reset()
		if sprite.FlipX {
			drawOp.GeoM.Scale(-1, 1)
			drawOp.GeoM.Translate(float64(img.Bounds().Dx()), 0)
		}
		drawOp.GeoM.Translate(x, obj.Y)
		screen.DrawImage(img, drawOp)
	})
}

func drawTiles(screen *ebiten.Image, level *leveldata.Level, scrollX float64) {
	for _, tile := range level.Tiles {
		x := tile.X - scrollX
		if x+tile.W < 0 || x > float64(cfg.C.Width) {
			continue
		}
		vector.DrawFilledRect(screen,
			float32(x), float32(tile.Y), float32(tile.W), float32(tile.H),
			tileColor(tile), false)
	}
}

func tileColor(tile leveldata.Tile) color.RGBA {
	if tile.Hazard {
		return color.RGBA{200, 40, 40, 255}
	}
	switch tile.Code {
	case leveldata.TileFloor:
		return color.RGBA{120, 80, 40, 255}
	case leveldata.TileWall:
		return color.RGBA{90, 90, 100, 255}
	default:
		if tile.Solid {
			return color.RGBA{150, 120, 80, 255}
		}
		return color.RGBA{60, 70, 110, 255}
	}
}

// spriteKey picks the art for an entity from its kind and state.
func spriteKey(e *donburi.Entry) string {
	switch {
	case e.HasComponent(components.Player):
		state := components.State.Get(e)
		name := cfg.StateToSpriteName[state.CurrentState]
		switch state.CurrentState {
		case cfg.StateRunning, cfg.StateRunningShooting, cfg.StateJumpShooting:
			return fmt.Sprintf("player/%s_%d", name, components.Player.Get(e).AnimFrame)
		default:
			return "player/" + name
		}

	case e.HasComponent(components.Enemy):
		enemy := components.Enemy.Get(e)
		switch enemy.TypeName {
		case cfg.KindGolem:
			return "enemy/golem_" + strings.ToLower(enemy.Phase.String())
		case cfg.KindSentry:
			if components.State.Get(e).CurrentState == cfg.StateShooting {
				return "enemy/sentry_shoot"
			}
			return "enemy/sentry_guard"
		default:
			return "enemy/" + enemy.TypeName
		}

	case e.HasComponent(components.Projectile):
		proj := components.Projectile.Get(e)
		switch {
		case proj.FromPlayer:
			return "fx/bullet"
		case proj.Gravity != 0:
			return "fx/rock"
		default:
			return "fx/shot"
		}

	case e.HasComponent(components.Item):
		return "items/" + components.Item.Get(e).TypeName
	}
	return "unknown"
}
