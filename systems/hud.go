package systems

import (
	"image/color"

	"github.com/grimhold/rockbuster/components"
	cfg "github.com/grimhold/rockbuster/config"
	"github.com/grimhold/rockbuster/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

var gameOverFade *gween.Tween

// DrawHUD renders the health column, score readout, and the boss bar
// when a boss is alive, plus the pause and end-of-session overlays.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	session := GetSession(ecs)

	drawHealthColumn(ecs, screen)
	drawScore(session, screen)
	drawBossBar(ecs, screen)

	switch {
	case session.GameOver:
		drawEndOverlay(screen, "GAME OVER")
	case session.LevelComplete:
		drawEndOverlay(screen, "LEVEL COMPLETE")
	case session.Paused:
		drawPausedOverlay(screen)
	}
	if !session.GameOver && !session.LevelComplete {
		gameOverFade = nil
	}
}

// drawHealthColumn stacks one cell per health point, full cells bright.
func drawHealthColumn(ecs *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := components.Player.First(ecs.World)
	if !ok {
		return
	}
	hp := components.Health.Get(playerEntry)

	for i := 0; i < hp.Max; i++ {
		cellColor := color.RGBA{50, 50, 50, 255}
		if i < hp.Current {
			cellColor = color.RGBA{250, 220, 50, 255}
		}
		y := cfg.UI.HealthBarY + float64(hp.Max-1-i)*(cfg.UI.HealthCellH+2)
		vector.DrawFilledRect(screen,
			float32(cfg.UI.HealthBarX), float32(y),
			float32(cfg.UI.HealthCellW), float32(cfg.UI.HealthCellH),
			cellColor, false)
	}
}

func drawScore(session *components.SessionData, screen *ebiten.Image) {
	face := fonts.HUD.Get()
	score := session.FormattedScore()
	x := cfg.C.Width - 12 - len(score)*7
	text.Draw(screen, score, face, x, 24, cfg.White)
}

// drawBossBar shows the boss health fraction top-center while a boss
// is alive.
func drawBossBar(ecs *ecs.ECS, screen *ebiten.Image) {
	fraction, ok := BossHealthFraction(ecs)
	if !ok {
		return
	}
	x := float32(cfg.C.Width)/2 - float32(cfg.UI.BossBarWidth)/2
	y := float32(cfg.UI.BossBarMargin)
	vector.DrawFilledRect(screen, x, y,
		float32(cfg.UI.BossBarWidth), float32(cfg.UI.BossBarHeight),
		color.RGBA{40, 40, 40, 255}, false)
	vector.DrawFilledRect(screen, x, y,
		float32(cfg.UI.BossBarWidth)*float32(fraction), float32(cfg.UI.BossBarHeight),
		color.RGBA{200, 60, 200, 255}, false)
}

func drawPausedOverlay(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0,
		float32(cfg.C.Width), float32(cfg.C.Height), cfg.BlackOverlay, false)
	face := fonts.Title.Get()
	title := "PAUSED"
	x := (cfg.C.Width - len(title)*7) / 2
	text.Draw(screen, title, face, x, cfg.C.Height/2, cfg.White)
}

// drawEndOverlay fades in a dark overlay, then the banner text.
func drawEndOverlay(screen *ebiten.Image, title string) {
	if gameOverFade == nil {
		gameOverFade = gween.New(0, 180, cfg.UI.GameOverFadeSec, ease.OutQuad)
	}
	alpha, _ := gameOverFade.Update(1.0 / 60.0)

	vector.DrawFilledRect(screen, 0, 0,
		float32(cfg.C.Width), float32(cfg.C.Height),
		color.RGBA{0, 0, 0, uint8(alpha)}, false)

	face := fonts.Title.Get()
	x := (cfg.C.Width - len(title)*7) / 2
	text.Draw(screen, title, face, x, cfg.C.Height/2, cfg.White)

	hint := "PRESS ENTER TO RESTART"
	hintFace := fonts.Small.Get()
	hx := (cfg.C.Width - len(hint)*7) / 2
	text.Draw(screen, hint, hintFace, hx, cfg.C.Height/2+28, cfg.White)
}
