// rockbuster is a side-scrolling action platformer: run, jump, and
// shoot through a scrolling stage, defeat the boss, collect the drops.
package main

import (
	"fmt"
	"image"
	"os"

	"github.com/grimhold/rockbuster/config"
	"github.com/grimhold/rockbuster/fonts"
	"github.com/grimhold/rockbuster/scenes"
	"github.com/grimhold/rockbuster/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(levelPath string) *Game {
	loadFonts()
	return &Game{
		bounds: image.Rectangle{},
		scene:  scenes.NewStageScene(levelPath),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

// loadFonts registers HUD faces from an optional TTF on disk; a missing
// file falls back to the builtin bitmap face.
func loadFonts() {
	const path = "assets/fonts/hud.ttf"
	fonts.LoadFromFile(fonts.HUD, path, 14)
	fonts.LoadFromFile(fonts.Title, path, 28)
	fonts.LoadFromFile(fonts.Small, path, 10)
}

var (
	flagLevel       string
	flagTuning      string
	flagDebug       bool
	flagMute        bool
	flagWatchConfig bool
)

var rootCmd = &cobra.Command{
	Use:   "rockbuster",
	Short: "Side-scrolling action platformer",
	RunE: func(cmd *cobra.Command, args []string) error {
		config.SetDebugLogging(flagDebug)

		if flagTuning != "" {
			if err := config.LoadTuning(flagTuning); err != nil {
				config.Logger().Warn("tuning overlay not loaded", "path", flagTuning, "err", err)
			}
			if flagWatchConfig {
				stop, err := config.WatchTuning(flagTuning)
				if err != nil {
					config.Logger().Warn("tuning watch unavailable", "err", err)
				} else {
					defer stop()
				}
			}
		}

		systems.SetStartMuted(flagMute)
		game := NewGame(flagLevel)

		ebiten.SetWindowSize(config.C.Width, config.C.Height)
		ebiten.SetWindowTitle("Rockbuster")
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

		return ebiten.RunGame(game)
	},
}

func init() {
	rootCmd.Flags().StringVar(&flagLevel, "level", "", "Path to a TMX level file (default: embedded stage)")
	rootCmd.Flags().StringVar(&flagTuning, "tuning", "", "Path to a YAML tuning overlay")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	rootCmd.Flags().BoolVar(&flagMute, "mute", false, "Start with sound muted")
	rootCmd.Flags().BoolVar(&flagWatchConfig, "watch-config", false, "Hot-reload the tuning overlay on change")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
