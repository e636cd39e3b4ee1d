package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID identifies a logical input action independent of the bound keys.
type ActionID int

const (
	ActionMoveLeft ActionID = iota
	ActionMoveRight
	ActionJump
	ActionFire
	ActionPause
	ActionRestart

	ActionCount
)

// ActionBinding maps an action to one or more physical keys.
type ActionBinding struct {
	Keys []ebiten.Key
}

// InputConfig contains the key bindings for all actions
type InputConfig struct {
	Bindings map[ActionID]ActionBinding
}

var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]ActionBinding{
			ActionMoveLeft:  {Keys: []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}},
			ActionMoveRight: {Keys: []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}},
			ActionJump:      {Keys: []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}},
			ActionFire:      {Keys: []ebiten.Key{ebiten.KeySpace, ebiten.KeyX}},
			ActionPause:     {Keys: []ebiten.Key{ebiten.KeyEscape, ebiten.KeyP}},
			ActionRestart:   {Keys: []ebiten.Key{ebiten.KeyEnter, ebiten.KeyNumpadEnter}},
		},
	}
}
