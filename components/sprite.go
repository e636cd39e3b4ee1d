package components

import "github.com/yohamta/donburi"

// SpriteData selects how an entity draws. The image itself is looked
// up by the render system from the shared sprite cache.
type SpriteData struct {
	FlipX   bool
	Visible bool
}

var Sprite = donburi.NewComponentType[SpriteData]()
