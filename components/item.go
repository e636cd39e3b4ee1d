package components

import (
	"github.com/grimhold/rockbuster/config"
	"github.com/yohamta/donburi"
)

type ItemData struct {
	TypeName   string // config.ItemSmallHeal etc.
	TypeConfig *config.ItemTypeConfig
	Landed     bool // gravity stops applying after first ground contact
}

var Item = donburi.NewComponentType[ItemData]()
