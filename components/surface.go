package components

import (
	"github.com/automoto/homebound/shared/leveldata"
	"github.com/yohamta/donburi"
)

type SurfaceData struct {
	ID   string
	Kind leveldata.SurfaceKind
}

var Surface = donburi.NewComponentType[SurfaceData]()
