package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/robots/assets/animations"
)

type AnimationData struct {
	Walk        *animations.Animation
	Sheet       string // sprite sheet path inside the asset filesystem
	FrameWidth  int
	FrameHeight int
}

var Animation = donburi.NewComponentType[AnimationData]()
