package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"

	"github.com/automoto/robots/shared/viewport"
)

type CameraData struct {
	Position math.Vec2 // followed point in world units, before shake
	Viewport *viewport.Viewport
}

var Camera = donburi.NewComponentType[CameraData]()
