package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// ScreenShakeData tracks active screen shake effect on the camera
type ScreenShakeData struct {
	Tween     *gween.Tween // intensity, decaying to zero
	Intensity float64      // current offset amplitude in world units
	Elapsed   float64      // seconds, drives the oscillation
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()

// FlashData tracks the hit flash on an enemy
type FlashData struct {
	Tween  *gween.Tween // flash amount, decaying to zero
	Amount float32      // 0 = own color, 1 = flash color
}

var Flash = donburi.NewComponentType[FlashData]()
