package protocol

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/robots/shared/gamemath"
)

// NetBodyData is an actor's world box, y-up, in world units.
type NetBodyData struct {
	X, Y, W, H float64
}

var NetBody = donburi.NewComponentType[NetBodyData]()

// LerpNetBody interpolates between two boxes
func LerpNetBody(from, to NetBodyData, t float64) *NetBodyData {
	return &NetBodyData{
		X: gamemath.Lerp(from.X, to.X, t),
		Y: gamemath.Lerp(from.Y, to.Y, t),
		W: to.W,
		H: to.H,
	}
}

// Actor kinds
const (
	KindPlayer = "player"
	KindEnemy  = "enemy"
)

// NetActorData is the discrete part of an actor; it is never interpolated.
type NetActorData struct {
	Kind      string
	ID        int
	Direction float64 // -1 left, 1 right
	State     string  // players only
}

var NetActor = donburi.NewComponentType[NetActorData]()
