package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/robots/shared/geom"
	"github.com/automoto/robots/shared/physics"
)

type PlayerData struct {
	physics.Player
	Spawn geom.Vector
	// Last is what the most recent step ran into.
	Last physics.Result
}

var Player = donburi.NewComponentType[PlayerData]()
