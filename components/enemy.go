package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/robots/shared/physics"
)

type EnemyData struct {
	physics.Body
	Index int // spawn order within the level
	Last  physics.Result
}

var Enemy = donburi.NewComponentType[EnemyData]()
