package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/robots/shared/geom"
	"github.com/automoto/robots/shared/kdtree"
	"github.com/automoto/robots/shared/leveldata"
)

type LevelData struct {
	Name   string
	Level  *leveldata.Level
	Tree   *kdtree.Tree
	Bounds geom.AABB
}

var Level = donburi.NewComponentType[LevelData]()
