package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"

	"github.com/automoto/robots/shared/geom"
)

type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// SpaceData is the broadphase for actor-vs-actor queries. Level geometry
// never enters it. resolv cells start at zero, so world boxes are shifted by
// Origin and scaled by Scale on the way in.
type SpaceData struct {
	*resolv.Space
	Origin geom.Vector
	Scale  float64
}

var Space = donburi.NewComponentType[SpaceData]()

// Rect converts a world box into space coordinates.
func (s *SpaceData) Rect(b geom.AABB) (x, y, w, h float64) {
	return (b.X1 - s.Origin.X) * s.Scale, (b.Y1 - s.Origin.Y) * s.Scale, b.Width() * s.Scale, b.Height() * s.Scale
}

// Place moves obj onto the world box b and refreshes its cells.
func (s *SpaceData) Place(obj *resolv.Object, b geom.AABB) {
	obj.X, obj.Y, obj.W, obj.H = s.Rect(b)
	obj.Update()
}
