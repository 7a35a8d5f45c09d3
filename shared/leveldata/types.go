// Package leveldata decodes level geometry shared between client and server.
// It has no dependencies on ebitengine, donburi or resolv.
//
// Two formats are understood: the binary .map format (four corner points per
// solid rectangle) and Tiled .tmx maps. Both decode to world units in a y-up
// space.
package leveldata

import (
	"errors"

	"github.com/automoto/robots/shared/geom"
)

var (
	// ErrPointCount is returned for .map data whose point count is not a
	// multiple of four.
	ErrPointCount = errors.New("leveldata: point count is not a multiple of 4")
	// ErrTruncated is returned for .map data that ends inside a point.
	ErrTruncated = errors.New("leveldata: truncated point data")
	// ErrNoCollisionLayer is returned for .tmx maps without a collision layer.
	ErrNoCollisionLayer = errors.New("leveldata: no collision layer")
	// ErrUnknownFormat is returned by Load for unsupported file extensions.
	ErrUnknownFormat = errors.New("leveldata: unknown level format")
)

// Level is decoded level data.
type Level struct {
	Name         string
	Boxes        []geom.AABB
	PlayerSpawns []Spawn
	EnemySpawns  []Spawn
}

// Spawn is an entity start position in world units.
type Spawn struct {
	Position geom.Vector
	// Direction is the initial facing, -1 or +1.
	Direction float64
	Index     int
}

// Bounds returns the union of all boxes, or the zero box for an empty level.
func (l *Level) Bounds() geom.AABB {
	if len(l.Boxes) == 0 {
		return geom.AABB{}
	}
	out := l.Boxes[0]
	for _, b := range l.Boxes[1:] {
		out = geom.Union(out, b)
	}
	return out
}
