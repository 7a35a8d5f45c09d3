package factory

import (
	"math"

	"github.com/automoto/robots/archetypes"
	"github.com/automoto/robots/components"
	cfg "github.com/automoto/robots/config"
	"github.com/automoto/robots/shared/geom"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	spaceCellSize = 16
	// spacePadding keeps actors standing on the level's outer edges inside
	// the space.
	spacePadding = 1.0
)

// CreateSpace creates the actor broadphase covering bounds.
func CreateSpace(ecs *ecs.ECS, bounds geom.AABB) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)

	bounds = bounds.Expand(spacePadding, spacePadding)
	scale := cfg.Level.PixelsPerUnit
	width := int(math.Ceil(bounds.Width() * scale))
	height := int(math.Ceil(bounds.Height() * scale))

	components.Space.SetValue(space, components.SpaceData{
		Space:  resolv.NewSpace(width, height, spaceCellSize, spaceCellSize),
		Origin: geom.Vector{X: bounds.X1, Y: bounds.Y1},
		Scale:  scale,
	})
	return space
}

// addToSpace registers obj with the scene's space at the world box b.
func addToSpace(ecs *ecs.ECS, obj *resolv.Object, b geom.AABB) {
	entry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(entry)
	obj.X, obj.Y, obj.W, obj.H = space.Rect(b)
	obj.SetShape(resolv.NewRectangle(0, 0, obj.W, obj.H))
	space.Add(obj)
}
