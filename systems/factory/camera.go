package factory

import (
	"github.com/automoto/robots/archetypes"
	"github.com/automoto/robots/components"
	cfg "github.com/automoto/robots/config"
	"github.com/automoto/robots/shared/geom"
	"github.com/automoto/robots/shared/viewport"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateCamera places the camera over at.
func CreateCamera(ecs *ecs.ECS, at geom.Vector) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)

	vp := viewport.New(cfg.C.Width, cfg.C.Height)
	vp.FOV = cfg.Camera.FOV
	vp.Distance = cfg.Camera.Distance
	vp.Center = at

	components.Camera.SetValue(camera, components.CameraData{
		Position: math.NewVec2(at.X, at.Y),
		Viewport: vp,
	})
	return camera
}
