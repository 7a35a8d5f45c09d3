package systems

import (
	"github.com/automoto/robots/components"
	cfg "github.com/automoto/robots/config"
	"github.com/automoto/robots/shared/geom"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// Reused between frames for the visible level boxes
var visibleBoxes []*geom.AABB

// DrawLevel fills every level box the camera can see. The boxes come from a
// single range query around the visible area, never a full scan.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	if camera.Viewport == nil {
		return
	}

	level, ok := currentLevel(ecs)
	if !ok {
		return
	}

	visibleBoxes = level.Tree.AppendRange(visibleBoxes[:0], camera.Viewport.VisibleRect(cfg.Camera.CullMargin))
	for _, b := range visibleBoxes {
		x, y, w, h := camera.Viewport.ProjectBox(*b)
		vector.FillRect(screen, float32(x), float32(y), float32(w), float32(h), cfg.UI.LevelColor, false)
	}
}
