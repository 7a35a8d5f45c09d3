package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/robots/components"
	cfg "github.com/automoto/robots/config"
	"github.com/automoto/robots/fonts"
	"github.com/automoto/robots/shared/geom"
	"github.com/automoto/robots/shared/kdtree"
	"github.com/automoto/robots/shared/viewport"
	"github.com/automoto/robots/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug overlays the tree's split planes, the boxes each body tested
// last step, the bodies themselves and the enemies' ledge sensors.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}

	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	vp := components.Camera.Get(cameraEntry).Viewport
	if vp == nil {
		return
	}

	if level, ok := currentLevel(ecs); ok {
		drawSplits(screen, vp, level)
	}

	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		enemy := components.Enemy.Get(e)
		outlineBoxes(screen, vp, enemy.Candidates(), cfg.Yellow)
		outlineBox(screen, vp, enemy.WorldBox(), cfg.Red)
		drawSensors(screen, vp, enemy)
	})

	components.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		outlineBoxes(screen, vp, player.Candidates(), cfg.Yellow)
		outlineBox(screen, vp, player.WorldBox(), cfg.Cyan)

		if fonts.Loaded(fonts.Debug) {
			line := fmt.Sprintf("state %s  candidates %d  contacts %d  vy %.3f",
				player.State, player.Last.Candidates, player.Last.Contacts, player.VelocityY)
			text.Draw(screen, line, fonts.Debug.Get(), int(cfg.UI.HUDMargin), screen.Bounds().Dy()-int(cfg.UI.HUDMargin), cfg.UI.TextColor)
		}
	})
}

// drawSplits draws each split plane clipped to the region its node covers.
func drawSplits(screen *ebiten.Image, vp *viewport.Viewport, level *components.LevelData) {
	level.Tree.Walk(level.Bounds, func(axis kdtree.Axis, boundary float64, region geom.AABB) {
		var from, to geom.Vector
		if axis == kdtree.AxisX {
			from, to = geom.Vector{X: boundary, Y: region.Y1}, geom.Vector{X: boundary, Y: region.Y2}
		} else {
			from, to = geom.Vector{X: region.X1, Y: boundary}, geom.Vector{X: region.X2, Y: boundary}
		}
		x0, y0 := vp.Project(from)
		x1, y1 := vp.Project(to)
		vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 1, cfg.Magenta, false)
	})
}

func drawSensors(screen *ebiten.Image, vp *viewport.Viewport, enemy *components.EnemyData) {
	box := enemy.WorldBox()
	y := box.Y1 - cfg.Enemy.SensorDepth
	sensors := []struct {
		at        geom.Vector
		supported bool
	}{
		{geom.Vector{X: box.X1, Y: y}, enemy.Last.LeftSupported},
		{geom.Vector{X: box.X2, Y: y}, enemy.Last.RightSupported},
	}
	for _, s := range sensors {
		c := cfg.Red
		if s.supported {
			c = cfg.Green
		}
		x, sy := vp.Project(s.at)
		vector.FillRect(screen, float32(x)-2, float32(sy)-2, 4, 4, c, false)
	}
}

func outlineBoxes(screen *ebiten.Image, vp *viewport.Viewport, boxes []*geom.AABB, c color.Color) {
	for _, b := range boxes {
		outlineBox(screen, vp, *b, c)
	}
}

func outlineBox(screen *ebiten.Image, vp *viewport.Viewport, b geom.AABB, c color.Color) {
	x, y, w, h := vp.ProjectBox(b)
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 1, c, false)
}
