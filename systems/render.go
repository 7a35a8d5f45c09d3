package systems

import (
	"image/color"

	"github.com/automoto/robots/assets"
	"github.com/automoto/robots/components"
	cfg "github.com/automoto/robots/config"
	"github.com/automoto/robots/shared/gamemath"
	"github.com/automoto/robots/shared/geom"
	"github.com/automoto/robots/shared/viewport"
	"github.com/automoto/robots/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

// DrawActors renders the enemies, the player and an active attack. Actors
// outside the visible area are skipped.
func DrawActors(ecs *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	if camera.Viewport == nil {
		return
	}
	view := camera.Viewport.VisibleRect(cfg.Camera.CullMargin)

	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		box := components.Enemy.Get(e).WorldBox()
		if !geom.Overlaps(box, view) {
			return
		}
		c := cfg.Enemy.Tint
		if e.HasComponent(components.Flash) {
			c = mixColor(c, cfg.Effects.FlashColor, float64(components.Flash.Get(e).Amount))
		}
		fillBox(screen, camera.Viewport, box, c)
	})

	components.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		box := player.WorldBox()
		if geom.Overlaps(box, view) {
			drawPlayer(screen, camera.Viewport, e, player, box)
		}

		attack := components.Attack.Get(e)
		if attack.Active {
			x, y, w, h := camera.Viewport.ProjectBox(attack.Box)
			vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 2, cfg.UI.AttackColor, false)
		}
	})
}

func drawPlayer(screen *ebiten.Image, vp *viewport.Viewport, e *donburi.Entry, player *components.PlayerData, box geom.AABB) {
	if !e.HasComponent(components.Animation) {
		fillBox(screen, vp, box, cfg.Blue)
		return
	}
	anim := components.Animation.Get(e)
	if anim.Walk == nil || anim.FrameWidth == 0 || anim.FrameHeight == 0 {
		fillBox(screen, vp, box, cfg.Blue)
		return
	}

	img := assets.GetFrame(anim.Sheet, anim.Walk.Frame(), anim.Walk.Row(), anim.FrameWidth, anim.FrameHeight)
	fw, fh := float64(anim.FrameWidth), float64(anim.FrameHeight)
	x, y, w, h := vp.ProjectBox(box)

	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	// The sheet faces right
	if player.Direction < 0 {
		drawOp.GeoM.Scale(-1, 1)
		drawOp.GeoM.Translate(fw, 0)
	}
	drawOp.GeoM.Scale(w/fw, h/fh)
	drawOp.GeoM.Translate(x, y)
	screen.DrawImage(img, drawOp)
}

func fillBox(screen *ebiten.Image, vp *viewport.Viewport, box geom.AABB, c color.Color) {
	x, y, w, h := vp.ProjectBox(box)
	vector.FillRect(screen, float32(x), float32(y), float32(w), float32(h), c, false)
}

// mixColor moves from a toward b by t in [0, 1].
func mixColor(a, b color.RGBA, t float64) color.RGBA {
	t = gamemath.Clamp(t, 0, 1)
	mix := func(x, y uint8) uint8 {
		return uint8(gamemath.Lerp(float64(x), float64(y), t) + 0.5)
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}
