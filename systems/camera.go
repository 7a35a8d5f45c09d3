package systems

import (
	"math"

	"github.com/automoto/robots/components"
	cfg "github.com/automoto/robots/config"
	"github.com/automoto/robots/shared/gamemath"
	"github.com/automoto/robots/shared/geom"
	"github.com/automoto/robots/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera eases the camera toward a point just ahead of the player and
// never lets it drift more than MaxOffsetY above or below them.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	if playerEntry, ok := tags.Player.First(e.World); ok {
		player := components.Player.Get(playerEntry)
		target := cameraTarget(player.Position, player.Direction)

		t := gamemath.Clamp(cfg.Camera.FollowRate*stepSeconds(), 0, 1)
		camera.Position.X = gamemath.Lerp(camera.Position.X, target.X, t)
		camera.Position.Y = gamemath.Lerp(camera.Position.Y, target.Y, t)
		camera.Position.Y = gamemath.Clamp(camera.Position.Y,
			player.Position.Y-cfg.Camera.MaxOffsetY, player.Position.Y+cfg.Camera.MaxOffsetY)
	}

	offset := updateScreenShake(cameraEntry)
	if camera.Viewport != nil {
		camera.Viewport.Center = geom.Vector{
			X: camera.Position.X + offset.X,
			Y: camera.Position.Y + offset.Y,
		}
	}
}

// cameraTarget is the point the camera follows: the middle of the player's
// box nudged toward where they face.
func cameraTarget(pos geom.Vector, facing float64) geom.Vector {
	half := cfg.Player.Width / 2
	return geom.Vector{
		X: pos.X + half + facing*cfg.Camera.LookAhead,
		Y: pos.Y + cfg.Player.Height/2,
	}
}

// updateScreenShake returns this frame's shake offset and drops the shake
// once its intensity tween has run out.
func updateScreenShake(cameraEntry *donburi.Entry) geom.Vector {
	if !cameraEntry.HasComponent(components.ScreenShake) {
		return geom.Vector{}
	}

	dt := stepSeconds()
	shake := components.ScreenShake.Get(cameraEntry)
	shake.Elapsed += dt

	done := true
	if shake.Tween != nil {
		var intensity float32
		intensity, done = shake.Tween.Update(float32(dt))
		shake.Intensity = float64(intensity)
	}
	if done {
		cameraEntry.RemoveComponent(components.ScreenShake)
		return geom.Vector{}
	}

	return geom.Vector{
		X: math.Sin(shake.Elapsed*cfg.Camera.ShakeFrequencyX) * shake.Intensity,
		Y: math.Cos(shake.Elapsed*cfg.Camera.ShakeFrequencyY) * shake.Intensity,
	}
}

// TriggerScreenShake starts a screen shake. A weaker shake never cuts a
// stronger one short.
func TriggerScreenShake(ecs *ecs.ECS, intensity, duration float64) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}

	if cameraEntry.HasComponent(components.ScreenShake) {
		shake := components.ScreenShake.Get(cameraEntry)
		if intensity < shake.Intensity {
			return
		}
	} else {
		cameraEntry.AddComponent(components.ScreenShake)
	}

	components.ScreenShake.SetValue(cameraEntry, components.ScreenShakeData{
		Tween:     gween.New(float32(intensity), 0, float32(duration), ease.OutQuad),
		Intensity: intensity,
	})
}
