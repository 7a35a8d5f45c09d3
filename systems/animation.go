package systems

import (
	"github.com/automoto/robots/components"
	"github.com/automoto/robots/shared/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAnimation runs the walk cycle while the player runs, rewinds it
// when they stand still and holds the current frame in the air.
func UpdateAnimation(ecs *ecs.ECS) {
	components.Animation.Each(ecs.World, func(e *donburi.Entry) {
		anim := components.Animation.Get(e)
		if anim.Walk == nil || !e.HasComponent(components.Player) {
			return
		}

		switch components.Player.Get(e).State {
		case physics.StateRunning:
			anim.Walk.Update(stepDuration())
		case physics.StateIdle:
			anim.Walk.Restart()
		}
	})
}
