package systems

import (
	"github.com/automoto/robots/components"
	cfg "github.com/automoto/robots/config"
	"github.com/automoto/robots/shared/physics"
	"github.com/automoto/robots/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEnemies walks every enemy one step against the level. Each enemy
// reads only its own state and the static tree.
func UpdateEnemies(ecs *ecs.ECS) {
	level, ok := currentLevel(ecs)
	if !ok {
		return
	}
	params := cfg.Enemy.Params()
	dt := stepSeconds()

	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		enemy := components.Enemy.Get(e)
		enemy.Last = physics.StepEnemy(&enemy.Body, dt, params, level.Tree)
		syncObject(ecs, e, enemy.WorldBox())
	})
}
