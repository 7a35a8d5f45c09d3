package systems

import (
	"github.com/automoto/robots/components"
	cfg "github.com/automoto/robots/config"
	"github.com/automoto/robots/shared/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdatePlayer(ecs *ecs.ECS) {
	level, ok := currentLevel(ecs)
	if !ok {
		return
	}
	input := GetOrCreateInput(ecs)

	components.Player.Each(ecs.World, func(playerEntry *donburi.Entry) {
		updateSinglePlayer(ecs, playerEntry, input, level)
	})
}

func updateSinglePlayer(ecs *ecs.ECS, playerEntry *donburi.Entry, input *components.InputData, level *components.LevelData) {
	player := components.Player.Get(playerEntry)

	in := physics.PlayerInput{
		MoveX: input.MoveX,
		Jump:  input.Action(cfg.ActionJump).Pressed,
	}
	player.Last = physics.StepPlayer(&player.Player, in, stepSeconds(), cfg.Player.Params(), level.Tree)

	// Fell out of the level
	if player.WorldBox().Y2 < level.Bounds.Y1-cfg.Player.KillDepth {
		respawnPlayer(player)
	}

	syncObject(ecs, playerEntry, player.WorldBox())
}

func respawnPlayer(player *components.PlayerData) {
	player.Position = player.Spawn
	player.VelocityY = 0
	player.Grounded = false
	player.State = physics.StateIdle
}

// currentLevel returns the loaded level with its tree.
func currentLevel(ecs *ecs.ECS) (*components.LevelData, bool) {
	entry, ok := components.Level.First(ecs.World)
	if !ok {
		return nil, false
	}
	level := components.Level.Get(entry)
	if level.Tree == nil {
		return nil, false
	}
	return level, true
}
