package factory

import (
	"github.com/automoto/robots/archetypes"
	"github.com/automoto/robots/assets"
	"github.com/automoto/robots/assets/animations"
	"github.com/automoto/robots/components"
	cfg "github.com/automoto/robots/config"
	"github.com/automoto/robots/shared/geom"
	"github.com/automoto/robots/shared/physics"
	"github.com/automoto/robots/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreatePlayer(ecs *ecs.ECS, spawn geom.Vector, facing float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	p := physics.NewPlayer(spawn, cfg.Player.Box())
	if facing != 0 {
		p.Direction = facing
	}
	components.Player.SetValue(player, components.PlayerData{
		Player: *p,
		Spawn:  spawn,
	})

	obj := resolv.NewObject(0, 0, 1, 1, tags.ResolvPlayer)
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	addToSpace(ecs, obj, p.WorldBox())

	swing := resolv.NewObject(0, 0, 1, 1, tags.ResolvAttack)
	swing.Data = player
	components.Attack.SetValue(player, components.AttackData{Object: swing})
	addToSpace(ecs, swing, cfg.Attack.Box(spawn, p.Direction))

	components.Animation.SetValue(player, components.AnimationData{
		Walk:        animations.NewAnimation(cfg.Animation.FrameDuration, cfg.Animation.Frames, cfg.Animation.Rows),
		Sheet:       assets.WalkSheet,
		FrameWidth:  cfg.Player.FrameWidth,
		FrameHeight: cfg.Player.FrameHeight,
	})

	return player
}
