package factory

import (
	"github.com/automoto/robots/archetypes"
	"github.com/automoto/robots/components"
	cfg "github.com/automoto/robots/config"
	"github.com/automoto/robots/shared/leveldata"
	"github.com/automoto/robots/shared/physics"
	"github.com/automoto/robots/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateEnemy(ecs *ecs.ECS, spawn leveldata.Spawn) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(ecs)

	body := physics.NewBody(spawn.Position, cfg.Enemy.Box(), spawn.Direction)
	components.Enemy.SetValue(enemy, components.EnemyData{
		Body:  *body,
		Index: spawn.Index,
	})

	obj := resolv.NewObject(0, 0, 1, 1, tags.ResolvEnemy)
	obj.Data = enemy
	components.Object.SetValue(enemy, components.ObjectData{Object: obj})
	addToSpace(ecs, obj, body.WorldBox())

	components.Health.SetValue(enemy, components.HealthData{
		Current: cfg.Enemy.Health,
		Max:     cfg.Enemy.Health,
	})

	// Permanently attached to avoid archetype thrashing
	components.Flash.SetValue(enemy, components.FlashData{})

	return enemy
}

// EnemySpawns returns the level's enemy spawns, or the configured defaults
// for formats that carry none.
func EnemySpawns(level *leveldata.Level) []leveldata.Spawn {
	if len(level.EnemySpawns) > 0 {
		return level.EnemySpawns
	}
	spawns := make([]leveldata.Spawn, len(cfg.Level.EnemySpawns))
	for i, p := range cfg.Level.EnemySpawns {
		spawns[i] = leveldata.Spawn{Position: p, Direction: cfg.Level.EnemyFacing, Index: i}
	}
	return spawns
}

// PlayerSpawn returns the level's first player spawn, or the configured
// default.
func PlayerSpawn(level *leveldata.Level) leveldata.Spawn {
	if len(level.PlayerSpawns) > 0 {
		return level.PlayerSpawns[0]
	}
	return leveldata.Spawn{Position: cfg.Level.PlayerSpawn, Direction: cfg.DirectionRight}
}
