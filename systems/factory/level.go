package factory

import (
	"fmt"
	"log"

	"github.com/automoto/robots/archetypes"
	"github.com/automoto/robots/components"
	cfg "github.com/automoto/robots/config"
	"github.com/automoto/robots/shared/kdtree"
	"github.com/automoto/robots/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel builds the spatial index for level and stores both on a new
// level entity. A level the tree cannot be built from is an error.
func CreateLevel(ecs *ecs.ECS, name string, level *leveldata.Level) (*donburi.Entry, error) {
	tree, err := kdtree.Build(level.Boxes, cfg.Level.LeafSize)
	if err != nil {
		return nil, fmt.Errorf("build level %s: %w", name, err)
	}

	entry := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(entry, components.LevelData{
		Name:   name,
		Level:  level,
		Tree:   tree,
		Bounds: tree.Bounds(),
	})

	stats := tree.Stats()
	log.Printf("Loaded level %s: %d boxes, %d leaves, depth %d, %d stored, %d player spawns, %d enemy spawns",
		name, stats.Inputs, stats.Leaves, stats.Depth, stats.Stored, len(level.PlayerSpawns), len(level.EnemySpawns))

	return entry, nil
}
