package core

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/automoto/robots/shared/leveldata"
)

// LoadLevel reads a .tmx or .map level from disk and names it after the file.
func LoadLevel(path string, pixelsPerUnit float64) (string, *leveldata.Level, error) {
	dir, file := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	level, err := leveldata.Load(os.DirFS(dir), file, pixelsPerUnit)
	if err != nil {
		return "", nil, fmt.Errorf("load level %s: %w", path, err)
	}
	return strings.TrimSuffix(file, filepath.Ext(file)), level, nil
}

func enemySpawns(level *leveldata.Level) []leveldata.Spawn {
	if len(level.EnemySpawns) > 0 {
		return level.EnemySpawns
	}
	spawns := make([]leveldata.Spawn, len(defaultEnemySpawns))
	for i, p := range defaultEnemySpawns {
		spawns[i] = leveldata.Spawn{Position: p, Direction: enemyFacing, Index: i}
	}
	return spawns
}

func playerSpawn(level *leveldata.Level) leveldata.Spawn {
	if len(level.PlayerSpawns) > 0 {
		return level.PlayerSpawns[0]
	}
	return leveldata.Spawn{Position: defaultPlayerSpawn, Direction: 1}
}
