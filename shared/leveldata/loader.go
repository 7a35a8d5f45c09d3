package leveldata

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"

	"github.com/automoto/robots/shared/geom"
)

// CollisionLayer is the tile layer whose tiles become solid boxes.
const CollisionLayer = "collision"

// LoadTMX parses a Tiled map. Every tile of the collision layer becomes one
// box; PlayerSpawn and EnemySpawn object groups become spawn points. Tiled
// pixel coordinates (y down, origin top-left) are converted to world units
// (y up, origin at the map's bottom-left corner) by dividing by
// pixelsPerUnit. It takes an fs.FS so callers can pass embed.FS (client) or
// os.DirFS (server).
func LoadTMX(fsys fs.FS, tmxPath string, pixelsPerUnit float64) (*Level, error) {
	if pixelsPerUnit <= 0 {
		return nil, fmt.Errorf("load TMX %s: pixels per unit must be positive, got %v", tmxPath, pixelsPerUnit)
	}
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	heightPx := float64(levelMap.Height * levelMap.TileHeight)
	toWorld := func(x, y float64) geom.Vector {
		return geom.Vector{X: x / pixelsPerUnit, Y: (heightPx - y) / pixelsPerUnit}
	}

	level := &Level{Name: tmxPath}

	found := false
	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	for _, layer := range levelMap.Layers {
		if layer.Name != CollisionLayer {
			continue
		}
		found = true
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				if layer.Tiles[y*levelMap.Width+x].IsNil() {
					continue
				}
				topLeft := toWorld(float64(x)*tileW, float64(y)*tileH)
				bottomRight := toWorld(float64(x+1)*tileW, float64(y+1)*tileH)
				level.Boxes = append(level.Boxes, geom.NewAABB(topLeft.X, topLeft.Y, bottomRight.X, bottomRight.Y))
			}
		}
		break
	}
	if !found {
		return nil, fmt.Errorf("load TMX %s: %w %q", tmxPath, ErrNoCollisionLayer, CollisionLayer)
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "PlayerSpawn":
			for _, o := range og.Objects {
				level.PlayerSpawns = append(level.PlayerSpawns, Spawn{
					Position:  toWorld(o.X, o.Y),
					Direction: direction(o.Properties.GetInt("direction"), 1),
					Index:     o.Properties.GetInt("spawnIndex"),
				})
			}
		case "EnemySpawn":
			for _, o := range og.Objects {
				level.EnemySpawns = append(level.EnemySpawns, Spawn{
					Position:  toWorld(o.X, o.Y),
					Direction: direction(o.Properties.GetInt("direction"), -1),
					Index:     len(level.EnemySpawns),
				})
			}
		}
	}

	sort.SliceStable(level.PlayerSpawns, func(i, j int) bool {
		return level.PlayerSpawns[i].Index < level.PlayerSpawns[j].Index
	})

	return level, nil
}

func direction(v, fallback int) float64 {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return float64(fallback)
	}
}

// Load decodes a level by file extension: .map or .tmx. pixelsPerUnit only
// applies to .tmx files.
func Load(fsys fs.FS, name string, pixelsPerUnit float64) (*Level, error) {
	switch strings.ToLower(path.Ext(name)) {
	case ".map":
		return LoadMap(fsys, name)
	case ".tmx":
		return LoadTMX(fsys, name, pixelsPerUnit)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, name)
	}
}

// LoadAll discovers every .map and .tmx file in dir within fsys and loads
// it. Levels are keyed by file stem; names are returned sorted.
func LoadAll(fsys fs.FS, dir string, pixelsPerUnit float64) (map[string]*Level, []string, error) {
	var matches []string
	for _, ext := range []string{"*.tmx", "*.map"} {
		pattern := path.Join(dir, ext)
		m, err := fs.Glob(fsys, pattern)
		if err != nil {
			return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
		}
		matches = append(matches, m...)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no level files found in %s", dir)
	}

	levels := make(map[string]*Level, len(matches))
	names := make([]string, 0, len(matches))
	for _, p := range matches {
		level, err := Load(fsys, p, pixelsPerUnit)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", p, err)
		}
		stem := strings.TrimSuffix(path.Base(p), path.Ext(p))
		if _, dup := levels[stem]; dup {
			continue
		}
		levels[stem] = level
		names = append(names, stem)
	}

	sort.Strings(names)
	return levels, names, nil
}
