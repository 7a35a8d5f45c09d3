package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/automoto/robots/assets"
	"github.com/automoto/robots/config"
	"github.com/automoto/robots/fonts"
	"github.com/automoto/robots/scenes"
	"github.com/automoto/robots/shared/leveldata"
	"github.com/automoto/robots/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

func NewGame(scene Scene) *Game {
	return &Game{scene: scene}
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	levelPath := flag.String("level", "", "path to a .tmx or .map level file (default: embedded levels)")
	levelName := flag.String("name", config.Level.Name, "embedded level to play")
	leafSize := flag.Int("leafsize", config.Level.LeafSize, "k-d tree bucket size")
	debug := flag.Bool("debug", false, "start with the debug overlay on")
	flag.Parse()

	config.Level.LeafSize = *leafSize

	if err := fonts.LoadDefaults(config.UI.HUDFontSize); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetTPS(config.Physics.StepRate)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	saved, err := systems.LoadSettings()
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
	} else if saved != nil {
		systems.ApplySavedSettingsGlobal(saved)
		if *levelName == "" {
			*levelName = saved.LastLevel
		}
	}
	if *debug {
		config.Debug.Enabled = true
	}

	name, level, err := loadLevel(*levelPath, *levelName)
	if err != nil {
		log.Fatalf("Failed to load level: %v", err)
	}

	if err := ebiten.RunGame(NewGame(scenes.NewPlatformerScene(name, level))); err != nil {
		log.Fatal(err)
	}
}

// loadLevel reads the level at path from disk, or picks the named embedded
// level, falling back to the first one.
func loadLevel(path, name string) (string, *leveldata.Level, error) {
	if path != "" {
		dir, file := filepath.Split(path)
		if dir == "" {
			dir = "."
		}
		level, err := leveldata.Load(os.DirFS(dir), file, config.Level.PixelsPerUnit)
		if err != nil {
			return "", nil, err
		}
		return strings.TrimSuffix(file, filepath.Ext(file)), level, nil
	}

	levels, names, err := assets.LoadLevels()
	if err != nil {
		return "", nil, err
	}
	if level, ok := levels[name]; ok {
		return name, level, nil
	}
	if len(names) == 0 {
		return "", nil, fmt.Errorf("no embedded levels")
	}
	return names[0], levels[names[0]], nil
}
