package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/automoto/robots/config"
	"github.com/automoto/robots/shared/leveldata"
)

var (
	//go:embed all:levels
	assetFS embed.FS

	//go:embed all:images
	animationFS embed.FS
)

// LevelFS returns the embedded level files.
func LevelFS() fs.FS {
	return assetFS
}

// LoadLevels decodes every embedded level, keyed by file stem.
func LoadLevels() (map[string]*leveldata.Level, []string, error) {
	levels, names, err := leveldata.LoadAll(assetFS, config.Level.Dir, config.Level.PixelsPerUnit)
	if err != nil {
		return nil, nil, fmt.Errorf("load embedded levels: %w", err)
	}
	return levels, names, nil
}

type frameKey struct {
	path     string
	col, row int
}

type AnimationLoader struct {
	cache      map[string]*ebiten.Image
	frameCache map[frameKey]*ebiten.Image
}

func NewAnimationLoader() *AnimationLoader {
	return &AnimationLoader{
		cache:      make(map[string]*ebiten.Image),
		frameCache: make(map[frameKey]*ebiten.Image),
	}
}

var animationLoader = NewAnimationLoader()

func (l *AnimationLoader) MustLoadImage(path string) *ebiten.Image {
	if img, ok := l.cache[path]; ok {
		return img
	}

	imgBytes, err := animationFS.ReadFile(path)
	if err != nil {
		panic(fmt.Sprintf("Failed to read image file %s: %v", path, err))
	}

	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(imgBytes))
	if err != nil {
		panic(fmt.Sprintf("Failed to create image from bytes for %s: %v", path, err))
	}

	l.cache[path] = img

	return img
}

// GetFrame returns a cached sub-image for one cell of a sprite sheet.
func (l *AnimationLoader) GetFrame(path string, col, row, frameWidth, frameHeight int) *ebiten.Image {
	key := frameKey{path: path, col: col, row: row}
	if img, ok := l.frameCache[key]; ok {
		return img
	}

	sheet := l.MustLoadImage(path)
	rect := image.Rect(col*frameWidth, row*frameHeight, (col+1)*frameWidth, (row+1)*frameHeight)
	frame := sheet.SubImage(rect).(*ebiten.Image)
	l.frameCache[key] = frame

	return frame
}

// WalkSheet is the player's running sprite sheet.
const WalkSheet = "images/walk.png"

func GetFrame(path string, col, row, frameWidth, frameHeight int) *ebiten.Image {
	return animationLoader.GetFrame(path, col, row, frameWidth, frameHeight)
}

// PreloadAllAnimations decodes every sprite sheet up front.
func PreloadAllAnimations() {
	animationLoader.MustLoadImage(WalkSheet)
}
