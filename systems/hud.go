package systems

import (
	"fmt"

	"github.com/automoto/robots/components"
	cfg "github.com/automoto/robots/config"
	"github.com/automoto/robots/fonts"
	"github.com/automoto/robots/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders the level name, the robots left and the tick rate in the
// top-left corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	if !fonts.Loaded(fonts.HUD) {
		return
	}
	face := fonts.HUD.Get()
	lineHeight := face.Metrics().Height.Ceil()
	x := int(cfg.UI.HUDMargin)
	y := int(cfg.UI.HUDMargin) + lineHeight

	name := "?"
	if level, ok := currentLevel(ecs); ok {
		name = level.Name
	}
	robots := countEnemies(ecs)

	lines := []string{
		fmt.Sprintf("level %s", name),
		fmt.Sprintf("robots %d", robots),
		fmt.Sprintf("tps %.0f", ebiten.ActualTPS()),
	}
	if robots == 0 {
		lines = append(lines, "all robots down")
	}
	if entry, ok := components.Player.First(ecs.World); ok && cfg.Debug.Enabled {
		lines = append(lines, components.Player.Get(entry).State.String())
	}

	for i, line := range lines {
		text.Draw(screen, line, face, x, y+i*lineHeight, cfg.UI.TextColor)
	}
}

func countEnemies(ecs *ecs.ECS) int {
	n := 0
	tags.Enemy.Each(ecs.World, func(*donburi.Entry) { n++ })
	return n
}
