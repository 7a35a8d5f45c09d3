package systems

import (
	"log"

	"github.com/automoto/robots/components"
	cfg "github.com/automoto/robots/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSettings toggles the debug overlay and fullscreen, saving each
// change.
func UpdateSettings(ecs *ecs.ECS) {
	input := GetOrCreateInput(ecs)
	settings := GetOrCreateSettings(ecs)

	changed := false
	if input.Action(cfg.ActionDebug).JustPressed {
		settings.Debug = !settings.Debug
		cfg.Debug.Enabled = settings.Debug
		changed = true
	}
	if input.Action(cfg.ActionFullscreen).JustPressed {
		settings.Fullscreen = !settings.Fullscreen
		ebiten.SetFullscreen(settings.Fullscreen)
		changed = true
	}
	if !changed {
		return
	}

	if err := saveSettings(ecs, settings); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
	}
}

// saveSettings persists settings together with the level being played.
func saveSettings(ecs *ecs.ECS, settings *components.SettingsData) error {
	saved := &SavedSettings{Debug: settings.Debug, Fullscreen: settings.Fullscreen}
	if level, ok := currentLevel(ecs); ok {
		saved.LastLevel = level.Name
	}
	return SaveSettings(saved)
}

// GetOrCreateSettings returns the singleton Settings component, seeded from
// the global config the first time.
func GetOrCreateSettings(ecs *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Settings))
		components.Settings.SetValue(entry, components.SettingsData{
			Debug:      cfg.Debug.Enabled,
			Fullscreen: ebiten.IsFullscreen(),
		})
	}
	return components.Settings.Get(entry)
}
