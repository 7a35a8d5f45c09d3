package components

import "github.com/yohamta/donburi"

// SettingsData stores the runtime settings toggled in game
type SettingsData struct {
	Debug      bool
	Fullscreen bool
}

var Settings = donburi.NewComponentType[SettingsData]()
