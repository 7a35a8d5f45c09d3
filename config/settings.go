package config

// SettingsConfig names where saved settings live on disk
type SettingsConfig struct {
	AppName  string
	ItemName string
}

// Settings is the global settings storage configuration
var Settings SettingsConfig

func init() {
	Settings = SettingsConfig{
		AppName:  "robots",
		ItemName: "settings",
	}
}
