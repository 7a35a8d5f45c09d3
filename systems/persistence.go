package systems

import (
	"encoding/json"
	"fmt"
	"log"

	cfg "github.com/automoto/robots/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Debug      bool   `json:"debug"`
	Fullscreen bool   `json:"fullscreen"`
	LastLevel  string `json:"lastLevel"`
}

// settingsStore is the part of gdata.Manager the settings need.
type settingsStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// store stays nil when persistence is unavailable.
var store settingsStore

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Settings.AppName,
	})
	if err != nil {
		return fmt.Errorf("open settings storage: %w", err)
	}
	store = m
	return nil
}

// LoadSettings loads settings from disk. It returns nil without an error
// when persistence is unavailable or nothing has been saved yet.
func LoadSettings() (*SavedSettings, error) {
	if store == nil {
		return nil, nil
	}

	data, err := store.LoadItem(cfg.Settings.ItemName)
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("parse saved settings: %w", err)
	}

	return &settings, nil
}

// SaveSettings saves settings to disk. It is a no-op when persistence is
// unavailable.
func SaveSettings(s *SavedSettings) error {
	if store == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("serialize settings: %w", err)
	}
	if err := store.SaveItem(cfg.Settings.ItemName, data); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// ApplySavedSettingsGlobal applies settings before any scene exists.
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}
	cfg.Debug.Enabled = saved.Debug
	ebiten.SetFullscreen(saved.Fullscreen)
}
