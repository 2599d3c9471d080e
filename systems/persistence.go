package systems

import (
	"encoding/json"
	"fmt"

	"github.com/automoto/nightfall/components"
	cfg "github.com/automoto/nightfall/config"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	VolumeIndex int  `json:"volumeIndex"`
	Muted       bool `json:"muted"`
	Fullscreen  bool `json:"fullscreen"`
}

// Store is the subset of gdata.Manager that settings use.
type Store interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

// OpenSettingsStore opens the gdata store for the application's settings.
func OpenSettingsStore() (*gdata.Manager, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.SettingsMenu.AppName,
	})
	if err != nil {
		return nil, fmt.Errorf("open settings store: %w", err)
	}
	return m, nil
}

// DefaultSettings are used until the player saves their own.
func DefaultSettings() SavedSettings {
	return SavedSettings{VolumeIndex: cfg.SettingsMenu.DefaultVolumeIndex}
}

// LoadSettings reads saved settings. A nil store or a missing item yields
// the defaults.
func LoadSettings(store Store) (SavedSettings, error) {
	settings := DefaultSettings()
	if store == nil {
		return settings, nil
	}

	data, err := store.LoadItem(cfg.SettingsMenu.SaveKey)
	if err != nil {
		return settings, fmt.Errorf("load settings: %w", err)
	}
	if len(data) == 0 {
		return settings, nil
	}
	if err := json.Unmarshal(data, &settings); err != nil {
		return DefaultSettings(), fmt.Errorf("parse settings: %w", err)
	}
	if settings.VolumeIndex < 0 || settings.VolumeIndex >= len(cfg.SettingsMenu.VolumeSteps) {
		settings.VolumeIndex = cfg.SettingsMenu.DefaultVolumeIndex
	}
	return settings, nil
}

// SaveSettings writes settings to the store.
func SaveSettings(store Store, s SavedSettings) error {
	if store == nil {
		return nil
	}
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := store.SaveItem(cfg.SettingsMenu.SaveKey, data); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// EffectiveVolume is the effects volume the settings select.
func EffectiveVolume(s SavedSettings) float64 {
	if s.Muted {
		return 0
	}
	return cfg.SettingsMenu.VolumeSteps[s.VolumeIndex]
}

// CycleVolume steps to the next volume level, wrapping to silence.
func CycleVolume(s *components.SettingsData) {
	s.VolumeIndex = (s.VolumeIndex + 1) % len(cfg.SettingsMenu.VolumeSteps)
	s.Muted = false
}

// ToSaved and FromSaved convert between the component and its disk form.
func ToSaved(s *components.SettingsData) SavedSettings {
	return SavedSettings{VolumeIndex: s.VolumeIndex, Muted: s.Muted, Fullscreen: s.Fullscreen}
}

func FromSaved(s SavedSettings) components.SettingsData {
	return components.SettingsData{VolumeIndex: s.VolumeIndex, Muted: s.Muted, Fullscreen: s.Fullscreen}
}
