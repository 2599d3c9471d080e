package components

import "github.com/yohamta/donburi"

// SettingsData is the player's adjustable preferences.
type SettingsData struct {
	VolumeIndex int
	Muted       bool
	Fullscreen  bool
}

var Settings = donburi.NewComponentType[SettingsData]()
