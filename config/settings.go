package config

// SettingsMenuConfig contains settings configuration
type SettingsMenuConfig struct {
	VolumeSteps        []float64
	DefaultVolumeIndex int
	SaveKey            string
	AppName            string
}

// SettingsMenu is the global settings configuration
var SettingsMenu SettingsMenuConfig

func init() {
	SettingsMenu = SettingsMenuConfig{
		VolumeSteps:        []float64{0, 0.25, 0.5, 0.75, 1.0},
		DefaultVolumeIndex: 3,
		SaveKey:            "settings",
		AppName:            "nightfall",
	}
}
