package config

import "time"

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// Player sounds
	SoundJump
	SoundPlayerKilled
	SoundPlayerFell
	// Level sounds
	SoundEnemyKilled
	SoundPickupCollected
	SoundPowerUpCollected
	SoundExitReached
	// UI sounds
	SoundMenuSelect
)

func (s SoundID) String() string {
	switch s {
	case SoundJump:
		return "jump"
	case SoundPlayerKilled:
		return "player-killed"
	case SoundPlayerFell:
		return "player-fell"
	case SoundEnemyKilled:
		return "enemy-killed"
	case SoundPickupCollected:
		return "pickup"
	case SoundPowerUpCollected:
		return "power-up"
	case SoundExitReached:
		return "exit-reached"
	case SoundMenuSelect:
		return "menu-select"
	}
	return "none"
}

// Tone is one synthesized note of a sound cue
type Tone struct {
	Freq     float64
	Duration time.Duration
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
}

// SoundConfig maps sound IDs to the tones synthesized for them
type SoundConfig struct {
	Cues              map[SoundID][]Tone
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 0.6,
	}

	ms := time.Millisecond
	Sound = SoundConfig{
		Cues: map[SoundID][]Tone{
			SoundJump:             {{Freq: 440, Duration: 40 * ms}, {Freq: 660, Duration: 60 * ms}},
			SoundPlayerKilled:     {{Freq: 330, Duration: 120 * ms}, {Freq: 220, Duration: 120 * ms}, {Freq: 110, Duration: 240 * ms}},
			SoundPlayerFell:       {{Freq: 520, Duration: 90 * ms}, {Freq: 390, Duration: 90 * ms}, {Freq: 260, Duration: 90 * ms}, {Freq: 130, Duration: 200 * ms}},
			SoundEnemyKilled:      {{Freq: 180, Duration: 60 * ms}, {Freq: 90, Duration: 120 * ms}},
			SoundPickupCollected:  {{Freq: 988, Duration: 50 * ms}, {Freq: 1319, Duration: 90 * ms}},
			SoundPowerUpCollected: {{Freq: 523, Duration: 60 * ms}, {Freq: 659, Duration: 60 * ms}, {Freq: 784, Duration: 60 * ms}, {Freq: 1047, Duration: 140 * ms}},
			SoundExitReached:      {{Freq: 784, Duration: 100 * ms}, {Freq: 988, Duration: 100 * ms}, {Freq: 1175, Duration: 250 * ms}},
			SoundMenuSelect:       {{Freq: 880, Duration: 50 * ms}},
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundPlayerKilled: 1.2,
			SoundPlayerFell:   1.2,
			SoundJump:         0.7,
		},
	}
}
