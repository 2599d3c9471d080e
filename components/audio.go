package components

import (
	cfg "github.com/automoto/nightfall/config"
	"github.com/yohamta/donburi"
)

// AudioData queues sound cues raised during a frame until the audio system
// plays them.
type AudioData struct {
	PendingSFX []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
