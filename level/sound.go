package level

import cfg "github.com/automoto/nightfall/config"

// SoundTrigger receives the level's sound events. Implementations must not
// block; the simulation calls Play from inside Update.
type SoundTrigger interface {
	Play(id cfg.SoundID)
}

// SoundFunc adapts a function to SoundTrigger.
type SoundFunc func(id cfg.SoundID)

func (f SoundFunc) Play(id cfg.SoundID) { f(id) }

type noSounds struct{}

func (noSounds) Play(cfg.SoundID) {}
