package systems

import (
	"io"
	"sync"

	"github.com/automoto/nightfall/assets"
	"github.com/automoto/nightfall/components"
	cfg "github.com/automoto/nightfall/config"
	"github.com/automoto/nightfall/level"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Audio plays the synthesized sound cues. ebiten allows a single audio
// context per process, so one Audio is shared across all scenes.
type Audio struct {
	context *audio.Context
	cues    map[cfg.SoundID][]byte
	volume  float64
	logger  *log.Logger
}

var (
	sharedAudio   *Audio
	audioInitOnce sync.Once
)

// SharedAudio returns the process-wide Audio, synthesizing every cue on
// first use. Cues that fail to synthesize are logged and stay silent.
func SharedAudio(logger *log.Logger) *Audio {
	audioInitOnce.Do(func() {
		if logger == nil {
			logger = log.New(io.Discard)
		}
		a := &Audio{
			context: audio.NewContext(cfg.Audio.SampleRate),
			cues:    make(map[cfg.SoundID][]byte, len(cfg.Sound.Cues)),
			volume:  cfg.Audio.DefaultSFXVol,
			logger:  logger.WithPrefix("audio"),
		}
		for id := range cfg.Sound.Cues {
			pcm, err := assets.SynthesizeCue(id, cfg.Audio.SampleRate)
			if err != nil {
				a.logger.Warn("could not synthesize cue", "sound", id, "error", err)
				continue
			}
			a.cues[id] = pcm
		}
		a.logger.Debug("cues synthesized", "count", len(a.cues))
		sharedAudio = a
	})
	return sharedAudio
}

// Play starts a cue immediately. Each call gets its own player so cues
// overlap.
func (a *Audio) Play(id cfg.SoundID) {
	if a == nil || a.volume <= 0 {
		return
	}
	pcm, ok := a.cues[id]
	if !ok {
		return
	}

	volume := a.volume
	if mult, ok := cfg.Sound.VolumeMultipliers[id]; ok {
		volume *= mult
	}
	player := a.context.NewPlayerFromBytes(pcm)
	player.SetVolume(volume)
	player.Play()
}

// SetVolume changes the effects volume (0.0 - 1.0)
func (a *Audio) SetVolume(v float64) {
	if a != nil {
		a.volume = v
	}
}

func (a *Audio) Volume() float64 {
	if a == nil {
		return 0
	}
	return a.volume
}

// QueueSounds returns a sound trigger that queues level cues on the scene's
// audio component. UpdateAudio plays them.
func QueueSounds(e *ecs.ECS) level.SoundTrigger {
	return level.SoundFunc(func(id cfg.SoundID) {
		PlaySFX(e, id)
	})
}

// PlaySFX queues a sound effect to be played
func PlaySFX(e *ecs.ECS, id cfg.SoundID) {
	data := getOrCreateAudio(e)
	data.PendingSFX = append(data.PendingSFX, id)
}

// NewUpdateAudio creates the system that drains queued cues into a.
func NewUpdateAudio(a *Audio) ecs.System {
	return func(e *ecs.ECS) {
		data := getOrCreateAudio(e)
		for _, id := range data.PendingSFX {
			a.Play(id)
		}
		data.PendingSFX = data.PendingSFX[:0]
	}
}

// getOrCreateAudio returns the singleton Audio component for this ECS, creating it if needed
func getOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			PendingSFX: make([]cfg.SoundID, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}
