// Package animations steps through the frames of character animations.
package animations

import (
	"errors"
	"fmt"

	"github.com/automoto/nightfall/config"
)

// ErrNotPlaying is returned when a frame is requested before any
// animation was started.
var ErrNotPlaying = errors.New("animation: nothing playing")

type Animation struct {
	Frames    int
	FrameTime float64 // seconds per frame
	Loop      bool
	elapsed   float64
	frame     int
	Looped    bool
}

// NewAnimation starts def at its first frame.
func NewAnimation(def config.AnimationDef) *Animation {
	frames := def.Frames
	if frames < 1 {
		frames = 1
	}
	return &Animation{
		Frames:    frames,
		FrameTime: def.FrameTime,
		Loop:      def.Loop,
	}
}

func (a *Animation) Update(dt float64) {
	a.elapsed += dt
	a.frame = FrameAt(config.AnimationDef{Frames: a.Frames, FrameTime: a.FrameTime, Loop: a.Loop}, a.elapsed)
	if a.FrameTime > 0 && a.elapsed >= a.FrameTime*float64(a.Frames) {
		a.Looped = true
	}
}

func (a *Animation) Frame() int {
	return a.frame
}

func (a *Animation) Restart() {
	a.elapsed = 0
	a.frame = 0
	a.Looped = false
}

// FrameAt returns the frame shown t seconds into def. Non-looping
// animations hold their last frame.
func FrameAt(def config.AnimationDef, t float64) int {
	if def.Frames <= 1 || def.FrameTime <= 0 || t <= 0 {
		return 0
	}
	frame := int(t / def.FrameTime)
	if def.Loop {
		return frame % def.Frames
	}
	if frame >= def.Frames {
		return def.Frames - 1
	}
	return frame
}

// Player switches a character between its state animations.
type Player struct {
	character string
	defs      map[config.StateID]config.AnimationDef
	state     config.StateID
	current   *Animation
}

// NewPlayer returns a player for a character key of
// config.CharacterAnimations.
func NewPlayer(character string) (*Player, error) {
	defs, ok := config.CharacterAnimations[character]
	if !ok {
		return nil, fmt.Errorf("animation: unknown character %q", character)
	}
	return &Player{character: character, defs: defs}, nil
}

// Play switches to the animation for state. Playing the current state
// again keeps its progress.
func (p *Player) Play(state config.StateID) error {
	if p.current != nil && p.state == state {
		return nil
	}
	def, ok := p.defs[state]
	if !ok {
		return fmt.Errorf("animation: %s has no %s animation", p.character, state)
	}
	p.state = state
	p.current = NewAnimation(def)
	return nil
}

func (p *Player) Update(dt float64) {
	if p.current != nil {
		p.current.Update(dt)
	}
}

// Frame is the current frame of the playing animation.
func (p *Player) Frame() (int, error) {
	if p.current == nil {
		return 0, ErrNotPlaying
	}
	return p.current.Frame(), nil
}

// State is the state whose animation is playing.
func (p *Player) State() config.StateID {
	return p.state
}
