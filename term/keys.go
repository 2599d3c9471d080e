package term

import (
	"time"

	cfg "github.com/automoto/nightfall/config"
	"github.com/automoto/nightfall/level"
	"github.com/gdamore/tcell/v2"
)

// Keys turns terminal key presses into held actions. Terminals report
// presses and auto-repeats but no releases, so an action stays held for a
// short window after its last press.
type Keys struct {
	window  time.Duration
	last    [cfg.ActionCount]time.Time
	pending [cfg.ActionCount]bool
}

func NewKeys(window time.Duration) *Keys {
	return &Keys{window: window}
}

// Press records an action pressed at now.
func (k *Keys) Press(a cfg.ActionID, now time.Time) {
	if a <= cfg.ActionNone || a >= cfg.ActionCount {
		return
	}
	if !k.Held(a, now) {
		k.pending[a] = true
	}
	k.last[a] = now
}

// Held reports whether a was pressed within the hold window before now.
func (k *Keys) Held(a cfg.ActionID, now time.Time) bool {
	t := k.last[a]
	return !t.IsZero() && now.Sub(t) <= k.window
}

// Take reports whether a started since the last Take and clears it.
func (k *Keys) Take(a cfg.ActionID) bool {
	started := k.pending[a]
	k.pending[a] = false
	return started
}

// Input is the level input for the actions held at now.
func (k *Keys) Input(now time.Time) level.Input {
	in := level.Input{
		Jump:  k.Held(cfg.ActionJump, now),
		Slide: k.Held(cfg.ActionSlide, now),
	}
	if k.Held(cfg.ActionMoveLeft, now) {
		in.Move--
	}
	if k.Held(cfg.ActionMoveRight, now) {
		in.Move++
	}
	return in
}

// ActionFor maps a key event to the action bound to it.
func ActionFor(ev *tcell.EventKey) (cfg.ActionID, bool) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return cfg.ActionMoveLeft, true
	case tcell.KeyRight:
		return cfg.ActionMoveRight, true
	case tcell.KeyUp:
		return cfg.ActionJump, true
	case tcell.KeyDown:
		return cfg.ActionSlide, true
	case tcell.KeyEnter:
		return cfg.ActionContinue, true
	case tcell.KeyRune:
		return actionForRune(ev.Rune())
	}
	return cfg.ActionNone, false
}

func actionForRune(r rune) (cfg.ActionID, bool) {
	for action, runes := range cfg.Input.TermRunes {
		for _, bound := range runes {
			if bound == r {
				return action, true
			}
		}
	}
	return cfg.ActionNone, false
}
