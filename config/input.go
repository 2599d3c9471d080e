package config

import "time"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionSlide
	ActionContinue
	ActionPause
	ActionCount // Must be last - used for array sizing
)

// InputConfig holds device-independent input settings. Key and button
// bindings live with the frontend that polls them.
type InputConfig struct {
	// Terminals report key presses but never releases, so a key counts as
	// held until this long after its last press or repeat.
	TermHoldWindow time.Duration
	// Terminal runes bound to each action
	TermRunes map[ActionID][]rune
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		TermHoldWindow: 120 * time.Millisecond,
		TermRunes: map[ActionID][]rune{
			ActionMoveLeft:  {'a', 'h'},
			ActionMoveRight: {'d', 'l'},
			ActionJump:      {'w', 'k', ' '},
			ActionSlide:     {'s', 'j'},
			ActionContinue:  {'c', '\r'},
			ActionPause:     {'q'},
		},
	}
}
