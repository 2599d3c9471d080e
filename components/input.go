package components

import (
	cfg "github.com/automoto/nightfall/config"
	"github.com/yohamta/donburi"
)

// InputData stores the current and previous frame's pressed state for all
// actions. JustPressed is computed on demand by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
	// Horizontal stick position in [-1, 1], zero when no stick is present
	Analog float64
}

func (in *InputData) Pressed(a cfg.ActionID) bool {
	return in.Current[a]
}

func (in *InputData) JustPressed(a cfg.ActionID) bool {
	return in.Current[a] && !in.Previous[a]
}

// AnyJustPressed reports whether any action started this frame.
func (in *InputData) AnyJustPressed() bool {
	for a := cfg.ActionID(1); a < cfg.ActionCount; a++ {
		if in.JustPressed(a) {
			return true
		}
	}
	return false
}

var Input = donburi.NewComponentType[InputData]()
