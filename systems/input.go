package systems

import (
	"math"

	"github.com/automoto/nightfall/components"
	cfg "github.com/automoto/nightfall/config"
	"github.com/automoto/nightfall/level"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// binding lists the keys and standard gamepad buttons bound to an action.
type binding struct {
	Keys    []ebiten.Key
	Buttons []ebiten.StandardGamepadButton
}

var bindings = map[cfg.ActionID]binding{
	cfg.ActionMoveLeft: {
		Keys:    []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA},
		Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft},
	},
	cfg.ActionMoveRight: {
		Keys:    []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD},
		Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight},
	},
	cfg.ActionJump: {
		Keys:    []ebiten.Key{ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW},
		Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
	},
	cfg.ActionSlide: {
		Keys:    []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS},
		Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightLeft},
	},
	cfg.ActionContinue: {
		Keys:    []ebiten.Key{ebiten.KeyEnter, ebiten.KeySpace, ebiten.KeyW, ebiten.KeyArrowUp},
		Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom, ebiten.StandardGamepadButtonCenterRight},
	},
	cfg.ActionPause: {
		Keys:    []ebiten.Key{ebiten.KeyEscape, ebiten.KeyP},
		Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterLeft},
	},
}

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls devices into the scene's InputData.
// Must run before any system that reads input.
func UpdateInput(e *ecs.ECS) {
	PollInput(getOrCreateInput(e))
}

// PollInput swaps the frame buffers and reads keyboard and gamepads.
func PollInput(input *components.InputData) {
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	input.Analog = 0

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, b := range bindings {
		for _, key := range b.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range b.Buttons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
				}
			}
		}
	}

	// The strongest stick deflection wins; the level applies the deadzone.
	for _, gpID := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		h := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if math.Abs(h) > math.Abs(input.Analog) {
			input.Analog = h
		}
	}
}

// LevelInput converts the polled actions into one tick of level input.
func LevelInput(input *components.InputData) level.Input {
	in := level.Input{
		Jump:   input.Pressed(cfg.ActionJump),
		Slide:  input.Pressed(cfg.ActionSlide),
		Analog: input.Analog,
	}
	if input.Pressed(cfg.ActionMoveLeft) {
		in.Move--
	}
	if input.Pressed(cfg.ActionMoveRight) {
		in.Move++
	}
	return in
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(e *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}
