package config

type AnimationDef struct {
	Frames int
	// Seconds per frame
	FrameTime float64
	Loop      bool
}

// CharacterAnimations maps a character key to its animation definitions.
var CharacterAnimations = map[string]map[StateID]AnimationDef{
	"player": {
		Idle:      {Frames: 1, FrameTime: 0.1, Loop: true},
		Running:   {Frames: 10, FrameTime: 0.1, Loop: true},
		Jump:      {Frames: 11, FrameTime: 0.1, Loop: false},
		Slide:     {Frames: 4, FrameTime: 0.1, Loop: false},
		Die:       {Frames: 12, FrameTime: 0.1, Loop: false},
		Celebrate: {Frames: 11, FrameTime: 0.1, Loop: false},
	},
	"enemy": {
		Idle:    {Frames: 1, FrameTime: 0.15, Loop: true},
		Running: {Frames: 10, FrameTime: 0.1, Loop: true},
		Die:     {Frames: 4, FrameTime: 0.15, Loop: true},
	},
}
