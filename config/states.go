package config

// StateID identifies the animation a character is showing.
type StateID int

const (
	StateNone StateID = iota
	Idle
	Running
	Jump
	Slide
	Die
	Celebrate
)

// StateToName maps states to the names used by renderers and logs.
var StateToName = map[StateID]string{
	StateNone: "none",
	Idle:      "idle",
	Running:   "run",
	Jump:      "jump",
	Slide:     "slide",
	Die:       "die",
	Celebrate: "celebrate",
}

func (s StateID) String() string {
	if name, ok := StateToName[s]; ok {
		return name
	}
	return "unknown"
}
