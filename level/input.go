package level

// Input is one tick of player intent, already decoded from whatever device
// produced it.
type Input struct {
	// Discrete horizontal direction: negative is left, positive is right.
	Move  int
	Jump  bool
	Slide bool

	// Analog tilt in [-1, 1], positive to the right. Values inside the
	// deadzone are ignored.
	Analog float64
}

func (in Input) direction() int {
	switch {
	case in.Move < 0:
		return -1
	case in.Move > 0:
		return 1
	}
	return 0
}
