package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// LevelStateData is the singleton score and timer state of a level.
type LevelStateData struct {
	Index         int
	Score         int
	TimeRemaining time.Duration
	ReachedExit   bool
	// Total simulated seconds, drives pickup bounce
	Elapsed float64
}

var LevelState = donburi.NewComponentType[LevelStateData]()
