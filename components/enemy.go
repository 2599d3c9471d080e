package components

import (
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	SpriteSet string // "A" or "B"
	Facing    int
	Alive     bool
	// Seconds left before turning around; walking while zero
	WaitTime float64
}

func (e *EnemyData) Waiting() bool {
	return e.WaitTime > 0
}

var Enemy = donburi.NewComponentType[EnemyData]()
