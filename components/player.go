package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Alive   bool
	Sliding bool

	// Horizontal intent for the current tick, in [-1.5, 1.5]
	Movement float64
	Facing   int

	// Momentum: consecutive ticks of held direction input
	HeldDirection int
	HeldTicks     int
	Speedy        bool

	// Jump state
	Jumping    bool
	WasJumping bool
	JumpTime   float64

	// Seconds of power-up left; powered up while positive
	PowerUpTime float64
}

func (p *PlayerData) PoweredUp() bool {
	return p.PowerUpTime > 0
}

var Player = donburi.NewComponentType[PlayerData]()
