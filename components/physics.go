package components

import (
	"github.com/automoto/nightfall/shared/gamemath"
	"github.com/yohamta/donburi"
)

// PhysicsData is the kinematic state of a character. Position is the
// bottom-center of the character's frame.
type PhysicsData struct {
	Position gamemath.Vec
	Velocity gamemath.Vec
	OnGround bool
	// Bottom edge of the collision box after the previous tick's resolution
	PreviousBottom float64
}

var Physics = donburi.NewComponentType[PhysicsData]()
