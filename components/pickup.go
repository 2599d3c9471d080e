package components

import (
	"github.com/automoto/nightfall/shared/gamemath"
	"github.com/yohamta/donburi"
)

type PickupData struct {
	BasePosition gamemath.Vec
	Bounce       float64
	PointValue   int
	PowerUp      bool
	Collected    bool
}

// Position is the bobbing center of the pickup.
func (p *PickupData) Position() gamemath.Vec {
	return gamemath.Vec{X: p.BasePosition.X, Y: p.BasePosition.Y + p.Bounce}
}

var Pickup = donburi.NewComponentType[PickupData]()
