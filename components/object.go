package components

import (
	"github.com/automoto/nightfall/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData links an entity to its broadphase object.
type ObjectData struct {
	*resolv.Object
}

// Sync moves the broadphase object onto r and refreshes its cells.
func (o ObjectData) Sync(r gamemath.Rect) {
	o.X = float64(r.X)
	o.Y = float64(r.Y)
	o.W = float64(r.W)
	o.H = float64(r.H)
	o.Update()
}

var Object = donburi.NewComponentType[ObjectData]()
