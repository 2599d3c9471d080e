package components

import "github.com/yohamta/donburi"

// CameraData is the horizontal scroll of the level view. The level always
// fills the screen vertically.
type CameraData struct {
	X float64
}

var Camera = donburi.NewComponentType[CameraData]()
