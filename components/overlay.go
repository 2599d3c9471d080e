package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// OverlayStatus is the end-of-life or end-of-level banner being shown.
type OverlayStatus int

const (
	OverlayNone OverlayStatus = iota
	OverlayWin
	OverlayLose
)

// OverlayData drives the status banner fade.
type OverlayData struct {
	Status OverlayStatus
	Fade   *gween.Tween
	Alpha  float32
}

var Overlay = donburi.NewComponentType[OverlayData]()
