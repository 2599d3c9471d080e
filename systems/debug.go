package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/nightfall/components"
	"github.com/automoto/nightfall/fonts"
	"github.com/automoto/nightfall/session"
	"github.com/automoto/nightfall/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // font.Face based HUD
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

var (
	debugPlayerColor = color.RGBA{0, 0, 255, 255}
	debugSlideColor  = color.RGBA{0, 255, 255, 255}
	debugEnemyColor  = color.RGBA{255, 0, 0, 255}
	debugExitColor   = color.RGBA{0, 255, 0, 255}
	debugTextColor   = color.RGBA{255, 255, 255, 255}
)

// UpdateDebug toggles the hitbox overlay with F3.
func UpdateDebug(e *ecs.ECS) {
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		d := GetOrCreateDebug(e)
		d.Enabled = !d.Enabled
	}
}

// NewDrawDebug outlines the hitboxes the level collides with and prints the
// player's motion.
func NewDrawDebug(s *session.Session) func(*ecs.ECS, *ebiten.Image) {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		if !GetOrCreateDebug(e).Enabled {
			return
		}
		l, err := s.Level()
		if err != nil {
			return
		}
		view := l.View()
		camX := getOrCreateCamera(e).X

		outline(screen, view.ExitBounds, camX, debugExitColor)
		for _, en := range view.Enemies {
			if en.Alive {
				outline(screen, en.Bounds, camX, debugEnemyColor)
			}
		}
		if view.Player.Sliding {
			outline(screen, view.Player.SlideBounds, camX, debugSlideColor)
		}
		outline(screen, view.Player.Bounds, camX, debugPlayerColor)

		p := view.Player
		info := fmt.Sprintf("pos %.0f,%.0f  vel %.1f,%.1f  %s  ground=%t",
			p.Position.X, p.Position.Y, p.Velocity.X, p.Velocity.Y, p.State, p.OnGround)
		text.Draw(screen, info, fonts.Small.Get(), 8, screen.Bounds().Dy()-8, debugTextColor)
	}
}

// GetOrCreateDebug returns the debug toggle, creating it off.
func GetOrCreateDebug(e *ecs.ECS) *components.DebugData {
	if entry, ok := components.Debug.First(e.World); ok {
		return components.Debug.Get(entry)
	}
	return components.Debug.Get(e.World.Entry(e.World.Create(components.Debug)))
}

func outline(screen *ebiten.Image, r gamemath.Rect, camX float64, c color.Color) {
	x := float32(float64(r.X) - camX)
	y, w, h := float32(r.Y), float32(r.W), float32(r.H)
	vector.StrokeRect(screen, x, y, w, h, 1, c, false)
}
