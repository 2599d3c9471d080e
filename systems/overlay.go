package systems

import (
	"github.com/automoto/nightfall/components"
	cfg "github.com/automoto/nightfall/config"
	"github.com/automoto/nightfall/fonts"
	"github.com/automoto/nightfall/session"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // font.Face based HUD
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// NewUpdateOverlay creates the system that fades the win or lose banner in
// whenever the level's status changes.
func NewUpdateOverlay(s *session.Session) ecs.System {
	return func(e *ecs.ECS) {
		UpdateOverlay(getOrCreateOverlay(e), Status(s), float32(Tick().Seconds()))
	}
}

// UpdateOverlay advances the banner fade by dt seconds.
func UpdateOverlay(o *components.OverlayData, status components.OverlayStatus, dt float32) {
	if status != o.Status {
		o.Status = status
		o.Alpha = 0
		o.Fade = nil
		if status != components.OverlayNone {
			o.Fade = gween.New(0, 1, cfg.HUD.OverlayFadeSec, ease.OutQuad)
		}
	}
	if o.Fade != nil {
		o.Alpha, _ = o.Fade.Update(dt)
	}
}

// DrawOverlay renders the status banner over the level.
func DrawOverlay(e *ecs.ECS, screen *ebiten.Image) {
	o := getOrCreateOverlay(e)
	if o.Status == components.OverlayNone || o.Alpha <= 0 {
		return
	}
	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	shade := cfg.HUD.OverlayColor
	shade.A = uint8(float32(shade.A) * o.Alpha)
	vector.DrawFilledRect(screen, 0, 0, float32(width), float32(height), shade, false)

	title, clr := cfg.HUD.LoseText, cfg.HUD.LoseColor
	if o.Status == components.OverlayWin {
		title, clr = cfg.HUD.WinText, cfg.HUD.WinColor
	}
	clr.A = uint8(255 * o.Alpha)

	titleFace := fonts.Title.Get()
	text.Draw(screen, title, titleFace, centerTextX(title, titleFace, width), int(height/2), clr)

	hintFace := fonts.Small.Get()
	hint := cfg.HUD.ContinueHint
	hintClr := cfg.White
	hintClr.A = clr.A
	text.Draw(screen, hint, hintFace, centerTextX(hint, hintFace, width), int(height/2)+40, hintClr)
}

// centerTextX calculates the X position to center text on screen
func centerTextX(s string, face font.Face, screenWidth float64) int {
	bounds := text.BoundString(face, s)
	return int((screenWidth - float64(bounds.Dx())) / 2)
}

func getOrCreateOverlay(e *ecs.ECS) *components.OverlayData {
	entry, ok := components.Overlay.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Overlay))
	}
	return components.Overlay.Get(entry)
}
