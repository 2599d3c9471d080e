package systems

import (
	"fmt"
	"image/color"
	"time"

	cfg "github.com/automoto/nightfall/config"
	"github.com/automoto/nightfall/fonts"
	"github.com/automoto/nightfall/session"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // font.Face based HUD
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// NewDrawHUD creates the renderer for the time and score readouts.
func NewDrawHUD(s *session.Session) func(*ecs.ECS, *ebiten.Image) {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		l, err := s.Level()
		if err != nil {
			return
		}
		face := fonts.HUD.Get()
		lineHeight := face.Metrics().Height.Ceil()
		x := int(cfg.HUD.Margin)
		y := int(cfg.HUD.Margin) + lineHeight

		remaining := l.TimeRemaining()
		drawShadowed(screen, TimeText(remaining), face, x, y, TimeColor(remaining, l.ReachedExit()))
		y += lineHeight
		drawShadowed(screen, fmt.Sprintf("SCORE: %d", l.Score()), face, x, y, cfg.HUD.ScoreColor)

		level := fmt.Sprintf("LEVEL %d", l.Index()+1)
		width := screen.Bounds().Dx()
		lx := width - int(cfg.HUD.Margin) - text.BoundString(face, level).Dx()
		drawShadowed(screen, level, face, lx, int(cfg.HUD.Margin)+lineHeight, cfg.White)
	}
}

// TimeText formats the remaining time as minutes and seconds, truncated.
func TimeText(remaining time.Duration) string {
	if remaining < 0 {
		remaining = 0
	}
	minutes := int(remaining / time.Minute)
	seconds := int(remaining%time.Minute) / int(time.Second)
	return fmt.Sprintf("TIME: %02d:%02d", minutes, seconds)
}

// TimeColor blinks the timer to the warning color on odd seconds once
// little time is left, unless the exit was already reached.
func TimeColor(remaining time.Duration, reachedExit bool) color.RGBA {
	if remaining > cfg.Level.WarningTime || reachedExit || int(remaining.Seconds())%2 == 0 {
		return cfg.HUD.TimeColor
	}
	return cfg.HUD.WarningColor
}

func drawShadowed(screen *ebiten.Image, s string, face font.Face, x, y int, clr color.Color) {
	text.Draw(screen, s, face, x+1, y+1, cfg.HUD.ShadowColor)
	text.Draw(screen, s, face, x, y, clr)
}
