package systems

import (
	"image/color"

	"github.com/automoto/nightfall/assets/animations"
	cfg "github.com/automoto/nightfall/config"
	"github.com/automoto/nightfall/level"
	"github.com/automoto/nightfall/session"
	"github.com/automoto/nightfall/shared/gamemath"
	"github.com/automoto/nightfall/shared/leveldata"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// NewDrawLevel creates the renderer for tiles, pickups and characters.
// Everything is drawn as flat shapes offset by the camera.
func NewDrawLevel(s *session.Session, logger *log.Logger) func(*ecs.ECS, *ebiten.Image) {
	playerAnim, err := animations.NewPlayer("player")
	if err != nil {
		logger.Warn("player animation unavailable", "error", err)
	}

	return func(e *ecs.ECS, screen *ebiten.Image) {
		l, err := s.Level()
		if err != nil {
			return
		}
		view := l.View()
		camX := getOrCreateCamera(e).X

		screen.Fill(cfg.Render.BackgroundColors[view.Index%len(cfg.Render.BackgroundColors)])
		drawTiles(screen, view.Map, camX)
		drawRect(screen, view.ExitBounds, camX, cfg.Render.ExitColor)

		for _, p := range view.Pickups {
			clr := cfg.Render.GemColor
			if p.PowerUp {
				clr = cfg.Render.PowerUpColor
			}
			vector.DrawFilledCircle(screen, float32(p.Position.X-camX), float32(p.Position.Y), float32(p.Radius), clr, true)
		}

		for _, en := range view.Enemies {
			drawEnemy(screen, en, camX)
		}
		drawPlayer(screen, view.Player, playerAnim, camX)
	}
}

func drawTiles(screen *ebiten.Image, m *leveldata.Map, camX float64) {
	minX := int(camX) / leveldata.TileWidth
	maxX := minX + screen.Bounds().Dx()/leveldata.TileWidth + 1
	for y := 0; y < m.Height; y++ {
		for x := minX; x <= maxX && x < m.Width; x++ {
			tile, ok := m.TileAt(x, y)
			if !ok || !tile.HasVisual {
				continue
			}
			bounds := leveldata.BoundsOf(x, y)
			switch tile.Collision {
			case leveldata.Impassable:
				drawRect(screen, bounds, camX, cfg.Render.BlockColors[tile.Variant%len(cfg.Render.BlockColors)])
			case leveldata.Platform:
				bounds.H = leveldata.TileHeight / 4
				drawRect(screen, bounds, camX, cfg.Render.PlatformColor)
			}
		}
	}
}

func drawPlayer(screen *ebiten.Image, p level.PlayerView, anim *animations.Player, camX float64) {
	clr := cfg.Render.PlayerColor
	switch {
	case !p.Alive:
		clr = cfg.Render.DeadColor
	case p.PoweredUp:
		clr = cfg.Render.PoweredColor
	}

	bounds := p.Bounds
	if p.Sliding {
		bounds = p.SlideBounds
	}

	if anim != nil && anim.Play(p.State) == nil {
		anim.Update(Tick().Seconds())
		if frame, err := anim.Frame(); err == nil {
			bounds = animateBounds(bounds, p.State, frame, cfg.CharacterAnimations["player"][p.State].Frames)
		}
	}
	drawRect(screen, bounds, camX, clr)
	drawFacing(screen, bounds, p.Facing, camX)
}

func drawEnemy(screen *ebiten.Image, en level.EnemyView, camX float64) {
	clr := cfg.Enemy.TintColors[en.SpriteSet]
	if !en.Alive {
		clr = cfg.Render.DeadColor
	}
	bounds := en.Bounds
	if def, ok := cfg.CharacterAnimations["enemy"][en.State]; ok {
		bounds = animateBounds(bounds, en.State, animations.FrameAt(def, en.StateTime), def.Frames)
	}
	drawRect(screen, bounds, camX, clr)
	drawFacing(screen, bounds, en.Facing, camX)
}

// animateBounds squashes a character box to stand in for sprite frames:
// a stride bob while running and a collapse while dying.
func animateBounds(r gamemath.Rect, state cfg.StateID, frame, frames int) gamemath.Rect {
	switch state {
	case cfg.Running:
		if frame%2 == 1 {
			r.Y += 2
			r.H -= 2
		}
	case cfg.Die:
		shrink := r.H * frame / (2 * max(1, frames))
		r.Y += shrink
		r.H -= shrink
	case cfg.Celebrate:
		if frame%4 < 2 {
			r.Y -= 3
		}
	}
	return r
}

func drawFacing(screen *ebiten.Image, r gamemath.Rect, facing int, camX float64) {
	eyeX := float64(r.X) + float64(r.W)*0.7
	if facing < 0 {
		eyeX = float64(r.X) + float64(r.W)*0.3
	}
	vector.DrawFilledCircle(screen, float32(eyeX-camX), float32(r.Y+r.H/5), 2.5, cfg.White, true)
}

func drawRect(screen *ebiten.Image, r gamemath.Rect, camX float64, clr color.Color) {
	vector.DrawFilledRect(screen, float32(float64(r.X)-camX), float32(r.Y), float32(r.W), float32(r.H), clr, false)
}

