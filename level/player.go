package level

import (
	"math"

	"github.com/automoto/nightfall/components"
	cfg "github.com/automoto/nightfall/config"
	"github.com/automoto/nightfall/shared/gamemath"
	"github.com/automoto/nightfall/shared/leveldata"
)

// PlayerBounds is the player's collision box at its current position.
func (l *Level) PlayerBounds() gamemath.Rect {
	return playerBoundsAt(components.Physics.Get(l.player).Position)
}

// playerBoundsAt places the player's collision box for a bottom-center
// position. The box is a bottom-aligned, horizontally centered fraction of
// the animation frame.
func playerBoundsAt(pos gamemath.Vec) gamemath.Rect {
	fw, fh := cfg.Player.FrameWidth, cfg.Player.FrameHeight
	return frameBox(pos, fw, fh, cfg.Player.BoxWidthPct, cfg.Player.BoxHeightPct)
}

// frameBox is shared by every character: frame origin at bottom-center,
// box width and height truncated to whole pixels.
func frameBox(pos gamemath.Vec, fw, fh int, widthPct, heightPct float64) gamemath.Rect {
	w := int(float64(fw) * widthPct)
	h := int(float64(fh) * heightPct)
	left := (fw - w) / 2
	top := fh - h
	x := int(math.Round(pos.X-float64(fw)/2.0)) + left
	y := int(math.Round(pos.Y-float64(fh))) + top
	return gamemath.Rect{X: x, Y: y, W: w, H: h}
}

// SlideBounds is the shorter box shown while sliding. It is never used for
// collision.
func (l *Level) SlideBounds() gamemath.Rect {
	pos := components.Physics.Get(l.player).Position
	return frameBox(pos, cfg.Player.SlideFrameWidth, cfg.Player.SlideFrameHeight,
		cfg.Player.BoxWidthPct, cfg.Player.BoxHeightPct)
}

// updatePlayer runs one normal-play tick for the player: input, physics,
// power-up countdown and facing.
func (l *Level) updatePlayer(elapsed float64, in Input) {
	p := components.Player.Get(l.player)
	resolveInput(p, in)
	l.applyPhysics(elapsed)

	if p.PowerUpTime > 0 {
		p.PowerUpTime = math.Max(0, p.PowerUpTime-elapsed)
	}

	vx := components.Physics.Get(l.player).Velocity.X
	if vx > 0 {
		p.Facing = cfg.DirectionRight
	} else if vx < 0 {
		p.Facing = cfg.DirectionLeft
	}
}

// resolveInput turns one tick of input into movement intent. Holding one
// direction long enough makes the player speedy; an analog tilt past the
// deadzone replaces the discrete direction and ends the streak.
func resolveInput(p *components.PlayerData, in Input) {
	dir := in.direction()
	switch {
	case dir == 0:
		p.HeldDirection, p.HeldTicks = 0, 0
	case dir == p.HeldDirection:
		p.HeldTicks++
	default:
		p.HeldDirection, p.HeldTicks = dir, 1
	}
	p.Speedy = p.HeldTicks >= cfg.Player.SpeedyTicks

	movement := float64(dir)
	if p.Speedy {
		movement *= cfg.Player.SpeedyMultiplier
	}
	if math.Abs(in.Analog) > cfg.Player.AnalogDeadzone {
		movement = gamemath.Clamp(in.Analog*cfg.Player.AnalogScale, -1, 1)
		p.HeldDirection, p.HeldTicks, p.Speedy = 0, 0, false
	}

	p.Movement = movement
	p.Jumping = in.Jump
	p.Sliding = in.Slide
}

// applyPhysics integrates the player for one tick and resolves tile
// collisions. A velocity component is zeroed when collision left that
// position component where it started.
func (l *Level) applyPhysics(elapsed float64) {
	p := components.Player.Get(l.player)
	ph := components.Physics.Get(l.player)
	previous := ph.Position

	ph.Velocity.X += p.Movement * cfg.Physics.MoveAcceleration * elapsed
	ph.Velocity.Y = gamemath.ClampSpeed(ph.Velocity.Y+cfg.Physics.Gravity*elapsed, cfg.Physics.MaxFallSpeed)
	ph.Velocity.Y = l.doJump(p, ph, elapsed)
	ph.Velocity.X = gamemath.ApplyDrag(ph.Velocity.X, ph.OnGround,
		cfg.Physics.GroundDragFactor, cfg.Physics.AirDragFactor, cfg.Physics.MaxMoveSpeed)

	ph.Position = gamemath.RoundVec(ph.Position.Add(ph.Velocity.Scale(elapsed)))
	l.handleCollisions(ph)

	if ph.Position.X == previous.X {
		ph.Velocity.X = 0
	}
	if ph.Position.Y == previous.Y {
		ph.Velocity.Y = 0
	}
	components.Object.Get(l.player).Sync(l.PlayerBounds())
}

// doJump returns the vertical velocity after jump control. A jump starts on
// a fresh press while on the ground and keeps its launch velocity, eased
// toward zero, until released or MaxJumpTime has passed.
func (l *Level) doJump(p *components.PlayerData, ph *components.PhysicsData, elapsed float64) float64 {
	vy := ph.Velocity.Y
	if p.Jumping {
		if (!p.WasJumping && ph.OnGround) || p.JumpTime > 0 {
			if p.JumpTime == 0 {
				l.sounds.Play(cfg.SoundJump)
			}
			p.JumpTime += elapsed
		}

		if p.JumpTime > 0 && p.JumpTime <= cfg.Physics.MaxJumpTime {
			vy = gamemath.JumpVelocity(cfg.Physics.JumpLaunchVelocity, p.JumpTime,
				cfg.Physics.MaxJumpTime, cfg.Physics.JumpControlPower)
		} else {
			p.JumpTime = 0
		}
	} else {
		p.JumpTime = 0
	}
	p.WasJumping = p.Jumping
	return vy
}

// handleCollisions pushes the player out of every solid tile its box
// overlaps, one tile at a time. The shallower axis wins; platforms only
// collide vertically and only when the player was above them last tick.
func (l *Level) handleCollisions(ph *components.PhysicsData) {
	bounds := playerBoundsAt(ph.Position)
	leftTile := floorDiv(bounds.Left(), leveldata.TileWidth)
	rightTile := ceilDiv(bounds.Right(), leveldata.TileWidth) - 1
	topTile := floorDiv(bounds.Top(), leveldata.TileHeight)
	bottomTile := ceilDiv(bounds.Bottom(), leveldata.TileHeight) - 1

	ph.OnGround = false

	for y := topTile; y <= bottomTile; y++ {
		for x := leftTile; x <= rightTile; x++ {
			collision := l.grid.CollisionAt(x, y)
			if collision == leveldata.Passable {
				continue
			}
			tileBounds := leveldata.BoundsOf(x, y)
			depth := gamemath.IntersectionDepth(bounds, tileBounds)
			if depth.IsZero() {
				continue
			}

			if math.Abs(depth.Y) < math.Abs(depth.X) || collision == leveldata.Platform {
				if ph.PreviousBottom <= float64(tileBounds.Top()) {
					ph.OnGround = true
				}
				if collision == leveldata.Impassable || ph.OnGround {
					ph.Position.Y += depth.Y
					bounds = playerBoundsAt(ph.Position)
				}
			} else if collision == leveldata.Impassable {
				ph.Position.X += depth.X
				bounds = playerBoundsAt(ph.Position)
			}
		}
	}

	ph.PreviousBottom = float64(bounds.Bottom())
}

func floorDiv(v, d int) int {
	return int(math.Floor(float64(v) / float64(d)))
}

func ceilDiv(v, d int) int {
	return int(math.Ceil(float64(v) / float64(d)))
}
