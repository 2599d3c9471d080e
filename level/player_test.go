package level

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automoto/nightfall/components"
	cfg "github.com/automoto/nightfall/config"
)

func TestJumpTimeIsCapped(t *testing.T) {
	l, sounds := newLevel(t, "....", "....", "1..X", "####")
	run(l, 2, Input{})
	require.True(t, components.Physics.Get(l.player).OnGround)

	p := components.Player.Get(l.player)
	ascending := 0
	for i := 0; i < 60; i++ {
		l.Update(tick, Input{Jump: true})
		assert.LessOrEqual(t, p.JumpTime, cfg.Physics.MaxJumpTime)
		if p.JumpTime > 0 {
			ascending++
		}
	}
	assert.Greater(t, ascending, 15)
	assert.LessOrEqual(t, float64(ascending)*tick.Seconds(), cfg.Physics.MaxJumpTime)
	assert.Equal(t, 1, sounds.count(cfg.SoundJump), "holding jump never relaunches")
}

func TestRepressInAirDoesNotExtendJump(t *testing.T) {
	l, sounds := newLevel(t, "....", "....", "1..X", "####")
	run(l, 2, Input{})

	run(l, 5, Input{Jump: true})
	l.Update(tick, Input{})
	p := components.Player.Get(l.player)
	assert.Zero(t, p.JumpTime)

	for i := 0; i < 5; i++ {
		l.Update(tick, Input{Jump: true})
		assert.Zero(t, p.JumpTime, "no second launch before landing")
	}
	assert.Equal(t, 1, sounds.count(cfg.SoundJump))
}

func TestPlatformLandingFromAbove(t *testing.T) {
	l, _ := newLevel(t, "1..X", "----", "....", "####")

	run(l, 10, Input{})
	ph := components.Physics.Get(l.player)
	assert.True(t, ph.OnGround)
	assert.Equal(t, 32.0, ph.Position.Y, "standing on the platform row")
}

func TestPlatformPassThroughFromBelow(t *testing.T) {
	l, _ := newLevel(t, "....X", "-----", ".....", "1....", "#####")
	run(l, 2, Input{})
	ph := components.Physics.Get(l.player)
	require.Equal(t, 128.0, ph.Position.Y)

	highest := ph.Position.Y
	for i := 0; i < 40; i++ {
		l.Update(tick, Input{Jump: true})
		if ph.Position.Y < highest {
			highest = ph.Position.Y
		}
	}
	assert.Less(t, highest, 32.0, "rose through the platform")

	run(l, 60, Input{})
	assert.True(t, ph.OnGround)
	assert.Equal(t, 32.0, ph.Position.Y, "came down on top of it")
}

func TestPlatformPassThroughFromSide(t *testing.T) {
	l, _ := newLevel(t, "1-....X", "#######")

	run(l, 25, Input{Move: 1})
	ph := components.Physics.Get(l.player)
	assert.Greater(t, ph.Position.X, 80.0)
	assert.Equal(t, 32.0, ph.Position.Y)
}

func TestWallsStopPlayer(t *testing.T) {
	l, _ := newLevel(t, "...X", "....", "1...", "####")

	run(l, 120, Input{Move: 1})
	ph := components.Physics.Get(l.player)
	assert.Equal(t, 128, l.PlayerBounds().Right(), "map edge is a wall")
	assert.Zero(t, ph.Velocity.X)

	run(l, 120, Input{Move: -1})
	assert.Equal(t, 0, l.PlayerBounds().Left())
	assert.Equal(t, cfg.DirectionLeft, components.Player.Get(l.player).Facing)
}

func TestSpeedyAfterSustainedInput(t *testing.T) {
	l, _ := newLevel(t, "...X", "....", "1...", "####")
	p := components.Player.Get(l.player)

	run(l, cfg.Player.SpeedyTicks-1, Input{Move: 1})
	assert.False(t, p.Speedy)
	assert.Equal(t, 1.0, p.Movement)

	l.Update(tick, Input{Move: 1})
	assert.True(t, p.Speedy)
	assert.Equal(t, cfg.Player.SpeedyMultiplier, p.Movement)

	l.Update(tick, Input{Move: -1})
	assert.False(t, p.Speedy, "changing direction restarts the streak")
	assert.Equal(t, -1.0, p.Movement)

	run(l, 10, Input{Move: -1})
	l.Update(tick, Input{})
	assert.Zero(t, p.HeldTicks)
}

func TestResolveInput(t *testing.T) {
	tests := []struct {
		name string
		in   Input
		want float64
	}{
		{"idle", Input{}, 0},
		{"discrete left", Input{Move: -1}, -1},
		{"discrete right", Input{Move: 5}, 1},
		{"analog inside deadzone", Input{Move: 1, Analog: 0.05}, 1},
		{"analog on deadzone edge", Input{Analog: 0.10}, 0},
		{"analog scaled", Input{Analog: 0.5}, 0.75},
		{"analog clamped", Input{Analog: 0.9}, 1},
		{"analog clamped left", Input{Analog: -0.8}, -1},
		{"analog overrides keys", Input{Move: 1, Analog: -0.2}, -0.3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p components.PlayerData
			resolveInput(&p, tt.in)
			assert.InDelta(t, tt.want, p.Movement, 1e-9)
		})
	}
}

func TestAnalogEndsSpeedyStreak(t *testing.T) {
	p := components.PlayerData{HeldDirection: 1, HeldTicks: 500}
	resolveInput(&p, Input{Move: 1, Analog: 0.4})
	assert.False(t, p.Speedy)
	assert.Zero(t, p.HeldTicks)
	assert.InDelta(t, 0.6, p.Movement, 1e-9)
}

func TestPowerUpCountsDown(t *testing.T) {
	l, _ := newLevel(t, "1..X", "####")
	p := components.Player.Get(l.player)
	p.PowerUpTime = 0.5

	run(l, 20, Input{})
	assert.True(t, p.PoweredUp())
	run(l, 20, Input{})
	assert.False(t, p.PoweredUp())
	assert.Zero(t, p.PowerUpTime)
}

func TestPlayerStates(t *testing.T) {
	l, _ := newLevel(t, "....", "....", "1..X", "####")
	run(l, 2, Input{})
	assert.Equal(t, cfg.Idle, l.View().Player.State)

	run(l, 3, Input{Move: 1})
	assert.Equal(t, cfg.Running, l.View().Player.State)

	l.Update(tick, Input{Move: 1, Slide: true})
	v := l.View()
	assert.Equal(t, cfg.Slide, v.Player.State)
	assert.True(t, v.Player.Sliding)
	assert.Equal(t, v.Player.Bounds, l.PlayerBounds(), "sliding keeps the collision box")
	assert.Less(t, v.Player.SlideBounds.H, v.Player.Bounds.H)

	l.Update(tick, Input{Jump: true})
	assert.Equal(t, cfg.Jump, l.View().Player.State)
}
