package level

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automoto/nightfall/components"
	cfg "github.com/automoto/nightfall/config"
	"github.com/automoto/nightfall/shared/gamemath"
	"github.com/automoto/nightfall/shared/leveldata"
	"github.com/automoto/nightfall/tags"
	"github.com/yohamta/donburi"
)

const tick = time.Second / 60

type soundLog []cfg.SoundID

func (s *soundLog) Play(id cfg.SoundID) { *s = append(*s, id) }

func (s soundLog) count(id cfg.SoundID) int {
	n := 0
	for _, got := range s {
		if got == id {
			n++
		}
	}
	return n
}

func newLevel(t *testing.T, rows ...string) (*Level, *soundLog) {
	t.Helper()
	m, err := leveldata.ParseText(rows)
	require.NoError(t, err)
	sounds := &soundLog{}
	l := New(m, WithSounds(sounds))
	t.Cleanup(l.Close)
	return l, sounds
}

func run(l *Level, n int, in Input) {
	for i := 0; i < n; i++ {
		l.Update(tick, in)
	}
}

func TestScenarioARestingPlayerStaysGrounded(t *testing.T) {
	l, _ := newLevel(t, "1.X", "###")

	l.Update(tick, Input{})

	ph := components.Physics.Get(l.player)
	assert.True(t, ph.OnGround)
	assert.Equal(t, 0.0, ph.Velocity.Y)
	assert.Equal(t, gamemath.Vec{X: 16, Y: 32}, ph.Position)
	assert.True(t, l.PlayerAlive())
	assert.False(t, l.ReachedExit())
}

func TestPlayerBoundsFromFrame(t *testing.T) {
	l, _ := newLevel(t, "1.X", "###")
	assert.Equal(t, gamemath.Rect{X: 3, Y: -19, W: 25, H: 51}, l.PlayerBounds())
	assert.Equal(t, 32, l.PlayerBounds().Bottom(), "box bottom sits on the origin")
}

func TestScenarioBExitDrainsTimerIntoScore(t *testing.T) {
	l, sounds := newLevel(t, "1X", "##")
	components.Physics.Get(l.player).Position = gamemath.Vec{X: 48, Y: 32}
	components.LevelState.Get(l.state).TimeRemaining = 65 * time.Second

	l.Update(tick, Input{})
	require.True(t, l.ReachedExit())
	assert.Equal(t, 0, l.Score())
	assert.Equal(t, 1, sounds.count(cfg.SoundExitReached))

	drains := 0
	for l.TimeRemaining() > 0 && drains < 1000 {
		before := l.TimeRemaining()
		l.Update(tick, Input{})
		assert.Less(t, l.TimeRemaining(), before)
		drains++
	}
	assert.Equal(t, 65, drains, "one bonus second per tick at 75x")
	assert.Equal(t, 325, l.Score())

	run(l, 10, Input{Move: 1, Jump: true})
	assert.Equal(t, time.Duration(0), l.TimeRemaining())
	assert.Equal(t, 325, l.Score())
	assert.Equal(t, cfg.Celebrate, l.View().Player.State)
}

func TestExitRequiresGround(t *testing.T) {
	l, _ := newLevel(t, "1X", "..", "##")
	components.Physics.Get(l.player).Position = gamemath.Vec{X: 48, Y: 32}

	l.Update(tick, Input{})
	assert.False(t, components.Physics.Get(l.player).OnGround)
	assert.False(t, l.ReachedExit(), "falling past the door does not count")
}

func TestScenarioCEnemyWaitsAtWallThenTurns(t *testing.T) {
	l, _ := newLevel(t,
		"1...X.",
		"..A#..",
		"######",
	)
	enemy, ok := firstEnemy(l)
	require.True(t, ok)
	en := components.Enemy.Get(enemy)
	en.Facing = cfg.DirectionRight

	for i := 0; i < 20 && !en.Waiting(); i++ {
		l.Update(tick, Input{})
	}
	require.True(t, en.Waiting())
	assert.Equal(t, cfg.Enemy.MaxWaitTime, en.WaitTime)
	assert.Equal(t, cfg.DirectionRight, en.Facing)
	stoppedAt := components.Physics.Get(enemy).Position.X

	for i := 0; i < 200 && en.Waiting(); i++ {
		l.Update(tick, Input{})
		if en.Waiting() {
			assert.Equal(t, stoppedAt, components.Physics.Get(enemy).Position.X)
		}
	}
	assert.False(t, en.Waiting())
	assert.Equal(t, cfg.DirectionLeft, en.Facing)

	run(l, 5, Input{})
	assert.Less(t, components.Physics.Get(enemy).Position.X, stoppedAt)
}

func TestEnemyWaitsAtLedge(t *testing.T) {
	l, _ := newLevel(t,
		"....1X",
		".A....",
		".#####",
	)
	enemy, ok := firstEnemy(l)
	require.True(t, ok)

	run(l, 10, Input{})
	en := components.Enemy.Get(enemy)
	assert.True(t, en.Waiting())
	assert.Equal(t, cfg.DirectionLeft, en.Facing)
	assert.Greater(t, components.Physics.Get(enemy).Position.X, 40.0)
}

func TestEnemyKillsPlayer(t *testing.T) {
	l, sounds := newLevel(t, "1A..X", "#####")

	run(l, 30, Input{})
	assert.False(t, l.PlayerAlive())
	assert.Equal(t, 1, sounds.count(cfg.SoundPlayerKilled))
	assert.Equal(t, cfg.Die, l.View().Player.State)

	frozen := l.TimeRemaining()
	enemy, _ := firstEnemy(l)
	x := components.Physics.Get(enemy).Position.X
	run(l, 30, Input{Move: 1})
	assert.Equal(t, frozen, l.TimeRemaining(), "timer stops while dead")
	assert.Equal(t, x, components.Physics.Get(enemy).Position.X, "enemies stop while dead")
}

func TestPoweredUpPlayerKillsEnemy(t *testing.T) {
	l, sounds := newLevel(t, "1A..X", "#####")
	components.Player.Get(l.player).PowerUpTime = 6

	run(l, 30, Input{})
	assert.True(t, l.PlayerAlive())
	assert.Equal(t, 1, sounds.count(cfg.SoundEnemyKilled))

	enemy, _ := firstEnemy(l)
	en := components.Enemy.Get(enemy)
	assert.False(t, en.Alive)
	x := components.Physics.Get(enemy).Position.X
	run(l, 30, Input{Move: -1})
	assert.Equal(t, x, components.Physics.Get(enemy).Position.X, "dead enemies are inert")
	assert.True(t, l.PlayerAlive(), "dead enemies cannot kill")
	assert.Equal(t, cfg.Die, l.View().Enemies[0].State)
}

func TestFallingOutKillsPlayer(t *testing.T) {
	l, sounds := newLevel(t, "1..X", "...#")

	run(l, 120, Input{})
	assert.False(t, l.PlayerAlive())
	assert.Equal(t, 1, sounds.count(cfg.SoundPlayerFell))
	assert.Zero(t, sounds.count(cfg.SoundPlayerKilled))
}

func TestStartNewLife(t *testing.T) {
	l, _ := newLevel(t, "1..X", "...#")
	run(l, 120, Input{})
	require.False(t, l.PlayerAlive())
	remaining := l.TimeRemaining()

	l.StartNewLife()
	assert.True(t, l.PlayerAlive())
	assert.Equal(t, gamemath.Vec{X: 16, Y: 32}, components.Physics.Get(l.player).Position)
	assert.Equal(t, remaining, l.TimeRemaining(), "timer carries over")
}

func TestTimerExpiryFreezesLevel(t *testing.T) {
	l, _ := newLevel(t, "1A...X", "######")
	components.LevelState.Get(l.state).TimeRemaining = 40 * time.Millisecond

	run(l, 3, Input{})
	assert.Equal(t, time.Duration(0), l.TimeRemaining())

	enemy, _ := firstEnemy(l)
	x := components.Physics.Get(enemy).Position.X
	run(l, 10, Input{Move: 1})
	assert.Equal(t, time.Duration(0), l.TimeRemaining())
	assert.Equal(t, x, components.Physics.Get(enemy).Position.X)
	assert.True(t, l.PlayerAlive())
}

func TestTimerAndScoreMonotonic(t *testing.T) {
	l, _ := newLevel(t,
		"..........X.",
		"....G..P....",
		"1.G---..A.G.",
		"############",
	)
	rng := rand.New(rand.NewSource(7))

	prevTime, prevScore := l.TimeRemaining(), l.Score()
	for i := 0; i < 3000; i++ {
		in := Input{
			Move:  rng.Intn(3) - 1,
			Jump:  rng.Intn(3) == 0,
			Slide: rng.Intn(5) == 0,
		}
		if rng.Intn(4) == 0 {
			in.Analog = rng.Float64()*2 - 1
		}
		l.Update(tick, in)
		if !l.PlayerAlive() && rng.Intn(10) == 0 {
			l.StartNewLife()
		}

		require.LessOrEqual(t, l.TimeRemaining(), prevTime)
		require.GreaterOrEqual(t, l.TimeRemaining(), time.Duration(0))
		require.GreaterOrEqual(t, l.Score(), prevScore)
		prevTime, prevScore = l.TimeRemaining(), l.Score()
	}
}

func TestViewSnapshot(t *testing.T) {
	l, _ := newLevel(t, "1GAPBX", "######")
	WithIndex(3)(l)

	v := l.View()
	assert.Equal(t, 3, v.Index)
	assert.Equal(t, cfg.Level.TimeLimit, v.TimeRemaining)
	assert.Equal(t, leveldata.DoorBounds(5, 0), v.ExitBounds)
	require.Len(t, v.Enemies, 2)
	require.Len(t, v.Pickups, 2)
	assert.ElementsMatch(t, []string{"A", "B"}, []string{v.Enemies[0].SpriteSet, v.Enemies[1].SpriteSet})
	for _, e := range v.Enemies {
		assert.Equal(t, cfg.DirectionLeft, e.Facing)
		assert.True(t, e.Alive)
	}
	values := []int{v.Pickups[0].PointValue, v.Pickups[1].PointValue}
	assert.ElementsMatch(t, []int{cfg.Pickup.GemValue, cfg.Pickup.PowerUpValue}, values)
	assert.True(t, v.Player.Alive)
	assert.Equal(t, cfg.Idle, v.Player.State)
}

func firstEnemy(l *Level) (*donburi.Entry, bool) {
	return tags.Enemy.First(l.world)
}
