package term

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cfg "github.com/automoto/nightfall/config"
	"github.com/automoto/nightfall/level"
	"github.com/automoto/nightfall/session"
	"github.com/automoto/nightfall/shared/leveldata"
)

type rows [][]string

func (r rows) Load(index int) (*leveldata.Map, error) {
	return leveldata.ParseText(r[index])
}

func TestKeysHoldWindow(t *testing.T) {
	k := NewKeys(100 * time.Millisecond)
	t0 := time.Unix(0, 0)

	k.Press(cfg.ActionMoveRight, t0)
	assert.True(t, k.Held(cfg.ActionMoveRight, t0.Add(50*time.Millisecond)))
	assert.Equal(t, level.Input{Move: 1}, k.Input(t0.Add(100*time.Millisecond)))
	assert.False(t, k.Held(cfg.ActionMoveRight, t0.Add(101*time.Millisecond)))

	k.Press(cfg.ActionMoveLeft, t0)
	assert.Equal(t, level.Input{}, k.Input(t0), "left and right cancel")
}

func TestKeysTakeOncePerPress(t *testing.T) {
	k := NewKeys(100 * time.Millisecond)
	t0 := time.Unix(0, 0)

	k.Press(cfg.ActionContinue, t0)
	k.Press(cfg.ActionContinue, t0.Add(30*time.Millisecond))
	assert.True(t, k.Take(cfg.ActionContinue))
	assert.False(t, k.Take(cfg.ActionContinue), "auto-repeat is not a new press")

	k.Press(cfg.ActionContinue, t0.Add(time.Second))
	assert.True(t, k.Take(cfg.ActionContinue))
}

func TestActionFor(t *testing.T) {
	tests := []struct {
		ev   *tcell.EventKey
		want cfg.ActionID
		ok   bool
	}{
		{tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), cfg.ActionMoveLeft, true},
		{tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone), cfg.ActionMoveRight, true},
		{tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), cfg.ActionJump, true},
		{tcell.NewEventKey(tcell.KeyRune, 'c', tcell.ModNone), cfg.ActionContinue, true},
		{tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), cfg.ActionNone, false},
	}
	for _, tt := range tests {
		got, ok := ActionFor(tt.ev)
		assert.Equal(t, tt.ok, ok, tt.ev.Name())
		assert.Equal(t, tt.want, got, tt.ev.Name())
	}
}

func TestScrollX(t *testing.T) {
	assert.Equal(t, 0, ScrollX(5, 20, 80), "narrow maps never scroll")
	assert.Equal(t, 0, ScrollX(5, 100, 40))
	assert.Equal(t, 30, ScrollX(50, 100, 40))
	assert.Equal(t, 60, ScrollX(99, 100, 40))
}

func TestBanner(t *testing.T) {
	assert.Empty(t, banner(true, time.Minute, false))
	assert.Empty(t, banner(true, time.Minute, true), "bonus still draining")
	assert.Contains(t, banner(true, 0, true), cfg.HUD.WinText)
	assert.Contains(t, banner(false, time.Minute, false), cfg.HUD.LoseText)
	assert.Contains(t, banner(true, 0, false), cfg.HUD.LoseText)
}

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("")
	require.NoError(t, screen.Init())
	screen.SetSize(40, 10)
	t.Cleanup(screen.Fini)
	return screen
}

func cell(screen tcell.SimulationScreen, x, y int) rune {
	cells, width, _ := screen.GetContents()
	c := cells[y*width+x]
	if len(c.Runes) == 0 {
		return ' '
	}
	return c.Runes[0]
}

func TestDrawPlacesTiles(t *testing.T) {
	m, err := leveldata.ParseText([]string{
		"....X",
		"1G.A.",
		"#####",
	})
	require.NoError(t, err)
	l := level.New(m)
	defer l.Close()

	screen := newScreen(t)
	Draw(screen, l.View(), "")

	assert.Equal(t, 'X', cell(screen, 4, 1))
	assert.Equal(t, '@', cell(screen, 0, 2))
	assert.Equal(t, '*', cell(screen, 1, 2))
	assert.Equal(t, 'A', cell(screen, 3, 2))
	assert.Equal(t, '#', cell(screen, 0, 3))
	assert.Equal(t, 'T', cell(screen, 0, 0), "HUD row")
}

func TestStepContinuesAfterDeath(t *testing.T) {
	s := session.New(rows{{"1..X", "...#"}}, session.WithLevelCount(1))
	require.NoError(t, s.Start())
	defer s.Close()

	g := New(newScreen(t), s, nil)
	now := time.Unix(0, 0)
	for i := 0; i < 120; i++ {
		now = now.Add(g.tick)
		require.NoError(t, g.Step(now))
	}
	l, _ := s.Level()
	require.False(t, l.PlayerAlive())

	assert.True(t, g.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'c', tcell.ModNone), now))
	require.NoError(t, g.Step(now.Add(g.tick)))
	assert.True(t, l.PlayerAlive())
}

func TestQuitKeys(t *testing.T) {
	s := session.New(rows{{"1X", "##"}}, session.WithLevelCount(1))
	require.NoError(t, s.Start())
	defer s.Close()
	g := New(newScreen(t), s, nil)

	assert.False(t, g.handleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), time.Now()))
	assert.False(t, g.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), time.Now()))
	assert.True(t, g.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone), time.Now()))
}
