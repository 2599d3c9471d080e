// Package term plays the level cycle in a terminal, one cell per tile.
package term

import (
	"context"
	"fmt"
	"io"
	"time"

	cfg "github.com/automoto/nightfall/config"
	"github.com/automoto/nightfall/session"
	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
)

// Game drives a session from terminal input.
type Game struct {
	screen  tcell.Screen
	session *session.Session
	keys    *Keys
	logger  *log.Logger
	tick    time.Duration
}

// New wraps an initialized screen and a started session.
func New(screen tcell.Screen, s *session.Session, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{
		screen:  screen,
		session: s,
		keys:    NewKeys(cfg.Input.TermHoldWindow),
		logger:  logger.WithPrefix("term"),
		tick:    time.Second / time.Duration(cfg.Window.TPS),
	}
}

// Run plays until the context ends or the player quits.
func (g *Game) Run(ctx context.Context) error {
	ticker := time.NewTicker(g.tick)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	defer close(quit)
	go g.screen.ChannelEvents(events, quit)

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !g.handleEvent(ev, time.Now()) {
				return nil
			}
		case now := <-ticker.C:
			if err := g.Step(now); err != nil {
				return err
			}
		}
	}
}

// handleEvent records key presses. It returns false when the player quits.
func (g *Game) handleEvent(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		action, ok := ActionFor(ev)
		if !ok {
			return true
		}
		if action == cfg.ActionPause {
			return false
		}
		g.keys.Press(action, now)
	case *tcell.EventResize:
		g.screen.Sync()
	}
	return true
}

// Step resolves pending continues, advances the level one tick and draws.
func (g *Game) Step(now time.Time) error {
	l, err := g.session.Level()
	if err != nil {
		return fmt.Errorf("step: %w", err)
	}

	continued := g.keys.Take(cfg.ActionContinue)
	jumped := g.keys.Take(cfg.ActionJump)
	if banner(l.PlayerAlive(), l.TimeRemaining(), l.ReachedExit()) != "" && (continued || jumped) {
		if err := g.session.Continue(); err != nil {
			g.logger.Error("continue failed", "level", g.session.Index(), "error", err)
		}
		if l, err = g.session.Level(); err != nil {
			return fmt.Errorf("step: %w", err)
		}
	}

	if err := g.session.Update(g.tick, g.keys.Input(now)); err != nil {
		return fmt.Errorf("step: %w", err)
	}
	Draw(g.screen, l.View(), banner(l.PlayerAlive(), l.TimeRemaining(), l.ReachedExit()))
	return nil
}

// banner is the status text shown over the map, empty while playing.
func banner(alive bool, remaining time.Duration, reachedExit bool) string {
	switch {
	case remaining == 0 && reachedExit:
		return " " + cfg.HUD.WinText + " - press c "
	case !alive, remaining == 0:
		return " " + cfg.HUD.LoseText + " - press c "
	}
	return ""
}
