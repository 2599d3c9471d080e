package systems

import (
	"time"

	"github.com/automoto/nightfall/components"
	cfg "github.com/automoto/nightfall/config"
	"github.com/automoto/nightfall/session"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi/ecs"
)

// Tick is the simulated time of one frame.
func Tick() time.Duration {
	return time.Second / time.Duration(cfg.Window.TPS)
}

// NewUpdateLevel creates the system that feeds input to the session. A
// continue press is resolved before the tick, the way the level's own
// input handling orders it.
func NewUpdateLevel(s *session.Session, logger *log.Logger) ecs.System {
	return func(e *ecs.ECS) {
		if IsPaused(e) {
			return
		}
		input := getOrCreateInput(e)

		if input.JustPressed(cfg.ActionContinue) && Status(s) != components.OverlayNone {
			if err := s.Continue(); err != nil {
				logger.Error("continue failed", "level", s.Index(), "error", err)
			}
		}

		if err := s.Update(Tick(), LevelInput(input)); err != nil {
			logger.Error("update failed", "error", err)
		}
	}
}

// Status is the banner the current level calls for: win once the bonus has
// drained after reaching the exit, lose when the player died or the time
// ran out short of the exit.
func Status(s *session.Session) components.OverlayStatus {
	l, err := s.Level()
	if err != nil {
		return components.OverlayNone
	}
	switch {
	case l.TimeRemaining() == 0 && l.ReachedExit():
		return components.OverlayWin
	case !l.PlayerAlive(), l.TimeRemaining() == 0:
		return components.OverlayLose
	}
	return components.OverlayNone
}
