package systems

import (
	"math"

	"github.com/automoto/nightfall/components"
	"github.com/automoto/nightfall/config"
	"github.com/automoto/nightfall/level"
	"github.com/automoto/nightfall/session"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateCamera creates the system that scrolls the view after the
// player on maps wider than the window. A new level snaps the camera.
func NewUpdateCamera(s *session.Session) ecs.System {
	var last *level.Level
	return func(e *ecs.ECS) {
		l, err := s.Level()
		if err != nil {
			return
		}
		camera := getOrCreateCamera(e)
		m := l.Map()
		player := l.View().Player

		target := CameraTarget(player.Position.X, float64(m.PixelWidth()), float64(config.Window.Width))
		if last != l {
			camera.X = target
			last = l
			return
		}
		camera.X += (target - camera.X) * config.Camera.FollowSmoothing
	}
}

// CameraTarget centers playerX in a window of screenWidth, keeping the
// window inside the level.
func CameraTarget(playerX, levelWidth, screenWidth float64) float64 {
	maxX := math.Max(0, levelWidth-screenWidth)
	return math.Max(0, math.Min(maxX, playerX-screenWidth/2))
}

func getOrCreateCamera(e *ecs.ECS) *components.CameraData {
	entry, ok := components.Camera.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Camera))
	}
	return components.Camera.Get(entry)
}
