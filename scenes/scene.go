package scenes

import (
	"github.com/automoto/nightfall/components"
	"github.com/automoto/nightfall/session"
	"github.com/automoto/nightfall/systems"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi/ecs"
)

const layerDefault ecs.LayerID = 0

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// Deps are the long-lived collaborators shared by every scene.
type Deps struct {
	Levels   session.LevelSource
	Recorder session.Recorder
	Audio    *systems.Audio
	Logger   *log.Logger

	Settings      *components.SettingsData
	SettingsStore systems.Store
}
