package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/nightfall/session"
	"github.com/automoto/nightfall/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// WorldScene plays a run through the level cycle.
type WorldScene struct {
	ecs          *ecs.ECS
	session      *session.Session
	sceneChanger SceneChanger
	deps         Deps
	once         sync.Once
}

func NewWorldScene(sc SceneChanger, deps Deps) *WorldScene {
	return &WorldScene{sceneChanger: sc, deps: deps}
}

func (ws *WorldScene) Update() error {
	ws.once.Do(ws.configure)
	if ws.session == nil {
		ws.sceneChanger.ChangeScene(NewMenuScene(ws.sceneChanger, ws.deps))
		return nil
	}
	ws.ecs.Update()
	return nil
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

// Close ends the run and releases the current level.
func (ws *WorldScene) Close() {
	if ws.session != nil {
		ws.session.Close()
	}
}

func (ws *WorldScene) configure() {
	ws.ecs = ecs.NewECS(donburi.NewWorld())

	opts := []session.Option{
		session.WithSounds(systems.QueueSounds(ws.ecs)),
		session.WithLogger(ws.deps.Logger),
	}
	if ws.deps.Recorder != nil {
		opts = append(opts, session.WithRecorder(ws.deps.Recorder))
	}
	s := session.New(ws.deps.Levels, opts...)
	if err := s.Start(); err != nil {
		ws.deps.Logger.Error("could not start run", "error", err)
		return
	}
	ws.session = s

	// Input first, audio last so cues raised this frame play this frame
	ws.ecs.AddSystem(systems.UpdateInput)
	ws.ecs.AddSystem(systems.UpdatePause)
	ws.ecs.AddSystem(systems.UpdateDebug)
	ws.ecs.AddSystem(systems.NewUpdateLevel(s, ws.deps.Logger))
	ws.ecs.AddSystem(systems.NewUpdateCamera(s))
	ws.ecs.AddSystem(systems.NewUpdateOverlay(s))
	ws.ecs.AddSystem(systems.NewUpdateAudio(ws.deps.Audio))

	ws.ecs.AddRenderer(layerDefault, systems.NewDrawLevel(s, ws.deps.Logger))
	ws.ecs.AddRenderer(layerDefault, systems.NewDrawDebug(s))
	ws.ecs.AddRenderer(layerDefault, systems.NewDrawHUD(s))
	ws.ecs.AddRenderer(layerDefault, systems.DrawOverlay)
	ws.ecs.AddRenderer(layerDefault, systems.DrawPause)
}
