package scenes

import (
	"fmt"
	"image/color"
	"sync"

	cfg "github.com/automoto/nightfall/config"
	"github.com/automoto/nightfall/systems"
	"github.com/automoto/nightfall/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// MenuScene displays the main menu
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	deps         Deps
	menu         *ui.MenuUI
	once         sync.Once

	shouldStart bool
	shouldQuit  bool
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger, deps Deps) *MenuScene {
	return &MenuScene{sceneChanger: sc, deps: deps}
}

func (ms *MenuScene) Update() error {
	ms.once.Do(ms.configure)
	ms.ecs.Update()
	if ms.menu != nil {
		ms.menu.Update()
	}

	switch {
	case ms.shouldQuit:
		return ebiten.Termination
	case ms.shouldStart:
		ms.sceneChanger.ChangeScene(NewWorldScene(ms.sceneChanger, ms.deps))
	}
	return nil
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.menu == nil {
		return
	}
	ms.menu.UI.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())
	ms.ecs.AddSystem(systems.UpdateInput)
	ms.ecs.AddSystem(systems.NewUpdateAudio(ms.deps.Audio))

	menu, err := ui.NewMenuUI(
		volumeLabel(ms.deps),
		func() {
			systems.PlaySFX(ms.ecs, cfg.SoundMenuSelect)
			ms.shouldStart = true
		},
		ms.cycleVolume,
		func() { ms.shouldQuit = true },
	)
	if err != nil {
		ms.deps.Logger.Error("menu unavailable, starting run", "error", err)
		ms.shouldStart = true
		return
	}
	ms.menu = menu
}

func (ms *MenuScene) cycleVolume() string {
	settings := ms.deps.Settings
	systems.CycleVolume(settings)
	ms.deps.Audio.SetVolume(systems.EffectiveVolume(systems.ToSaved(settings)))
	systems.PlaySFX(ms.ecs, cfg.SoundMenuSelect)

	if err := systems.SaveSettings(ms.deps.SettingsStore, systems.ToSaved(settings)); err != nil {
		ms.deps.Logger.Warn("could not save settings", "error", err)
	}
	return volumeLabel(ms.deps)
}

func volumeLabel(deps Deps) string {
	v := systems.EffectiveVolume(systems.ToSaved(deps.Settings))
	return fmt.Sprintf("Volume: %d%%", int(v*100))
}
