package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/automoto/nightfall/config"
	"github.com/automoto/nightfall/fonts"
	"github.com/automoto/nightfall/scenes"
	"github.com/automoto/nightfall/systems"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in a window",
	Long: `Open the game window at the main menu.

Controls:
  Left/Right, A/D     - Run (a gamepad stick tilts for finer control)
  Space/Up/W          - Jump, hold for a higher jump
  Down/S              - Slide
  Enter               - Continue after winning or losing
  Esc/P               - Pause`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	if closer, ok := g.scene.(interface{ Close() }); ok {
		closer.Close()
	}
	g.scene = scene.(Scene)
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.Window.Width, config.Window.Height
}

func runPlay(cmd *cobra.Command, args []string) error {
	if err := fonts.LoadDefaults(config.HUD.FontSize, config.HUD.TitleFontSize); err != nil {
		return err
	}

	deps := scenes.Deps{
		Levels: levelSource(),
		Logger: logger,
	}
	if store := openHistory(); store != nil {
		defer store.Close()
		deps.Recorder = store
	}

	settings := systems.DefaultSettings()
	if store, err := systems.OpenSettingsStore(); err != nil {
		logger.Warn("settings will not persist", "error", err)
	} else {
		deps.SettingsStore = store
		if settings, err = systems.LoadSettings(store); err != nil {
			logger.Warn("could not load settings", "error", err)
		}
	}
	current := systems.FromSaved(settings)
	deps.Settings = &current

	deps.Audio = systems.SharedAudio(logger)
	deps.Audio.SetVolume(systems.EffectiveVolume(settings))

	ebiten.SetWindowSize(config.Window.Width, config.Window.Height)
	ebiten.SetWindowTitle(config.Window.Title)
	ebiten.SetTPS(config.Window.TPS)
	ebiten.SetFullscreen(settings.Fullscreen)

	g := &Game{}
	g.scene = scenes.NewMenuScene(g, deps)
	defer g.ChangeScene(nopScene{})

	logger.Info("starting", "levels", config.Session.LevelCount)
	return ebiten.RunGame(g)
}

// nopScene replaces the last scene on shutdown so it gets closed.
type nopScene struct{}

func (nopScene) Update() error            { return nil }
func (nopScene) Draw(screen *ebiten.Image) {}

