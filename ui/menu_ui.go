package ui

import (
	"bytes"
	"fmt"

	cfg "github.com/automoto/nightfall/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// MenuUI is the main menu: start a run, change the volume, or quit.
type MenuUI struct {
	UI *ebitenui.UI

	OnStart  func()
	OnVolume func() string
	OnQuit   func()

	volumeButton *widget.Button

	titleFace  text.Face
	buttonFace text.Face
}

// NewMenuUI builds the menu. volumeLabel is the initial volume button text.
func NewMenuUI(volumeLabel string, onStart func(), onVolume func() string, onQuit func()) (*MenuUI, error) {
	m := &MenuUI{
		OnStart:  onStart,
		OnVolume: onVolume,
		OnQuit:   onQuit,
	}
	if err := m.loadFonts(); err != nil {
		return nil, err
	}
	m.buildUI(volumeLabel)
	return m, nil
}

func (m *MenuUI) loadFonts() error {
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return fmt.Errorf("menu font: %w", err)
	}
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return fmt.Errorf("menu font: %w", err)
	}
	m.titleFace = &text.GoTextFace{Source: bold, Size: cfg.HUD.TitleFontSize}
	m.buttonFace = &text.GoTextFace{Source: regular, Size: cfg.HUD.FontSize}
	return nil
}

func (m *MenuUI) buildUI(volumeLabel string) {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Menu.BackgroundColor)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	content := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(12)),
			widget.RowLayoutOpts.Spacing(12),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	content.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(cfg.Menu.Title, &m.titleFace, &widget.LabelColor{
			Idle: cfg.Menu.TitleColor,
		}),
	))

	content.AddChild(m.button("Start", func() {
		if m.OnStart != nil {
			m.OnStart()
		}
	}))

	m.volumeButton = m.button(volumeLabel, func() {
		if m.OnVolume == nil {
			return
		}
		if t := m.volumeButton.Text(); t != nil {
			t.Label = m.OnVolume()
		}
	})
	content.AddChild(m.volumeButton)

	content.AddChild(m.button("Quit", func() {
		if m.OnQuit != nil {
			m.OnQuit()
		}
	}))

	rootContainer.AddChild(content)
	m.UI = &ebitenui.UI{Container: rootContainer}
}

func (m *MenuUI) button(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(cfg.Menu.ButtonWidth, cfg.Menu.ButtonHeight)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(cfg.Menu.ButtonIdle),
			Hover:   image.NewNineSliceColor(cfg.Menu.ButtonHover),
			Pressed: image.NewNineSliceColor(cfg.Menu.ButtonPressed),
		}),
		widget.ButtonOpts.Text(label, &m.buttonFace, &widget.ButtonTextColor{
			Idle: cfg.Menu.ButtonText,
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

// Update forwards input to ebitenui.
func (m *MenuUI) Update() {
	m.UI.Update()
}
