package ui

import (
	"bytes"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// PauseUI holds the ebitenui pause menu.
type PauseUI struct {
	UI *ebitenui.UI

	OnResume  func()
	OnRestart func()
	OnMute    func() bool // toggles, returns new muted state

	muteButton *widget.Button

	titleFace  text.Face
	normalFace text.Face
}

func NewPauseUI(onResume, onRestart func(), onMute func() bool) *PauseUI {
	pui := &PauseUI{
		OnResume:  onResume,
		OnRestart: onRestart,
		OnMute:    onMute,
	}
	pui.loadFonts()
	pui.buildUI()
	return pui
}

func (pui *PauseUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}
	pui.titleFace = &text.GoTextFace{Source: fontSource, Size: 20}
	pui.normalFace = &text.GoTextFace{Source: fontSource, Size: 13}
}

func (pui *PauseUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 20, 30, 230})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(16)),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text("PAUSED", &pui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	contentContainer.AddChild(titleLabel)

	contentContainer.AddChild(pui.menuButton("RESUME", func() {
		if pui.OnResume != nil {
			pui.OnResume()
		}
	}))
	contentContainer.AddChild(pui.menuButton("RESTART", func() {
		if pui.OnRestart != nil {
			pui.OnRestart()
		}
	}))

	pui.muteButton = pui.menuButton("SOUND: ON", func() {
		if pui.OnMute == nil {
			return
		}
		pui.SetMuted(pui.OnMute())
	})
	contentContainer.AddChild(pui.muteButton)

	rootContainer.AddChild(contentContainer)
	pui.UI = &ebitenui.UI{Container: rootContainer}
}

// SetMuted syncs the sound button label with the audio state.
func (pui *PauseUI) SetMuted(muted bool) {
	textWidget := pui.muteButton.Text()
	if textWidget == nil {
		return
	}
	if muted {
		textWidget.Label = "SOUND: OFF"
	} else {
		textWidget.Label = "SOUND: ON"
	}
}

func (pui *PauseUI) menuButton(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(140, 26),
		),
		widget.ButtonOpts.Image(pui.buttonImage()),
		widget.ButtonOpts.Text(label, &pui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func (pui *PauseUI) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{60, 60, 80, 255})
	hover := image.NewNineSliceColor(color.RGBA{80, 80, 100, 255})
	pressed := image.NewNineSliceColor(color.RGBA{40, 40, 60, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}
