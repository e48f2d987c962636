package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// CityEntry is one selectable city in the menu.
type CityEntry struct {
	ID   string
	Name string
}

// CityMenuUI holds the ebitenui interface for the city selection menu
type CityMenuUI struct {
	UI     *ebitenui.UI
	Cities []CityEntry

	// Callbacks
	OnSelectCity func(id string)
	OnCycleSpec  func() string
	OnAdjustVol  func(delta float64) float64

	// Widget references for updates
	cityButtons []*widget.Button
	specLabel   *widget.Label
	volumeLabel *widget.Label

	// Keyboard highlight index over cityButtons
	highlight int

	// Fonts (stored as interface for ebitenui compatibility)
	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

// NewCityMenuUI creates the city selection menu with ebitenui
func NewCityMenuUI(cities []CityEntry, specName string, volume float64) *CityMenuUI {
	mui := &CityMenuUI{Cities: cities}

	mui.loadFonts()
	mui.buildUI(specName, volume)

	return mui
}

func (mui *CityMenuUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	mui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   24,
	}
	mui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   16,
	}
	mui.smallFace = &text.GoTextFace{
		Source: fontSource,
		Size:   12,
	}
}

func (mui *CityMenuUI) buildUI(specName string, volume float64) {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{18, 20, 28, 255})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(12)),
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
		widget.LabelOpts.Text("CITY DRIVE", &mui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	contentContainer.AddChild(titleLabel)

	subtitleLabel := widget.NewLabel(
		widget.LabelOpts.Text("Select a city", &mui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{160, 170, 190, 255},
		}),
	)
	contentContainer.AddChild(subtitleLabel)

	contentContainer.AddChild(mui.buildCityList())
	contentContainer.AddChild(mui.buildSettingsRow(specName, volume))

	hintLabel := widget.NewLabel(
		widget.LabelOpts.Text("Up/Down select, Enter drive, Esc quit", &mui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{110, 115, 130, 255},
		}),
	)
	contentContainer.AddChild(hintLabel)

	rootContainer.AddChild(contentContainer)

	mui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (mui *CityMenuUI) buildCityList() *widget.Container {
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(4),
		)),
	)

	for _, city := range mui.Cities {
		id := city.ID // Capture for closure
		button := widget.NewButton(
			widget.ButtonOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(220, 30),
			),
			widget.ButtonOpts.Image(mui.buttonImage()),
			widget.ButtonOpts.Text(city.Name, &mui.normalFace, &widget.ButtonTextColor{
				Idle:    color.RGBA{255, 255, 255, 255},
				Hover:   color.RGBA{200, 230, 255, 255},
				Pressed: color.RGBA{160, 190, 220, 255},
			}),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				if mui.OnSelectCity != nil {
					mui.OnSelectCity(id)
				}
			}),
		)
		mui.cityButtons = append(mui.cityButtons, button)
		container.AddChild(button)
	}

	return container
}

func (mui *CityMenuUI) buildSettingsRow(specName string, volume float64) *widget.Container {
	padding := widget.Insets{Top: 4, Bottom: 4, Left: 6, Right: 6}
	container := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{28, 30, 40, 255})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(8),
		)),
	)

	mui.specLabel = widget.NewLabel(
		widget.LabelOpts.Text("Car: "+specName, &mui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 100, 255},
		}),
	)
	container.AddChild(mui.specLabel)

	specButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(56, 20)),
		widget.ButtonOpts.Image(mui.buttonImage()),
		widget.ButtonOpts.Text("Change", &mui.smallFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{200, 200, 200, 255},
			Hover:   color.RGBA{255, 255, 255, 255},
			Pressed: color.RGBA{150, 150, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if mui.OnCycleSpec != nil {
				mui.specLabel.Label = "Car: " + mui.OnCycleSpec()
			}
		}),
	)
	container.AddChild(specButton)

	mui.volumeLabel = widget.NewLabel(
		widget.LabelOpts.Text(volumeText(volume), &mui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 100, 255},
		}),
	)
	container.AddChild(mui.volumeLabel)

	for _, step := range []struct {
		label string
		delta float64
	}{{"-", -0.1}, {"+", 0.1}} {
		d := step.delta
		button := widget.NewButton(
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(24, 20)),
			widget.ButtonOpts.Image(mui.buttonImage()),
			widget.ButtonOpts.Text(step.label, &mui.smallFace, &widget.ButtonTextColor{
				Idle:    color.RGBA{200, 200, 200, 255},
				Hover:   color.RGBA{255, 255, 255, 255},
				Pressed: color.RGBA{150, 150, 150, 255},
			}),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				if mui.OnAdjustVol != nil {
					mui.volumeLabel.Label = volumeText(mui.OnAdjustVol(d))
				}
			}),
		)
		container.AddChild(button)
	}

	return container
}

func (mui *CityMenuUI) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{50, 60, 85, 255})
	hover := image.NewNineSliceColor(color.RGBA{70, 85, 115, 255})
	pressed := image.NewNineSliceColor(color.RGBA{35, 45, 65, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

// MoveHighlight shifts the keyboard selection and wraps at the list ends.
func (mui *CityMenuUI) MoveHighlight(delta int) {
	if len(mui.Cities) == 0 {
		return
	}
	mui.highlight = (mui.highlight + delta + len(mui.Cities)) % len(mui.Cities)
	mui.refreshHighlight()
}

// SelectHighlighted activates the keyboard-highlighted city.
func (mui *CityMenuUI) SelectHighlighted() {
	if len(mui.Cities) == 0 || mui.OnSelectCity == nil {
		return
	}
	mui.OnSelectCity(mui.Cities[mui.highlight].ID)
}

func (mui *CityMenuUI) refreshHighlight() {
	for i, button := range mui.cityButtons {
		if textWidget := button.Text(); textWidget != nil {
			name := mui.Cities[i].Name
			if i == mui.highlight {
				name = "> " + name
			}
			textWidget.Label = name
		}
	}
}

// Update calls the UI's Update method
func (mui *CityMenuUI) Update() {
	mui.UI.Update()
}

func volumeText(v float64) string {
	return fmt.Sprintf("Vol: %d%%", int(v*100+0.5))
}
