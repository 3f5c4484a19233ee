package home

import (
	"image/color"

	"pomoboard/internal/core/timer"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

var (
	// Background is the orange used behind every screen.
	Background = color.NRGBA{R: 255, G: 149, B: 0, A: 255}
	accent     = color.NRGBA{R: 107, G: 61, B: 0, A: 255}
	white      = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

// Controller is the part of the timer engine the home screen drives.
type Controller interface {
	State() timer.State
	Start() error
	Pause()
	Stop()
}

// Screen shows the countdown with its start/pause and reset controls.
type Screen struct {
	timer    Controller
	onError  func(error)
	clock    *canvas.Text
	progress *widget.ProgressBar
	action   *widget.Button
	reset    *widget.Button
	content  fyne.CanvasObject
}

// New creates the home screen.
func New(controller Controller, onError func(error)) *Screen {
	title := canvas.NewText("PomoBoard", white)
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.TextSize = 32
	title.Alignment = fyne.TextAlignCenter

	clock := canvas.NewText("--:--", white)
	clock.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	clock.TextSize = 64
	clock.Alignment = fyne.TextAlignCenter

	progress := widget.NewProgressBar()
	progress.Min = 0
	progress.Max = 1
	progress.TextFormatter = func() string { return "" }

	screen := &Screen{
		timer:    controller,
		onError:  onError,
		clock:    clock,
		progress: progress,
	}
	screen.action = widget.NewButton("START", screen.toggle)
	screen.action.Importance = widget.HighImportance
	screen.reset = widget.NewButton("RESET", screen.stop)

	background := canvas.NewRectangle(Background)
	ring := canvas.NewCircle(color.Transparent)
	ring.StrokeColor = accent
	ring.StrokeWidth = 8
	dial := container.NewStack(ring, container.NewCenter(clock))
	dialBox := container.NewGridWrap(fyne.NewSize(256, 256), dial)

	body := container.NewVBox(
		title,
		layout.NewSpacer(),
		container.NewCenter(dialBox),
		progress,
		container.NewHBox(layout.NewSpacer(), screen.action, screen.reset, layout.NewSpacer()),
		layout.NewSpacer(),
	)
	screen.content = container.NewStack(background, container.NewPadded(body))
	screen.Update(controller.State())
	return screen
}

// Content returns the screen's root object.
func (screen *Screen) Content() fyne.CanvasObject {
	return screen.content
}

// Update redraws the screen for state. Call it on the Fyne main goroutine.
func (screen *Screen) Update(state timer.State) {
	screen.clock.Text = state.Formatted()
	screen.clock.Refresh()
	screen.progress.SetValue(state.Progress)
	screen.action.SetText(state.ActionLabel())
	if state.Status == timer.StatusIdle {
		screen.reset.Disable()
	} else {
		screen.reset.Enable()
	}
}

func (screen *Screen) toggle() {
	if screen.timer.State().Running {
		screen.timer.Pause()
	} else if err := screen.timer.Start(); err != nil && screen.onError != nil {
		screen.onError(err)
	}
	screen.Update(screen.timer.State())
}

func (screen *Screen) stop() {
	screen.timer.Stop()
	screen.Update(screen.timer.State())
}
