package preferences

import (
	"fmt"

	"pomoboard/internal/core/model"
	"pomoboard/internal/core/settings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Panel is the settings screen. It edits the shared settings store directly
// and redraws itself whenever the store changes.
type Panel struct {
	store   *settings.Store
	content fyne.CanvasObject
	values  map[settings.Field]*widget.Label
	minus   map[settings.Field]*widget.Button
	plus    map[settings.Field]*widget.Button
	checks  map[settings.Flag]*widget.Check
	onError func(error)
}

// New creates the settings panel bound to store.
func New(store *settings.Store, onError func(error)) *Panel {
	panel := &Panel{
		store:   store,
		values:  make(map[settings.Field]*widget.Label),
		minus:   make(map[settings.Field]*widget.Button),
		plus:    make(map[settings.Field]*widget.Button),
		checks:  make(map[settings.Flag]*widget.Check),
		onError: onError,
	}

	focus := container.NewVBox(
		widget.NewLabelWithStyle("Adjust focus", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabel("Tune your focus and break routine"),
	)
	for _, field := range settings.Fields {
		focus.Add(panel.stepperRow(field))
	}

	toggles := container.NewVBox()
	for _, flag := range settings.Flags {
		toggles.Add(panel.flagRow(flag))
	}

	panel.content = container.NewVScroll(container.NewVBox(
		widget.NewLabelWithStyle("Settings", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewCard("", "", focus),
		widget.NewCard("", "", toggles),
	))

	panel.render(store.Settings())
	store.Subscribe(func(change settings.Change) {
		fyne.Do(func() {
			panel.render(change.Current)
		})
	})
	return panel
}

// Content returns the panel's root object.
func (panel *Panel) Content() fyne.CanvasObject {
	return panel.content
}

func (panel *Panel) stepperRow(field settings.Field) fyne.CanvasObject {
	value := widget.NewLabel("")
	minus := widget.NewButton("-", func() {
		panel.report(panel.store.Decrement(field))
	})
	plus := widget.NewButton("+", func() {
		panel.report(panel.store.Increment(field))
	})

	panel.values[field] = value
	panel.minus[field] = minus
	panel.plus[field] = plus
	return container.NewHBox(widget.NewLabel(settings.Label(field)), layout.NewSpacer(), minus, value, plus)
}

func (panel *Panel) flagRow(flag settings.Flag) fyne.CanvasObject {
	check := widget.NewCheck(settings.FlagLabel(flag), func(checked bool) {
		if checked == settings.FlagValue(panel.store.Settings(), flag) {
			return
		}
		panel.report(panel.store.Toggle(flag))
	})
	panel.checks[flag] = check
	return container.NewVBox(check, widget.NewLabel(flagHint(flag)))
}

func (panel *Panel) render(current model.Settings) {
	for _, field := range settings.Fields {
		value := settings.FieldValue(current, field)
		panel.values[field].SetText(fmt.Sprintf("%d", value))
		if value <= settings.Floor(field) {
			panel.minus[field].Disable()
		} else {
			panel.minus[field].Enable()
		}
		if value >= settings.Ceiling(field) {
			panel.plus[field].Disable()
		} else {
			panel.plus[field].Enable()
		}
	}
	for _, flag := range settings.Flags {
		panel.checks[flag].SetChecked(settings.FlagValue(current, flag))
	}
}

// report surfaces err and redraws from the store so a tap is reflected
// before the store's own notification reaches the UI queue.
func (panel *Panel) report(err error) {
	if err != nil && panel.onError != nil {
		panel.onError(err)
	}
	panel.render(panel.store.Settings())
}

func flagHint(flag settings.Flag) string {
	switch flag {
	case settings.FlagDoNotDisturb:
		return "Block distractions while focusing"
	case settings.FlagMuteNotifications:
		return "Turn off completion alerts"
	default:
		return ""
	}
}
