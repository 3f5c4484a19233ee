package tasks

import (
	"pomoboard/internal/core/model"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// New builds the daily task list screen.
func New(items []model.Task) fyne.CanvasObject {
	list := widget.NewList(
		func() int { return len(items) },
		func() fyne.CanvasObject {
			title := widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
			date := widget.NewLabelWithStyle("", fyne.TextAlignTrailing, fyne.TextStyle{Bold: true})
			weekday := widget.NewLabel("")
			return container.NewHBox(title, layout.NewSpacer(), container.NewVBox(date, weekday))
		},
		func(id widget.ListItemID, object fyne.CanvasObject) {
			row := object.(*fyne.Container)
			labels := row.Objects[2].(*fyne.Container)
			row.Objects[0].(*widget.Label).SetText(items[id].Title)
			labels.Objects[0].(*widget.Label).SetText(items[id].Date)
			labels.Objects[1].(*widget.Label).SetText(items[id].Weekday)
		},
	)

	header := widget.NewLabelWithStyle("Daily Tasks", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	return container.NewBorder(header, nil, nil, nil, list)
}
