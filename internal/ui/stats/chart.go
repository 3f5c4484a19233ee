package stats

import (
	"fmt"
	"image/color"

	"pomoboard/internal/core/catalog"
	"pomoboard/internal/core/model"
	"pomoboard/internal/journal"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

const chartHeight = float32(250)

// Screen shows the weekly hours chart and the current session totals.
type Screen struct {
	totals  *widget.Label
	content fyne.CanvasObject
}

// New builds the statistics screen for days.
func New(days []model.DayStat) *Screen {
	highest := catalog.MaxHours(days)
	columns := make([]fyne.CanvasObject, 0, len(days))
	for _, day := range days {
		bar := canvas.NewRectangle(barColor(day.Color))
		bar.SetMinSize(fyne.NewSize(24, BarHeight(day.Hours, highest, chartHeight)))
		value := canvas.NewText(fmt.Sprintf("%d", day.Hours), color.Black)
		value.Alignment = fyne.TextAlignCenter
		label := widget.NewLabelWithStyle(day.Weekday, fyne.TextAlignCenter, fyne.TextStyle{})
		columns = append(columns, container.NewVBox(layout.NewSpacer(), value, bar, label))
	}

	screen := &Screen{totals: widget.NewLabel(TotalsText(journal.Totals{}))}
	screen.content = container.NewVBox(
		widget.NewLabelWithStyle("Weekly Statistics", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewGridWithColumns(len(columns), columns...),
		screen.totals,
	)
	return screen
}

// Content returns the screen's root object.
func (screen *Screen) Content() fyne.CanvasObject {
	return screen.content
}

// SetTotals shows the journal summary. Call it on the Fyne main goroutine.
func (screen *Screen) SetTotals(totals journal.Totals) {
	screen.totals.SetText(TotalsText(totals))
}

// TotalsText renders the session summary line.
func TotalsText(totals journal.Totals) string {
	return fmt.Sprintf("This session: %d completed, %d abandoned, %d min focused",
		totals.Completed, totals.Incomplete, totals.FocusMinutes)
}

// BarHeight scales hours against the tallest bar. Zero-hour days keep a
// sliver so the weekday still reads as a column.
func BarHeight(hours, highest int, height float32) float32 {
	const sliver = float32(2)
	if highest <= 0 || hours <= 0 {
		return sliver
	}
	scaled := float32(hours) / float32(highest) * height
	if scaled < sliver {
		return sliver
	}
	return scaled
}

func barColor(name model.Color) color.Color {
	switch name {
	case model.ColorGreen:
		return color.NRGBA{R: 52, G: 199, B: 89, A: 255}
	case model.ColorOrange:
		return color.NRGBA{R: 255, G: 149, B: 0, A: 255}
	case model.ColorRed:
		return color.NRGBA{R: 255, G: 59, B: 48, A: 255}
	default:
		return color.NRGBA{R: 142, G: 142, B: 147, A: 255}
	}
}
