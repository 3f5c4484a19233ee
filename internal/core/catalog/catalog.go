// Package catalog provides the fixed sample records shown on the task list
// and weekly statistics screens.
package catalog

import (
	"slices"

	"pomoboard/internal/core/model"

	"github.com/google/uuid"
)

var tasks = []model.Task{
	{ID: uuid.NewString(), Title: "Take the math practice exam", Date: "20.07", Weekday: "Sun"},
	{ID: uuid.NewString(), Title: "Answer pending emails", Date: "25.07", Weekday: "Fri"},
	{ID: uuid.NewString(), Title: "Practice guitar exercises", Date: "30.07", Weekday: "Wed"},
}

var weekStats = []model.DayStat{
	{ID: uuid.NewString(), Weekday: "Sun", Hours: 2, Color: model.ColorGreen},
	{ID: uuid.NewString(), Weekday: "Mon", Hours: 4, Color: model.ColorGreen},
	{ID: uuid.NewString(), Weekday: "Tue", Hours: 0, Color: model.ColorOrange},
	{ID: uuid.NewString(), Weekday: "Wed", Hours: 6, Color: model.ColorRed},
	{ID: uuid.NewString(), Weekday: "Thu", Hours: 5, Color: model.ColorRed},
	{ID: uuid.NewString(), Weekday: "Fri", Hours: 1, Color: model.ColorGreen},
	{ID: uuid.NewString(), Weekday: "Sat", Hours: 0, Color: model.ColorGray},
}

// Tasks returns the daily task list in display order.
func Tasks() []model.Task {
	return slices.Clone(tasks)
}

// WeekStats returns the weekly hours chart, Sunday first.
func WeekStats() []model.DayStat {
	return slices.Clone(weekStats)
}

// MaxHours returns the tallest bar of stats, used to scale the chart.
func MaxHours(stats []model.DayStat) int {
	highest := 0
	for _, stat := range stats {
		if stat.Hours > highest {
			highest = stat.Hours
		}
	}
	return highest
}
