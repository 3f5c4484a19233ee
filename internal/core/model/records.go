package model

import "time"

// Color is a named chart color.
type Color string

const (
	ColorGreen  Color = "green"
	ColorOrange Color = "orange"
	ColorRed    Color = "red"
	ColorGray   Color = "gray"
)

// Task is a display-only entry of the daily task list.
type Task struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Date    string `json:"date"`
	Weekday string `json:"weekday"`
}

// DayStat is one bar of the weekly hours chart.
type DayStat struct {
	ID      string `json:"id"`
	Weekday string `json:"weekday"`
	Hours   int    `json:"hours"`
	Color   Color  `json:"color"`
}

// Session is a single focus countdown recorded by the journal.
type Session struct {
	ID          string    `json:"id"`
	StartedAt   time.Time `json:"started_at"`
	PlannedSecs int       `json:"planned_secs"`
	ElapsedSecs int       `json:"elapsed_secs"`
	Completed   bool      `json:"completed"`
}
