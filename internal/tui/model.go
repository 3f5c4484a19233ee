// Package tui is the terminal front-end. It renders the same four screens as
// the desktop window and drives the shared timer and settings store.
package tui

import (
	"context"
	"fmt"
	"strings"

	"pomoboard/internal/core/catalog"
	"pomoboard/internal/core/model"
	"pomoboard/internal/core/settings"
	"pomoboard/internal/core/timer"
	"pomoboard/internal/journal"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Screen identifies a tab.
type Screen int

const (
	ScreenTimer Screen = iota
	ScreenTasks
	ScreenStats
	ScreenSettings
)

var screenTitles = []string{"Home", "Tasks", "Statistics", "Settings"}

const (
	barWidth   = 24
	titleWidth = 32
)

// Controller is the subset of the timer engine the terminal drives.
type Controller interface {
	State() timer.State
	Start() error
	Pause()
	Stop()
}

// TotalsFunc reads the session journal totals shown before the first TotalsMsg.
type TotalsFunc func(ctx context.Context) (journal.Totals, error)

// TimerEventMsg carries a timer event into the program.
type TimerEventMsg timer.Event

// NoticeMsg shows a transient line in the footer.
type NoticeMsg string

// TotalsMsg carries fresh journal totals into the program.
type TotalsMsg journal.Totals

type errMsg struct{ err error }

// Model is the bubbletea model for the whole application.
type Model struct {
	timer    Controller
	settings *settings.Store
	totals   TotalsFunc

	keys     keyMap
	bar      progress.Model
	screen   Screen
	cursor   int
	state    timer.State
	tasks    []model.Task
	days     []model.DayStat
	summary  journal.Totals
	notice   string
	err      error
	quitting bool
}

// New builds a Model. totals may be nil when no journal is attached.
func New(controller Controller, store *settings.Store, totals TotalsFunc) Model {
	return Model{
		timer:    controller,
		settings: store,
		totals:   totals,
		keys:     defaultKeyMap(),
		bar:      progress.New(progress.WithGradient("#FFB340", "#FF9500"), progress.WithWidth(40)),
		state:    controller.State(),
		tasks:    catalog.Tasks(),
		days:     catalog.WeekStats(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.loadTotals()
}

// Screen returns the visible tab.
func (m Model) Screen() Screen {
	return m.screen
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		width := msg.Width - 4
		if width > 60 {
			width = 60
		}
		if width > 10 {
			m.bar.Width = width
		}
		return m, nil
	case TimerEventMsg:
		m.state = msg.State
		return m, nil
	case TotalsMsg:
		m.summary = journal.Totals(msg)
		return m, nil
	case NoticeMsg:
		m.notice = string(msg)
		return m, nil
	case errMsg:
		m.err = msg.err
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.NextTab):
		m.screen = (m.screen + 1) % Screen(len(screenTitles))
		return m, nil
	case key.Matches(msg, m.keys.PrevTab):
		m.screen = (m.screen + Screen(len(screenTitles)) - 1) % Screen(len(screenTitles))
		return m, nil
	}

	m.err = nil
	switch m.screen {
	case ScreenTimer:
		return m.handleTimerKey(msg)
	case ScreenSettings:
		return m.handleSettingsKey(msg)
	}
	return m, nil
}

func (m Model) handleTimerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Toggle):
		if m.timer.State().Running {
			m.timer.Pause()
		} else if err := m.timer.Start(); err != nil {
			m.err = err
		}
	case key.Matches(msg, m.keys.Reset):
		m.timer.Stop()
	default:
		return m, nil
	}
	m.state = m.timer.State()
	return m, nil
}

func (m Model) handleSettingsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rows := len(settings.Fields) + len(settings.Flags)
	var err error
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < rows-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Increment):
		if field, ok := m.selectedField(); ok {
			err = m.settings.Increment(field)
		}
	case key.Matches(msg, m.keys.Decrement):
		if field, ok := m.selectedField(); ok {
			err = m.settings.Decrement(field)
		}
	case key.Matches(msg, m.keys.Toggle):
		if flag, ok := m.selectedFlag(); ok {
			err = m.settings.Toggle(flag)
		}
	}
	m.err = err
	m.state = m.timer.State()
	return m, nil
}

func (m Model) selectedField() (settings.Field, bool) {
	if m.cursor < len(settings.Fields) {
		return settings.Fields[m.cursor], true
	}
	return "", false
}

func (m Model) selectedFlag() (settings.Flag, bool) {
	index := m.cursor - len(settings.Fields)
	if index >= 0 && index < len(settings.Flags) {
		return settings.Flags[index], true
	}
	return "", false
}

func (m Model) loadTotals() tea.Cmd {
	if m.totals == nil {
		return nil
	}
	fetch := m.totals
	return func() tea.Msg {
		totals, err := fetch(context.Background())
		if err != nil {
			return errMsg{err: fmt.Errorf("read session totals: %w", err)}
		}
		return TotalsMsg(totals)
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")
	switch m.screen {
	case ScreenTimer:
		b.WriteString(m.renderTimer())
	case ScreenTasks:
		b.WriteString(m.renderTasks())
	case ScreenStats:
		b.WriteString(m.renderStats())
	case ScreenSettings:
		b.WriteString(m.renderSettings())
	}
	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(errorStyle.Render("error: "+m.err.Error()) + "\n")
	}
	if m.notice != "" {
		b.WriteString(noticeStyle.Render(m.notice) + "\n")
	}
	b.WriteString(hintStyle.Render(m.hints()))
	return b.String()
}

func (m Model) renderTabs() string {
	tabs := make([]string, 0, len(screenTitles))
	for i, title := range screenTitles {
		if Screen(i) == m.screen {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, tabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) renderTimer() string {
	lines := []string{
		titleStyle.Render("FOCUS"),
		clockStyle.Render(m.state.Formatted()),
		m.bar.ViewAs(m.state.Progress),
		"",
		"[" + m.state.ActionLabel() + "]",
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...) + "\n"
}

func (m Model) renderTasks() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Tasks") + "\n\n")
	for _, task := range m.tasks {
		title := ansi.Truncate(task.Title, titleWidth, "…")
		padding := strings.Repeat(" ", titleWidth-ansi.StringWidth(title))
		fmt.Fprintf(&b, "  %s%s %s, %s\n", title, padding, task.Weekday, task.Date)
	}
	return b.String()
}

func (m Model) renderStats() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("This week") + "\n\n")
	highest := catalog.MaxHours(m.days)
	for _, day := range m.days {
		fmt.Fprintf(&b, "  %-3s %s %dh\n", day.Weekday, barStyle(day.Color).Render(Bar(day.Hours, highest, barWidth)), day.Hours)
	}
	fmt.Fprintf(&b, "\n  Sessions: %d completed, %d stopped, %d focus minutes\n",
		m.summary.Completed, m.summary.Incomplete, m.summary.FocusMinutes)
	return b.String()
}

func (m Model) renderSettings() string {
	current := m.settings.Settings()
	var b strings.Builder
	b.WriteString(titleStyle.Render("Settings") + "\n\n")
	row := 0
	for _, field := range settings.Fields {
		line := fmt.Sprintf("%-24s %3d", settings.Label(field), settings.FieldValue(current, field))
		b.WriteString(m.renderRow(row, line))
		row++
	}
	for _, flag := range settings.Flags {
		mark := "[ ]"
		if settings.FlagValue(current, flag) {
			mark = "[x]"
		}
		b.WriteString(m.renderRow(row, fmt.Sprintf("%-24s %s", settings.FlagLabel(flag), mark)))
		row++
	}
	return b.String()
}

func (m Model) renderRow(row int, line string) string {
	if row == m.cursor {
		return cursorStyle.Render("> "+line) + "\n"
	}
	return "  " + line + "\n"
}

func (m Model) hints() string {
	switch m.screen {
	case ScreenTimer:
		return "space start/pause • r reset • tab next screen • q quit"
	case ScreenSettings:
		return "↑/↓ select • +/- adjust • space toggle • tab next screen • q quit"
	default:
		return "tab next screen • q quit"
	}
}

// Bar renders hours as a horizontal run of blocks scaled to width.
// A zero-hour day still shows a single thin mark.
func Bar(hours, highest, width int) string {
	if highest <= 0 || hours <= 0 {
		return "▏"
	}
	cells := hours * width / highest
	if cells < 1 {
		cells = 1
	}
	return strings.Repeat("█", cells)
}
