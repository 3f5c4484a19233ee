package tray

import (
	"fmt"
	"strings"

	"pomoboard/internal/core/timer"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShow   func()
	OnToggle func()
	OnReset  func()
	OnQuit   func()
}

// Manager handles system tray state.
type Manager struct {
	app        desktop.App
	statusItem *fyne.MenuItem
	toggleItem *fyne.MenuItem
	resetItem  *fyne.MenuItem
	callbacks  Callbacks
	icons      Icons
}

// Icons are swapped as the timer starts and stops.
type Icons struct {
	Active fyne.Resource
	Paused fyne.Resource
}

// New creates a tray manager with the provided callbacks.
func New(app desktop.App, icons Icons, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		callbacks: callbacks,
		icons:     icons,
	}

	manager.statusItem = fyne.NewMenuItem("Focus --:--", nil)
	manager.statusItem.Disabled = true
	manager.toggleItem = fyne.NewMenuItem("Start", func() {
		if manager.callbacks.OnToggle != nil {
			manager.callbacks.OnToggle()
		}
	})
	manager.resetItem = fyne.NewMenuItem("Reset", func() {
		if manager.callbacks.OnReset != nil {
			manager.callbacks.OnReset()
		}
	})
	manager.resetItem.Disabled = true

	manager.refreshMenu()
	return manager
}

// SetState updates status text, toggle label and icon from state.
func (manager *Manager) SetState(state timer.State) {
	manager.statusItem.Label = StatusText(state)
	manager.toggleItem.Label = ToggleText(state)
	manager.resetItem.Disabled = state.Status == timer.StatusIdle
	if manager.app != nil {
		if state.Running && manager.icons.Active != nil {
			manager.app.SetSystemTrayIcon(manager.icons.Active)
		} else if !state.Running && manager.icons.Paused != nil {
			manager.app.SetSystemTrayIcon(manager.icons.Paused)
		}
	}
	manager.refreshMenu()
}

// StatusText renders the disabled status line of the menu.
func StatusText(state timer.State) string {
	status := fmt.Sprintf("Focus %s", state.Formatted())
	if state.Status == timer.StatusPaused {
		status += " (paused)"
	}
	return status
}

// ToggleText renders the start/pause item label.
func ToggleText(state timer.State) string {
	label := strings.ToLower(state.ActionLabel())
	return strings.ToUpper(label[:1]) + label[1:]
}

func (manager *Manager) refreshMenu() {
	if manager.app == nil {
		return
	}
	manager.app.SetSystemTrayMenu(fyne.NewMenu("PomoBoard",
		manager.statusItem,
		fyne.NewMenuItem("Open PomoBoard", func() {
			if manager.callbacks.OnShow != nil {
				manager.callbacks.OnShow()
			}
		}),
		manager.toggleItem,
		manager.resetItem,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			if manager.callbacks.OnQuit != nil {
				manager.callbacks.OnQuit()
			}
		}),
	))
}
