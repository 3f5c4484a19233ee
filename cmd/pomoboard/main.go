package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	pomoapp "pomoboard/internal/app"
	"pomoboard/internal/config"
	"pomoboard/internal/core/catalog"
	"pomoboard/internal/core/timer"
	"pomoboard/internal/journal"
	"pomoboard/internal/logger"
	"pomoboard/internal/notify"
	"pomoboard/internal/platform"
	"pomoboard/internal/ui/home"
	"pomoboard/internal/ui/preferences"
	"pomoboard/internal/ui/stats"
	"pomoboard/internal/ui/tasks"
	"pomoboard/internal/ui/tray"
	"pomoboard/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	log := logger.Init(cfg.LogLevel, cfg.LogJSON, nil)

	fyneApp := app.NewWithID("com.pomoboard.app")
	fyneApp.SetIcon(resources.MustLogo(resources.LogoActive))
	window := fyneApp.NewWindow("PomoBoard")

	guard, err := platform.AcquireSingleInstance(config.AppName, func() {
		fyne.Do(func() {
			window.Show()
			window.RequestFocus()
		})
	})
	if err != nil {
		if errors.Is(err, platform.ErrAlreadyRunning) {
			log.Info().Msg("PomoBoard is already running")
			return
		}
		log.Error().Err(err).Msg("single instance")
		return
	}
	defer func() {
		_ = guard.Release()
	}()

	session, err := pomoapp.New(context.Background(), pomoapp.Options{
		Config: cfg,
		Logger: log,
		Sender: notify.SenderFunc(func(title, body string) {
			fyneApp.SendNotification(fyne.NewNotification(title, body))
		}),
	})
	if err != nil {
		log.Error().Err(err).Msg("start session")
		return
	}
	defer func() {
		if err := session.Close(); err != nil {
			log.Warn().Err(err).Msg("close session")
		}
	}()

	uiLog := logger.Component("ui")
	showError := func(err error) {
		uiLog.Warn().Err(err).Msg("action failed")
		dialog.ShowError(err, window)
	}

	homeScreen := home.New(session.Timer, showError)
	statsScreen := stats.New(catalog.WeekStats())
	prefsPanel := preferences.New(session.Settings, showError)

	tabs := container.NewAppTabs(
		container.NewTabItemWithIcon("Home", theme.HomeIcon(), homeScreen.Content()),
		container.NewTabItemWithIcon("Tasks", theme.ListIcon(), tasks.New(catalog.Tasks())),
		container.NewTabItemWithIcon("Statistics", theme.GridIcon(), statsScreen.Content()),
		container.NewTabItemWithIcon("Settings", theme.SettingsIcon(), prefsPanel.Content()),
	)
	tabs.SetTabLocation(container.TabLocationBottom)
	window.SetContent(tabs)
	window.Resize(fyne.NewSize(420, 640))

	var trayManager *tray.Manager
	if desktopApp, ok := fyneApp.(desktop.App); ok {
		trayManager = tray.New(desktopApp, tray.Icons{
			Active: resources.MustLogo(resources.LogoActive),
			Paused: resources.MustLogo(resources.LogoPaused),
		}, tray.Callbacks{
			OnShow: func() {
				window.Show()
				window.RequestFocus()
			},
			OnToggle: func() {
				if err := session.ToggleTimer(); err != nil {
					showError(err)
				}
			},
			OnReset: session.Timer.Stop,
			OnQuit:  fyneApp.Quit,
		})
		trayManager.SetState(session.Timer.State())
		window.SetCloseIntercept(func() {
			window.Hide()
		})
	} else {
		log.Info().Msg("system tray unsupported on this platform")
		window.SetMaster()
	}

	session.OnTimerEvent(func(event timer.Event) {
		fyne.Do(func() {
			homeScreen.Update(event.State)
			if trayManager != nil {
				trayManager.SetState(event.State)
			}
		})
	})
	session.OnTotals(func(totals journal.Totals) {
		fyne.Do(func() {
			statsScreen.SetTotals(totals)
		})
	})

	window.ShowAndRun()
}
