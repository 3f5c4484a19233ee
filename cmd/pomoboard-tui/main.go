package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync/atomic"

	pomoapp "pomoboard/internal/app"
	"pomoboard/internal/config"
	"pomoboard/internal/core/timer"
	"pomoboard/internal/journal"
	"pomoboard/internal/logger"
	"pomoboard/internal/notify"
	"pomoboard/internal/platform"
	"pomoboard/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "pomoboard: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	// The terminal belongs to the UI, so logs go to a file.
	var logOut io.Writer = io.Discard
	if cfg.ConfigDir != "" {
		if err := os.MkdirAll(cfg.ConfigDir, 0o755); err == nil {
			file, err := os.OpenFile(filepath.Join(cfg.ConfigDir, "pomoboard-tui.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if err == nil {
				defer file.Close()
				logOut = file
			}
		}
	}
	log := logger.Init(cfg.LogLevel, cfg.LogJSON, logOut)

	guard, err := platform.AcquireSingleInstance(config.AppName, nil)
	if err != nil {
		if errors.Is(err, platform.ErrAlreadyRunning) {
			fmt.Println("PomoBoard is already running")
			return nil
		}
		return err
	}
	defer func() {
		_ = guard.Release()
	}()

	var running atomic.Pointer[tea.Program]
	session, err := pomoapp.New(context.Background(), pomoapp.Options{
		Config: cfg,
		Logger: log,
		Sender: notify.SenderFunc(func(title, body string) {
			if program := running.Load(); program != nil {
				program.Send(tui.NoticeMsg(title + ": " + body))
			}
		}),
	})
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	defer func() {
		if err := session.Close(); err != nil {
			log.Warn().Err(err).Msg("close session")
		}
	}()

	program := tea.NewProgram(tui.New(session.Timer, session.Settings, session.Journal.Totals), tea.WithAltScreen())
	running.Store(program)
	session.OnTimerEvent(func(event timer.Event) {
		program.Send(tui.TimerEventMsg(event))
	})
	session.OnTotals(func(totals journal.Totals) {
		program.Send(tui.TotalsMsg(totals))
	})

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run terminal ui: %w", err)
	}
	return nil
}
