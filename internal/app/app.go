// Package app wires the timer, settings, journal and notifications into the
// single session object both front-ends drive.
package app

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"pomoboard/internal/config"
	"pomoboard/internal/core/settings"
	"pomoboard/internal/core/timer"
	"pomoboard/internal/journal"
	"pomoboard/internal/notify"
	"pomoboard/internal/storage"

	"github.com/rs/zerolog"
)

// Options configures New.
type Options struct {
	Config    *config.Config
	Logger    *zerolog.Logger
	Sender    notify.Sender
	NewTicker timer.TickerFactory
}

// App is one application session.
type App struct {
	Settings *settings.Store
	Timer    *timer.Engine
	Journal  *journal.Journal
	Notifier *notify.Notifier

	log       zerolog.Logger
	configDir string
	recorder  *journal.Recorder
	records   <-chan timer.Event
	events    <-chan timer.Event
	workers   sync.WaitGroup
	cleanup   []func()

	totals    chan journal.Totals

	mu        sync.Mutex
	listeners []func(timer.Event)
	watchers  []func(journal.Totals)
	closeOnce sync.Once
}

// New builds the session from persisted preferences and starts pumping timer events.
func New(ctx context.Context, options Options) (*App, error) {
	if options.Config == nil {
		return nil, fmt.Errorf("new app: missing config")
	}
	log := zerolog.Nop()
	if options.Logger != nil {
		log = *options.Logger
	}

	configDir := options.Config.ConfigDir
	loaded, err := storage.LoadSettings(configDir)
	if err != nil {
		log.Warn().Err(err).Str("path", storage.SettingsPath(configDir)).Msg("using default settings")
	}

	store := settings.New(loaded, options.Logger)
	engine, err := timer.New(store.Settings().FocusSeconds(), timer.Config{
		TickInterval: options.Config.TickInterval,
		NewTicker:    options.NewTicker,
		Logger:       options.Logger,
	})
	if err != nil {
		return nil, fmt.Errorf("new app: %w", err)
	}

	unbind, err := settings.BindTimer(store, engine)
	if err != nil {
		engine.Close()
		return nil, fmt.Errorf("new app: %w", err)
	}

	sessions, err := journal.Open(ctx, options.Logger)
	if err != nil {
		unbind()
		engine.Close()
		return nil, fmt.Errorf("new app: %w", err)
	}

	application := &App{
		Settings:  store,
		Timer:     engine,
		Journal:   sessions,
		Notifier:  notify.New(options.Sender, store, options.Logger),
		log:       log,
		configDir: configDir,
		recorder:  journal.NewRecorder(sessions),
		records:   engine.SubscribeAll(),
		events:    engine.Subscribe(64),
		totals:    make(chan journal.Totals, 1),
	}
	unsave := store.Subscribe(func(settings.Change) {
		application.saveSettings()
	})
	application.cleanup = append(application.cleanup, unbind, unsave)

	application.workers.Add(3)
	go application.record()
	go application.pump()
	go application.announce()
	return application, nil
}

// OnTimerEvent registers listener for timer events. Listeners run on the
// event pump goroutine, not the caller's. A slow listener may miss progress
// events but never delays the journal or notifications.
func (app *App) OnTimerEvent(listener func(timer.Event)) {
	app.mu.Lock()
	defer app.mu.Unlock()
	app.listeners = append(app.listeners, listener)
}

// OnTotals registers listener for journal totals. It is called after each
// recorded session from its own goroutine; a listener that falls behind
// only sees the latest totals.
func (app *App) OnTotals(listener func(journal.Totals)) {
	app.mu.Lock()
	defer app.mu.Unlock()
	app.watchers = append(app.watchers, listener)
}

// ToggleTimer pauses a running countdown and starts or resumes any other.
func (app *App) ToggleTimer() error {
	if app.Timer.State().Running {
		app.Timer.Pause()
		return nil
	}
	return app.Timer.Start()
}

// Close stops the timer, drains pending events and saves preferences.
func (app *App) Close() error {
	var err error
	app.closeOnce.Do(func() {
		app.Timer.Close()
		app.workers.Wait()
		for _, fn := range app.cleanup {
			fn()
		}
		app.saveSettings()
		err = app.Journal.Close()
	})
	return err
}

// record journals sessions and sends the completion notice. It reads the
// lossless subscription so no completion is missed.
func (app *App) record() {
	defer app.workers.Done()
	defer close(app.totals)
	ctx := context.Background()
	for event := range app.records {
		if err := app.recorder.Handle(ctx, event); err != nil {
			app.log.Error().Err(err).Msg("record session")
		}
		if event.Type == timer.EventComplete {
			app.Notifier.FocusComplete()
		}
		if event.Type == timer.EventStateChange && event.State.Status == timer.StatusIdle {
			app.publishTotals(ctx)
		}
	}
}

func (app *App) publishTotals(ctx context.Context) {
	totals, err := app.Journal.Totals(ctx)
	if err != nil {
		app.log.Warn().Err(err).Msg("read session totals")
		return
	}
	// Replace any value the announcer has not picked up yet.
	select {
	case <-app.totals:
	default:
	}
	select {
	case app.totals <- totals:
	default:
	}
}

func (app *App) announce() {
	defer app.workers.Done()
	for totals := range app.totals {
		app.mu.Lock()
		watchers := slices.Clone(app.watchers)
		app.mu.Unlock()
		for _, watcher := range watchers {
			watcher(totals)
		}
	}
}

func (app *App) pump() {
	defer app.workers.Done()
	for event := range app.events {
		app.mu.Lock()
		listeners := slices.Clone(app.listeners)
		app.mu.Unlock()
		for _, listener := range listeners {
			listener(event)
		}
	}
}

func (app *App) saveSettings() {
	if app.configDir == "" {
		return
	}
	if err := storage.SaveSettings(app.configDir, app.Settings.Settings()); err != nil {
		app.log.Warn().Err(err).Msg("save settings")
	}
}
