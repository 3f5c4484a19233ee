package app

import (
	"context"
	"math"
	"sync"
	"testing"
	"time"

	"pomoboard/internal/config"
	"pomoboard/internal/core/model"
	"pomoboard/internal/core/settings"
	"pomoboard/internal/core/timer"
	"pomoboard/internal/journal"
	"pomoboard/internal/notify"
	"pomoboard/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type silentTicker struct{}

func (silentTicker) C() <-chan time.Time { return nil }

func (silentTicker) Stop() {}

func silentFactory(time.Duration) (timer.Ticker, error) { return silentTicker{}, nil }

type sentLog struct {
	mu    sync.Mutex
	count int
}

func (log *sentLog) Send(string, string) {
	log.mu.Lock()
	defer log.mu.Unlock()
	log.count++
}

func (log *sentLog) sent() int {
	log.mu.Lock()
	defer log.mu.Unlock()
	return log.count
}

func newTestApp(t *testing.T, dir string, sender notify.Sender) *App {
	t.Helper()
	application, err := New(context.Background(), Options{
		Config:    &config.Config{ConfigDir: dir, TickInterval: time.Second},
		Sender:    sender,
		NewTicker: silentFactory,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = application.Close() })
	return application
}

func TestNewUsesPersistedFocusMinutes(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, storage.SaveSettings(dir, model.Settings{FocusMinutes: 1, CyclesPerRound: 4}))

	application := newTestApp(t, dir, nil)

	state := application.Timer.State()
	assert.Equal(t, 60, state.Total)
	assert.Equal(t, 60, state.Remaining)
}

func TestNewStartsWithOversizedFocusMinutes(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, storage.SaveSettings(dir, model.Settings{FocusMinutes: math.MaxInt / 30}))

	application := newTestApp(t, dir, nil)

	assert.Equal(t, 25*60, application.Timer.State().Total)
}

func TestToggleTimer(t *testing.T) {
	application := newTestApp(t, t.TempDir(), nil)

	require.NoError(t, application.ToggleTimer())
	assert.True(t, application.Timer.State().Running)
	application.Timer.Tick()

	require.NoError(t, application.ToggleTimer())
	state := application.Timer.State()
	assert.False(t, state.Running)
	assert.Equal(t, "RESUME", state.ActionLabel())
}

func TestSettingsChangesReconfigureAndPersist(t *testing.T) {
	dir := t.TempDir()
	application := newTestApp(t, dir, nil)

	require.NoError(t, application.Settings.Decrement(settings.FieldFocusMinutes))
	assert.Equal(t, 24*60, application.Timer.State().Remaining)

	saved, err := storage.LoadSettings(dir)
	require.NoError(t, err)
	assert.Equal(t, 24, saved.FocusMinutes)
}

func TestCompletionNotifiesAndRecords(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, storage.SaveSettings(dir, model.Settings{FocusMinutes: 1}))
	sender := &sentLog{}
	application := newTestApp(t, dir, sender)

	var (
		mu    sync.Mutex
		types []timer.EventType
	)
	application.OnTimerEvent(func(event timer.Event) {
		mu.Lock()
		defer mu.Unlock()
		types = append(types, event.Type)
	})

	require.NoError(t, application.ToggleTimer())
	for i := 0; i < 60; i++ {
		application.Timer.Tick()
	}

	require.Eventually(t, func() bool { return sender.sent() == 1 }, 2*time.Second, 10*time.Millisecond)
	require.Eventually(t, func() bool {
		totals, err := application.Journal.Totals(context.Background())
		return err == nil && totals.Completed == 1 && totals.FocusMinutes == 1
	}, 2*time.Second, 10*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Contains(t, types, timer.EventComplete)
}

func TestBlockedListenerDoesNotLoseCompletion(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, storage.SaveSettings(dir, model.Settings{FocusMinutes: 2}))
	sender := &sentLog{}
	application := newTestApp(t, dir, sender)

	release := make(chan struct{})
	defer close(release)
	application.OnTimerEvent(func(timer.Event) {
		<-release
	})

	require.NoError(t, application.ToggleTimer())
	for i := 0; i < 120; i++ {
		application.Timer.Tick()
	}

	require.Eventually(t, func() bool { return sender.sent() == 1 }, 2*time.Second, 10*time.Millisecond)
	require.Eventually(t, func() bool {
		totals, err := application.Journal.Totals(context.Background())
		return err == nil && totals.Completed == 1 && totals.FocusMinutes == 2
	}, 2*time.Second, 10*time.Millisecond)
}

func TestOnTotalsAfterRecordedSession(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, storage.SaveSettings(dir, model.Settings{FocusMinutes: 1}))
	application := newTestApp(t, dir, nil)

	updates := make(chan journal.Totals, 4)
	application.OnTotals(func(totals journal.Totals) {
		updates <- totals
	})

	require.NoError(t, application.ToggleTimer())
	application.Timer.Tick()
	application.Timer.Stop()

	select {
	case totals := <-updates:
		assert.Equal(t, journal.Totals{Completed: 0, Incomplete: 1, FocusMinutes: 0}, totals)
	case <-time.After(2 * time.Second):
		t.Fatalf("expected totals after a stopped session")
	}
}

func TestCompletionRespectsDoNotDisturb(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, storage.SaveSettings(dir, model.Settings{FocusMinutes: 1, DoNotDisturb: true}))
	sender := &sentLog{}
	application := newTestApp(t, dir, sender)

	require.NoError(t, application.ToggleTimer())
	for i := 0; i < 60; i++ {
		application.Timer.Tick()
	}
	require.NoError(t, application.Close())

	assert.Zero(t, sender.sent())
	totals, err := application.Journal.Totals(context.Background())
	// The journal is closed by now.
	assert.Error(t, err)
	assert.Zero(t, totals.Completed)
}

func TestNewRequiresConfig(t *testing.T) {
	_, err := New(context.Background(), Options{})
	assert.Error(t, err)
}
