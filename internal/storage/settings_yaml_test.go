package storage

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"pomoboard/internal/core/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettingsMissingFileReturnsDefaults(t *testing.T) {
	settings, err := LoadSettings(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, model.DefaultSettings(), settings)
}

func TestSaveThenLoad(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "PomoBoard")
	want := model.Settings{
		FocusMinutes:      50,
		ShortBreakMinutes: 0,
		LongBreakMinutes:  30,
		CyclesPerRound:    2,
		DoNotDisturb:      true,
		MuteNotifications: true,
	}

	require.NoError(t, SaveSettings(dir, want))
	got, err := LoadSettings(dir)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadSettingsIgnoresOutOfRangeValues(t *testing.T) {
	dir := t.TempDir()
	content := "focus_minutes: 0\nshort_break_minutes: -1\nlong_break_minutes: 20\nmute_notifications: true\n"
	require.NoError(t, os.WriteFile(SettingsPath(dir), []byte(content), 0o644))

	got, err := LoadSettings(dir)
	require.NoError(t, err)
	assert.Equal(t, 25, got.FocusMinutes)
	assert.Equal(t, 5, got.ShortBreakMinutes)
	assert.Equal(t, 20, got.LongBreakMinutes)
	assert.Equal(t, 4, got.CyclesPerRound)
	assert.True(t, got.MuteNotifications)
	assert.False(t, got.DoNotDisturb)
}

func TestLoadSettingsIgnoresOversizedValues(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, SaveSettings(dir, model.Settings{
		FocusMinutes:      math.MaxInt / 30,
		ShortBreakMinutes: 1000,
		LongBreakMinutes:  999,
		CyclesPerRound:    4,
	}))

	got, err := LoadSettings(dir)
	require.NoError(t, err)
	assert.Equal(t, 25, got.FocusMinutes)
	assert.Equal(t, 5, got.ShortBreakMinutes)
	assert.Equal(t, 999, got.LongBreakMinutes)
}

func TestLoadSettingsRejectsMalformedYaml(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(SettingsPath(dir), []byte("focus_minutes: [1, 2"), 0o644))

	got, err := LoadSettings(dir)
	assert.Error(t, err)
	assert.Equal(t, model.DefaultSettings(), got)
}
