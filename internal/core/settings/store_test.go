package settings

import (
	"math"
	"testing"

	"pomoboard/internal/core/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClampsInitialValues(t *testing.T) {
	store := New(model.Settings{FocusMinutes: 0, ShortBreakMinutes: -2, CyclesPerRound: -1}, nil)

	got := store.Settings()
	assert.Equal(t, 1, got.FocusMinutes)
	assert.Equal(t, 0, got.ShortBreakMinutes)
	assert.Equal(t, 0, got.CyclesPerRound)
}

func TestIncrementAndDecrement(t *testing.T) {
	store := New(model.DefaultSettings(), nil)

	require.NoError(t, store.Increment(FieldFocusMinutes))
	require.NoError(t, store.Increment(FieldShortBreakMinutes))
	require.NoError(t, store.Decrement(FieldLongBreakMinutes))
	require.NoError(t, store.Decrement(FieldCyclesPerRound))

	got := store.Settings()
	assert.Equal(t, 26, got.FocusMinutes)
	assert.Equal(t, 6, got.ShortBreakMinutes)
	assert.Equal(t, 14, got.LongBreakMinutes)
	assert.Equal(t, 3, got.CyclesPerRound)
}

func TestDecrementClampsAtFloor(t *testing.T) {
	store := New(model.Settings{FocusMinutes: 1, CyclesPerRound: 0}, nil)

	require.NoError(t, store.Decrement(FieldFocusMinutes))
	require.NoError(t, store.Decrement(FieldCyclesPerRound))
	require.NoError(t, store.Decrement(FieldShortBreakMinutes))

	got := store.Settings()
	assert.Equal(t, 1, got.FocusMinutes)
	assert.Equal(t, 0, got.CyclesPerRound)
	assert.Equal(t, 0, got.ShortBreakMinutes)
}

func TestIncrementStopsAtCeiling(t *testing.T) {
	store := New(model.Settings{FocusMinutes: model.MaxSettingValue, CyclesPerRound: model.MaxSettingValue - 1}, nil)
	changes := 0
	store.Subscribe(func(Change) { changes++ })

	require.NoError(t, store.Increment(FieldFocusMinutes))
	require.NoError(t, store.Increment(FieldCyclesPerRound))
	require.NoError(t, store.Increment(FieldCyclesPerRound))

	got := store.Settings()
	assert.Equal(t, model.MaxSettingValue, got.FocusMinutes)
	assert.Equal(t, model.MaxSettingValue, got.CyclesPerRound)
	assert.Equal(t, 1, changes)
}

func TestClampLowersOversizedValues(t *testing.T) {
	got := Clamp(model.Settings{FocusMinutes: math.MaxInt / 30, ShortBreakMinutes: 5, LongBreakMinutes: 5000})

	assert.Equal(t, model.MaxSettingValue, got.FocusMinutes)
	assert.Equal(t, 5, got.ShortBreakMinutes)
	assert.Equal(t, model.MaxSettingValue, got.LongBreakMinutes)
	assert.Positive(t, got.FocusSeconds())
}

func TestToggleFlipsFlags(t *testing.T) {
	store := New(model.DefaultSettings(), nil)

	require.NoError(t, store.Toggle(FlagDoNotDisturb))
	require.NoError(t, store.Toggle(FlagMuteNotifications))
	require.NoError(t, store.Toggle(FlagMuteNotifications))

	got := store.Settings()
	assert.True(t, got.DoNotDisturb)
	assert.False(t, got.MuteNotifications)
}

func TestUnknownFieldAndFlag(t *testing.T) {
	store := New(model.DefaultSettings(), nil)

	assert.ErrorIs(t, store.Increment(Field("volume")), ErrUnknownField)
	assert.ErrorIs(t, store.Toggle(Flag("vibrate")), ErrUnknownFlag)
}

func TestObserversRunSynchronouslyAfterWrite(t *testing.T) {
	store := New(model.DefaultSettings(), nil)
	var seen []Change
	store.Subscribe(func(change Change) {
		// Reading back from inside the callback must already see the write.
		assert.Equal(t, change.Current, store.Settings())
		seen = append(seen, change)
	})

	require.NoError(t, store.Increment(FieldFocusMinutes))
	require.NoError(t, store.Toggle(FlagDoNotDisturb))

	require.Len(t, seen, 2)
	assert.Equal(t, "focus_minutes", seen[0].Key)
	assert.Equal(t, 25, seen[0].Previous.FocusMinutes)
	assert.Equal(t, 26, seen[0].Current.FocusMinutes)
	assert.Equal(t, "do_not_disturb", seen[1].Key)
}

func TestNoNotificationWhenValueUnchanged(t *testing.T) {
	store := New(model.Settings{FocusMinutes: 1}, nil)
	calls := 0
	store.Subscribe(func(Change) { calls++ })

	require.NoError(t, store.Decrement(FieldFocusMinutes))
	store.Replace(store.Settings())

	assert.Zero(t, calls)
}

func TestUnsubscribe(t *testing.T) {
	store := New(model.DefaultSettings(), nil)
	calls := 0
	unsubscribe := store.Subscribe(func(Change) { calls++ })

	require.NoError(t, store.Increment(FieldCyclesPerRound))
	unsubscribe()
	require.NoError(t, store.Increment(FieldCyclesPerRound))

	assert.Equal(t, 1, calls)
}

func TestReplaceClampsAndNotifies(t *testing.T) {
	store := New(model.DefaultSettings(), nil)
	var last Change
	store.Subscribe(func(change Change) { last = change })

	store.Replace(model.Settings{FocusMinutes: -4, LongBreakMinutes: 20, MuteNotifications: true})

	assert.Equal(t, "all", last.Key)
	assert.Equal(t, 1, last.Current.FocusMinutes)
	assert.Equal(t, 20, last.Current.LongBreakMinutes)
	assert.True(t, last.Current.MuteNotifications)
}

func TestLabels(t *testing.T) {
	for _, field := range Fields {
		assert.NotEqual(t, string(field), Label(field))
	}
	for _, flag := range Flags {
		assert.NotEqual(t, string(flag), FlagLabel(flag))
	}
	assert.True(t, FlagValue(model.Settings{DoNotDisturb: true}, FlagDoNotDisturb))
}
