package preferences

import (
	"errors"
	"testing"

	"pomoboard/internal/core/model"
	"pomoboard/internal/core/settings"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
)

func TestSteppersEditStore(t *testing.T) {
	testApp := test.NewApp()
	defer testApp.Quit()

	store := settings.New(model.DefaultSettings(), nil)
	panel := New(store, nil)
	assert.NotNil(t, panel.Content())
	assert.Equal(t, "25", panel.values[settings.FieldFocusMinutes].Text)

	test.Tap(panel.plus[settings.FieldFocusMinutes])
	test.Tap(panel.minus[settings.FieldCyclesPerRound])

	assert.Equal(t, 26, store.Settings().FocusMinutes)
	assert.Equal(t, 3, store.Settings().CyclesPerRound)
	assert.Equal(t, "26", panel.values[settings.FieldFocusMinutes].Text)
	assert.Equal(t, "3", panel.values[settings.FieldCyclesPerRound].Text)
}

func TestMinusDisabledAtFloor(t *testing.T) {
	testApp := test.NewApp()
	defer testApp.Quit()

	store := settings.New(model.Settings{FocusMinutes: 2}, nil)
	panel := New(store, nil)
	assert.True(t, panel.minus[settings.FieldShortBreakMinutes].Disabled())
	assert.False(t, panel.minus[settings.FieldFocusMinutes].Disabled())

	test.Tap(panel.minus[settings.FieldFocusMinutes])
	assert.Equal(t, 1, store.Settings().FocusMinutes)
	assert.True(t, panel.minus[settings.FieldFocusMinutes].Disabled())
}

func TestChecksToggleFlags(t *testing.T) {
	testApp := test.NewApp()
	defer testApp.Quit()

	store := settings.New(model.DefaultSettings(), nil)
	panel := New(store, nil)

	test.Tap(panel.checks[settings.FlagDoNotDisturb])
	assert.True(t, store.Settings().DoNotDisturb)
	assert.True(t, panel.checks[settings.FlagDoNotDisturb].Checked)
	assert.False(t, store.Settings().MuteNotifications)
}

func TestReportForwardsErrors(t *testing.T) {
	testApp := test.NewApp()
	defer testApp.Quit()

	var got error
	panel := New(settings.New(model.DefaultSettings(), nil), func(err error) { got = err })
	panel.report(errors.New("boom"))
	assert.EqualError(t, got, "boom")
}

func TestPlusDisabledAtCeiling(t *testing.T) {
	testApp := test.NewApp()
	defer testApp.Quit()

	store := settings.New(model.Settings{FocusMinutes: model.MaxSettingValue - 1}, nil)
	panel := New(store, nil)
	assert.False(t, panel.plus[settings.FieldFocusMinutes].Disabled())

	test.Tap(panel.plus[settings.FieldFocusMinutes])
	assert.Equal(t, model.MaxSettingValue, store.Settings().FocusMinutes)
	assert.True(t, panel.plus[settings.FieldFocusMinutes].Disabled())
}
