package model

// MaxSettingValue bounds every integer preference.
const MaxSettingValue = 999

// Settings contains the user-editable focus preferences.
type Settings struct {
	FocusMinutes      int
	ShortBreakMinutes int
	LongBreakMinutes  int
	CyclesPerRound    int
	DoNotDisturb      bool
	MuteNotifications bool
}

// DefaultSettings returns the preferences a fresh install starts with.
func DefaultSettings() Settings {
	return Settings{
		FocusMinutes:      25,
		ShortBreakMinutes: 5,
		LongBreakMinutes:  15,
		CyclesPerRound:    4,
	}
}

// FocusSeconds returns the focus countdown length in seconds.
func (settings Settings) FocusSeconds() int {
	return settings.FocusMinutes * 60
}
