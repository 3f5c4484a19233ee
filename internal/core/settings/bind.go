package settings

import (
	"fmt"
)

// Configurer accepts a new countdown length in seconds.
type Configurer interface {
	Configure(totalSeconds int) error
}

// BindTimer configures timer from the current focus minutes and keeps it in
// sync with later changes. The returned function detaches the binding.
func BindTimer(store *Store, timer Configurer) (func(), error) {
	if err := timer.Configure(store.Settings().FocusSeconds()); err != nil {
		return nil, fmt.Errorf("bind timer: %w", err)
	}

	unsubscribe := store.Subscribe(func(change Change) {
		if change.Previous.FocusMinutes == change.Current.FocusMinutes {
			return
		}
		if err := timer.Configure(change.Current.FocusSeconds()); err != nil {
			store.log.Warn().Err(err).Int("focus_minutes", change.Current.FocusMinutes).Msg("reconfigure timer")
		}
	})
	return unsubscribe, nil
}
