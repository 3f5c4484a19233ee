package settings

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"pomoboard/internal/core/model"

	"github.com/rs/zerolog"
)

var (
	// ErrUnknownField indicates an integer field the store does not hold.
	ErrUnknownField = errors.New("unknown settings field")
	// ErrUnknownFlag indicates a boolean flag the store does not hold.
	ErrUnknownFlag = errors.New("unknown settings flag")
)

// Field names an adjustable integer preference.
type Field string

const (
	FieldFocusMinutes      Field = "focus_minutes"
	FieldShortBreakMinutes Field = "short_break_minutes"
	FieldLongBreakMinutes  Field = "long_break_minutes"
	FieldCyclesPerRound    Field = "cycles_per_round"
)

// Fields lists the integer preferences in display order.
var Fields = []Field{FieldFocusMinutes, FieldShortBreakMinutes, FieldLongBreakMinutes, FieldCyclesPerRound}

// Flag names a boolean preference.
type Flag string

const (
	FlagDoNotDisturb      Flag = "do_not_disturb"
	FlagMuteNotifications Flag = "mute_notifications"
)

// Flags lists the boolean preferences in display order.
var Flags = []Flag{FlagDoNotDisturb, FlagMuteNotifications}

// Change describes a single write to the store.
type Change struct {
	Key      string
	Previous model.Settings
	Current  model.Settings
}

// Observer is called synchronously after every write.
type Observer func(Change)

// Store holds the session's preferences and notifies observers on change.
type Store struct {
	mu        sync.Mutex
	settings  model.Settings
	observers map[int]Observer
	nextID    int
	log       zerolog.Logger
}

// New creates a Store seeded with initial, clamped to valid ranges.
func New(initial model.Settings, logger *zerolog.Logger) *Store {
	log := zerolog.Nop()
	if logger != nil {
		log = logger.With().Str("component", "settings").Logger()
	}
	return &Store{
		settings:  Clamp(initial),
		observers: make(map[int]Observer),
		log:       log,
	}
}

// Settings returns a copy of the current preferences.
func (store *Store) Settings() model.Settings {
	store.mu.Lock()
	defer store.mu.Unlock()
	return store.settings
}

// Subscribe registers an observer and returns a function removing it.
func (store *Store) Subscribe(observer Observer) func() {
	store.mu.Lock()
	id := store.nextID
	store.nextID++
	store.observers[id] = observer
	store.mu.Unlock()

	return func() {
		store.mu.Lock()
		delete(store.observers, id)
		store.mu.Unlock()
	}
}

// Increment raises field by one.
func (store *Store) Increment(field Field) error {
	return store.adjust(field, 1)
}

// Decrement lowers field by one, never below its floor.
func (store *Store) Decrement(field Field) error {
	return store.adjust(field, -1)
}

// Toggle flips flag.
func (store *Store) Toggle(flag Flag) error {
	store.mu.Lock()
	previous := store.settings
	switch flag {
	case FlagDoNotDisturb:
		store.settings.DoNotDisturb = !store.settings.DoNotDisturb
	case FlagMuteNotifications:
		store.settings.MuteNotifications = !store.settings.MuteNotifications
	default:
		store.mu.Unlock()
		return fmt.Errorf("toggle %q: %w", flag, ErrUnknownFlag)
	}
	store.commitLocked(string(flag), previous)
	return nil
}

// Replace overwrites every preference at once, e.g. after loading from disk.
func (store *Store) Replace(settings model.Settings) {
	store.mu.Lock()
	previous := store.settings
	store.settings = Clamp(settings)
	if previous == store.settings {
		store.mu.Unlock()
		return
	}
	store.commitLocked("all", previous)
}

func (store *Store) adjust(field Field, delta int) error {
	store.mu.Lock()
	previous := store.settings
	target := fieldRef(&store.settings, field)
	if target == nil {
		store.mu.Unlock()
		return fmt.Errorf("adjust %q: %w", field, ErrUnknownField)
	}
	next := min(max(*target+delta, Floor(field)), Ceiling(field))
	if next == *target {
		store.mu.Unlock()
		return nil
	}
	*target = next
	store.commitLocked(string(field), previous)
	return nil
}

// commitLocked releases the lock and notifies observers outside it.
func (store *Store) commitLocked(key string, previous model.Settings) {
	change := Change{Key: key, Previous: previous, Current: store.settings}
	ids := make([]int, 0, len(store.observers))
	for id := range store.observers {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	observers := make([]Observer, 0, len(ids))
	for _, id := range ids {
		observers = append(observers, store.observers[id])
	}
	store.mu.Unlock()

	store.log.Debug().Str("key", key).Interface("settings", change.Current).Msg("settings changed")
	for _, observer := range observers {
		observer(change)
	}
}

// Floor returns the smallest value field may hold.
func Floor(field Field) int {
	if field == FieldFocusMinutes {
		return 1
	}
	return 0
}

// Ceiling returns the largest value field may hold.
func Ceiling(Field) int {
	return model.MaxSettingValue
}

// Clamp moves every integer preference into its floor..ceiling range.
func Clamp(settings model.Settings) model.Settings {
	for _, field := range Fields {
		target := fieldRef(&settings, field)
		*target = min(max(*target, Floor(field)), Ceiling(field))
	}
	return settings
}

// Label returns the display caption of field.
func Label(field Field) string {
	switch field {
	case FieldFocusMinutes:
		return "Focus time (min)"
	case FieldShortBreakMinutes:
		return "Short break (min)"
	case FieldLongBreakMinutes:
		return "Long break (min)"
	case FieldCyclesPerRound:
		return "Cycles per round"
	default:
		return string(field)
	}
}

// FlagLabel returns the display caption of flag.
func FlagLabel(flag Flag) string {
	switch flag {
	case FlagDoNotDisturb:
		return "Do not disturb"
	case FlagMuteNotifications:
		return "Mute notifications"
	default:
		return string(flag)
	}
}

// FieldValue returns the value of field in settings.
func FieldValue(settings model.Settings, field Field) int {
	target := fieldRef(&settings, field)
	if target == nil {
		return 0
	}
	return *target
}

// FlagValue reports the value of flag in settings.
func FlagValue(settings model.Settings, flag Flag) bool {
	switch flag {
	case FlagDoNotDisturb:
		return settings.DoNotDisturb
	case FlagMuteNotifications:
		return settings.MuteNotifications
	default:
		return false
	}
}

func fieldRef(settings *model.Settings, field Field) *int {
	switch field {
	case FieldFocusMinutes:
		return &settings.FocusMinutes
	case FieldShortBreakMinutes:
		return &settings.ShortBreakMinutes
	case FieldLongBreakMinutes:
		return &settings.LongBreakMinutes
	case FieldCyclesPerRound:
		return &settings.CyclesPerRound
	default:
		return nil
	}
}
