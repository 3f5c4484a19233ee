package notify

import (
	"pomoboard/internal/core/model"

	"github.com/rs/zerolog"
)

const (
	completeTitle = "PomoBoard"
	completeBody  = "Focus session complete. Time for a break!"
)

// Sender delivers a user-visible notification.
type Sender interface {
	Send(title, body string)
}

// SenderFunc adapts a function to Sender.
type SenderFunc func(title, body string)

// Send calls fn.
func (fn SenderFunc) Send(title, body string) {
	fn(title, body)
}

// SettingsSource exposes the current preferences.
type SettingsSource interface {
	Settings() model.Settings
}

// Notifier announces finished focus sessions unless the user silenced them.
type Notifier struct {
	sender   Sender
	settings SettingsSource
	log      zerolog.Logger
}

// New creates a Notifier.
func New(sender Sender, settings SettingsSource, logger *zerolog.Logger) *Notifier {
	log := zerolog.Nop()
	if logger != nil {
		log = logger.With().Str("component", "notify").Logger()
	}
	return &Notifier{sender: sender, settings: settings, log: log}
}

// Allowed reports whether settings permit notifications.
func Allowed(settings model.Settings) bool {
	return !settings.DoNotDisturb && !settings.MuteNotifications
}

// FocusComplete notifies about a finished countdown. It returns whether a
// notification was sent.
func (notifier *Notifier) FocusComplete() bool {
	current := notifier.settings.Settings()
	if !Allowed(current) || notifier.sender == nil {
		notifier.log.Debug().
			Bool("do_not_disturb", current.DoNotDisturb).
			Bool("mute_notifications", current.MuteNotifications).
			Msg("completion notification suppressed")
		return false
	}
	notifier.sender.Send(completeTitle, completeBody)
	return true
}
