package timer

import (
	"fmt"
	"time"
)

// FormatTime renders seconds as zero-padded MM:SS. Minutes are not capped at 59.
func FormatTime(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

type systemTicker struct {
	ticker *time.Ticker
}

func (ticker systemTicker) C() <-chan time.Time { return ticker.ticker.C }

func (ticker systemTicker) Stop() { ticker.ticker.Stop() }

// SystemTicker is the default TickerFactory backed by time.Ticker.
func SystemTicker(interval time.Duration) (Ticker, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("tick interval %s must be positive", interval)
	}
	return systemTicker{ticker: time.NewTicker(interval)}, nil
}
