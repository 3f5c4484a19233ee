package timer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatTime(t *testing.T) {
	cases := map[int]string{
		0:    "00:00",
		5:    "00:05",
		125:  "02:05",
		1500: "25:00",
		3599: "59:59",
		3661: "61:01",
		-3:   "00:00",
	}
	for seconds, want := range cases {
		assert.Equal(t, want, FormatTime(seconds), "seconds=%d", seconds)
	}
}

func TestSystemTickerRejectsNonPositiveInterval(t *testing.T) {
	_, err := SystemTicker(0)
	assert.Error(t, err)

	ticker, err := SystemTicker(time.Hour)
	assert.NoError(t, err)
	ticker.Stop()
}
