package journal

import (
	"context"
	"time"

	"pomoboard/internal/core/model"
	"pomoboard/internal/core/timer"
)

// Recorder turns timer events into journal sessions.
type Recorder struct {
	journal   *Journal
	tracking  bool
	startedAt time.Time
	planned   int
	elapsed   int
}

// NewRecorder creates a Recorder writing to journal.
func NewRecorder(journal *Journal) *Recorder {
	return &Recorder{journal: journal}
}

// Handle consumes a single timer event. A countdown that completes is stored
// as completed; one reset after at least one tick is stored as incomplete.
func (recorder *Recorder) Handle(ctx context.Context, event timer.Event) error {
	state := event.State
	switch event.Type {
	case timer.EventStateChange:
		switch state.Status {
		case timer.StatusRunning:
			if !recorder.tracking {
				recorder.tracking = true
				recorder.startedAt = event.At
				recorder.planned = state.Total
				recorder.elapsed = state.Total - state.Remaining
			}
		case timer.StatusIdle:
			if !recorder.tracking {
				return nil
			}
			recorder.tracking = false
			if recorder.elapsed == 0 {
				return nil
			}
			return recorder.record(ctx, false)
		}
	case timer.EventProgress:
		if recorder.tracking {
			recorder.elapsed = state.Total - state.Remaining
		}
	case timer.EventComplete:
		if !recorder.tracking {
			return nil
		}
		recorder.tracking = false
		recorder.elapsed = state.Total
		return recorder.record(ctx, true)
	}
	return nil
}

func (recorder *Recorder) record(ctx context.Context, completed bool) error {
	_, err := recorder.journal.Record(ctx, model.Session{
		StartedAt:   recorder.startedAt,
		PlannedSecs: recorder.planned,
		ElapsedSecs: recorder.elapsed,
		Completed:   completed,
	})
	return err
}
