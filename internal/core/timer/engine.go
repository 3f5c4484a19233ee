package timer

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	// ErrInvalidDuration indicates a non-positive countdown length.
	ErrInvalidDuration = errors.New("timer duration must be positive")
	// ErrTickerUnavailable indicates the periodic tick could not be acquired.
	ErrTickerUnavailable = errors.New("periodic ticker unavailable")
	// ErrClosed is returned by Start after Close.
	ErrClosed = errors.New("timer engine closed")
)

// Ticker delivers periodic ticks until stopped.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// TickerFactory acquires a Ticker firing every interval.
type TickerFactory func(interval time.Duration) (Ticker, error)

// Config contains runtime options for Engine.
type Config struct {
	TickInterval time.Duration
	NewTicker    TickerFactory
	Logger       *zerolog.Logger
}

// State is a snapshot of the countdown.
type State struct {
	Remaining int
	Total     int
	Progress  float64
	Running   bool
	Status    Status
}

// Formatted returns the remaining time as MM:SS.
func (state State) Formatted() string {
	return FormatTime(state.Remaining)
}

// ActionLabel returns the caption of the start/pause control.
func (state State) ActionLabel() string {
	switch {
	case state.Running:
		return "PAUSE"
	case state.Remaining < state.Total:
		return "RESUME"
	default:
		return "START"
	}
}

// Engine is a single focus countdown driven by a one-second tick.
type Engine struct {
	mu         sync.Mutex
	options    Config
	log        zerolog.Logger
	total      int
	pending    int
	remaining  int
	progress   float64
	status     Status
	running    bool
	ticker     Ticker
	stopCh     chan struct{}
	generation uint64
	events     []chan Event
	mailboxes  []*mailbox
	closed     bool
}

// New creates an idle Engine counting down totalSeconds.
func New(totalSeconds int, options Config) (*Engine, error) {
	if totalSeconds <= 0 {
		return nil, fmt.Errorf("new timer with %d seconds: %w", totalSeconds, ErrInvalidDuration)
	}
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	if options.NewTicker == nil {
		options.NewTicker = SystemTicker
	}
	log := zerolog.Nop()
	if options.Logger != nil {
		log = options.Logger.With().Str("component", "timer").Logger()
	}

	return &Engine{
		options:   options,
		log:       log,
		total:     totalSeconds,
		remaining: totalSeconds,
		status:    StatusIdle,
	}, nil
}

// Subscribe registers a new observer channel. Events are dropped for a
// subscriber whose buffer is full.
func (engine *Engine) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.closed {
		close(ch)
		return ch
	}
	engine.events = append(engine.events, ch)
	return ch
}

// SubscribeAll registers an observer that receives every event in order.
// Unlike Subscribe nothing is dropped while the reader lags, so the reader
// must keep draining until the channel is closed by Close.
func (engine *Engine) SubscribeAll() <-chan Event {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.closed {
		ch := make(chan Event)
		close(ch)
		return ch
	}
	box := newMailbox()
	engine.mailboxes = append(engine.mailboxes, box)
	return box.out
}

// State returns the current countdown snapshot.
func (engine *Engine) State() State {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.stateLocked()
}

// Configure sets the countdown length. A running countdown keeps its
// current total until the next reset.
func (engine *Engine) Configure(totalSeconds int) error {
	if totalSeconds <= 0 {
		return fmt.Errorf("configure %d seconds: %w", totalSeconds, ErrInvalidDuration)
	}

	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.running {
		engine.pending = totalSeconds
		engine.log.Debug().Int("total", totalSeconds).Msg("total deferred until reset")
		return nil
	}
	engine.total = totalSeconds
	engine.pending = 0
	engine.resetLocked()
	engine.log.Debug().Int("total", totalSeconds).Msg("configured")
	engine.emitLocked(EventStateChange, time.Now())
	return nil
}

// Start begins or resumes the countdown. Calling Start while running is a no-op.
func (engine *Engine) Start() error {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.closed {
		return ErrClosed
	}
	if engine.running {
		return nil
	}

	ticker, err := engine.options.NewTicker(engine.options.TickInterval)
	if err != nil {
		return fmt.Errorf("start timer: %w: %v", ErrTickerUnavailable, err)
	}

	if engine.remaining == 0 || engine.remaining == engine.total {
		engine.remaining = engine.total
		engine.progress = 0
	}
	engine.running = true
	engine.status = StatusRunning
	engine.generation++
	engine.ticker = ticker
	engine.stopCh = make(chan struct{})
	go engine.run(ticker, engine.stopCh, engine.generation)

	engine.log.Debug().Int("remaining", engine.remaining).Msg("started")
	engine.emitLocked(EventStateChange, time.Now())
	return nil
}

// Pause stops ticking and keeps the remaining time. No tick is applied
// after Pause returns.
func (engine *Engine) Pause() {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if !engine.running {
		return
	}
	engine.stopTickerLocked()
	engine.running = false
	engine.status = StatusPaused
	engine.log.Debug().Int("remaining", engine.remaining).Msg("paused")
	engine.emitLocked(EventStateChange, time.Now())
}

// Stop cancels the countdown and rewinds it to the full total.
func (engine *Engine) Stop() {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	engine.stopTickerLocked()
	engine.resetLocked()
	engine.log.Debug().Int("total", engine.total).Msg("stopped")
	engine.emitLocked(EventStateChange, time.Now())
}

// Reset is an alias for Stop.
func (engine *Engine) Reset() {
	engine.Stop()
}

// Tick advances a running countdown by one step. It is what the periodic
// ticker calls; hosts with their own scheduler may call it directly.
func (engine *Engine) Tick() {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if !engine.running {
		return
	}
	engine.tickLocked(time.Now())
}

// Close stops ticking and closes all observer channels.
func (engine *Engine) Close() {
	engine.mu.Lock()
	if engine.closed {
		engine.mu.Unlock()
		return
	}
	engine.stopTickerLocked()
	engine.running = false
	if engine.status == StatusRunning {
		engine.status = StatusPaused
	}
	engine.closed = true
	events := engine.events
	mailboxes := engine.mailboxes
	engine.events = nil
	engine.mailboxes = nil
	engine.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
	for _, box := range mailboxes {
		box.close()
	}
}

func (engine *Engine) run(ticker Ticker, stopCh <-chan struct{}, generation uint64) {
	for {
		select {
		case <-stopCh:
			return
		case tickTime := <-ticker.C():
			engine.tickGeneration(generation, tickTime)
		}
	}
}

func (engine *Engine) tickGeneration(generation uint64, tickTime time.Time) {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	// A tick already in flight when Pause or Stop ran belongs to an old generation.
	if generation != engine.generation || !engine.running {
		return
	}
	engine.tickLocked(tickTime)
}

func (engine *Engine) tickLocked(now time.Time) {
	if engine.remaining > 0 {
		engine.remaining--
		engine.progress = 1.0 - float64(engine.remaining)/float64(engine.total)
		engine.emitLocked(EventProgress, now)
		if engine.remaining > 0 {
			return
		}
		engine.log.Debug().Int("total", engine.total).Msg("countdown complete")
		engine.emitLocked(EventComplete, now)
	}

	engine.stopTickerLocked()
	engine.resetLocked()
	engine.emitLocked(EventStateChange, now)
}

func (engine *Engine) stopTickerLocked() {
	if engine.ticker != nil {
		engine.ticker.Stop()
		engine.ticker = nil
	}
	if engine.stopCh != nil {
		close(engine.stopCh)
		engine.stopCh = nil
	}
	engine.generation++
}

func (engine *Engine) resetLocked() {
	if engine.pending > 0 {
		engine.total = engine.pending
		engine.pending = 0
	}
	engine.remaining = engine.total
	engine.progress = 0
	engine.running = false
	engine.status = StatusIdle
}

func (engine *Engine) stateLocked() State {
	return State{
		Remaining: engine.remaining,
		Total:     engine.total,
		Progress:  engine.progress,
		Running:   engine.running,
		Status:    engine.status,
	}
}

func (engine *Engine) emitLocked(eventType EventType, at time.Time) {
	event := Event{
		Type:  eventType,
		State: engine.stateLocked(),
		At:    at,
	}
	for _, ch := range engine.events {
		select {
		case ch <- event:
		default:
		}
	}
	for _, box := range engine.mailboxes {
		box.push(event)
	}
}
