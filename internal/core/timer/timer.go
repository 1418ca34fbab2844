// Package timer implements the countdown core: a state machine over
// mode, remaining time and completed sessions, driven by discrete
// commands and a 1-second tick source. Remaining time is recomputed
// from wall-clock deltas on every tick, so the countdown stays correct
// when the host is throttled or suspended between ticks.
package timer

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"pomotick/internal/core/model"
)

// Options contains runtime options for a Timer.
type Options struct {
	// TickInterval defaults to one second.
	TickInterval time.Duration
	// Clock defaults to SystemClock.
	Clock Clock
	// Logger defaults to a no-op logger.
	Logger *zap.Logger
	// UseWorker delegates timekeeping to an independent worker
	// goroutine instead of ticking locally. If the worker cannot be
	// set up the timer falls back to local ticking on its own.
	UseWorker bool
}

// Timer is the countdown core. All commands are idempotent no-ops when
// inapplicable and return immediately.
type Timer struct {
	mu     sync.Mutex
	config model.TimerConfig
	clock  Clock
	logger *zap.Logger
	sched  scheduler

	mode      model.Mode
	remaining time.Duration
	running   bool
	sessions  int

	// segmentStart and segmentBudget describe the current run segment:
	// remaining is always segmentBudget minus the truncated elapsed
	// time since segmentStart, never the nominal duration minus a
	// total. This keeps pause/resume cycles additive.
	segmentStart  time.Time
	segmentBudget time.Duration

	events []chan Event
	closed bool
}

// New creates a Timer in work mode with the full work duration loaded.
func New(config model.TimerConfig, options Options) *Timer {
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	if options.Clock == nil {
		options.Clock = SystemClock
	}
	if options.Logger == nil {
		options.Logger = zap.NewNop()
	}

	config = config.Normalized()
	core := &Timer{
		config:    config,
		clock:     options.Clock,
		logger:    options.Logger,
		mode:      model.ModeWork,
		remaining: config.DurationOf(model.ModeWork),
	}

	if options.UseWorker {
		worker, err := newWorkerScheduler(core, options.Clock, options.TickInterval)
		if err != nil {
			options.Logger.Warn("worker scheduling unavailable, ticking locally",
				zap.Error(err))
		} else {
			core.sched = worker
		}
	}
	if core.sched == nil {
		core.sched = newLocalScheduler(core, options.Clock, options.TickInterval)
	}
	return core
}

// Config returns the duration configuration the timer was built with.
func (core *Timer) Config() model.TimerConfig {
	return core.config
}

// Subscribe registers a new observer channel.
func (core *Timer) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	core.mu.Lock()
	core.events = append(core.events, ch)
	core.mu.Unlock()
	return ch
}

// Snapshot returns the current state.
func (core *Timer) Snapshot() Snapshot {
	core.mu.Lock()
	defer core.mu.Unlock()
	return Snapshot{
		Mode:      core.mode,
		Remaining: core.remaining,
		Running:   core.running,
		Sessions:  core.sessions,
	}
}

// Start begins or resumes the countdown. No-op while already running.
func (core *Timer) Start() {
	core.mu.Lock()
	defer core.mu.Unlock()
	if core.closed || core.running {
		return
	}
	if core.remaining <= 0 {
		// A completed countdown restarts from the full duration.
		core.remaining = core.config.DurationOf(core.mode)
	}
	core.running = true
	core.segmentStart = core.clock.Now()
	core.segmentBudget = core.remaining
	core.sched.start(core.segmentBudget)

	core.emitLocked(Event{Type: EventRunningChanged, Mode: core.mode, Remaining: core.remaining, Running: true, Sessions: core.sessions, At: core.segmentStart})
	core.emitLocked(Event{Type: EventTick, Mode: core.mode, Remaining: core.remaining, Running: true, Sessions: core.sessions, At: core.segmentStart})
}

// Pause freezes the countdown, folding the elapsed wall-clock time of
// the current segment into the remaining value. No-op while idle.
func (core *Timer) Pause() {
	core.mu.Lock()
	defer core.mu.Unlock()
	if core.closed || !core.running {
		return
	}
	now := core.clock.Now()
	core.remaining = core.segmentRemainingLocked(now)
	core.stopRunLocked()

	core.emitLocked(Event{Type: EventRunningChanged, Mode: core.mode, Remaining: core.remaining, Sessions: core.sessions, At: now})
	core.emitLocked(Event{Type: EventTick, Mode: core.mode, Remaining: core.remaining, Sessions: core.sessions, At: now})
}

// Reset pauses and restores the nominal duration of the current mode.
func (core *Timer) Reset() {
	core.mu.Lock()
	defer core.mu.Unlock()
	if core.closed {
		return
	}
	now := core.clock.Now()
	wasRunning := core.running
	core.stopRunLocked()
	core.remaining = core.config.DurationOf(core.mode)

	if wasRunning {
		core.emitLocked(Event{Type: EventRunningChanged, Mode: core.mode, Remaining: core.remaining, Sessions: core.sessions, At: now})
	}
	core.emitLocked(Event{Type: EventTick, Mode: core.mode, Remaining: core.remaining, Sessions: core.sessions, At: now})
}

// SwitchMode pauses and moves to another mode with its full duration.
// Unknown modes are logged and ignored; switching to the current mode
// is a no-op.
func (core *Timer) SwitchMode(mode model.Mode) {
	if !model.ValidMode(mode) {
		core.logger.Warn("ignoring unknown timer mode", zap.String("mode", string(mode)))
		return
	}

	core.mu.Lock()
	defer core.mu.Unlock()
	if core.closed || mode == core.mode {
		return
	}
	now := core.clock.Now()
	wasRunning := core.running
	core.stopRunLocked()
	core.mode = mode
	core.remaining = core.config.DurationOf(mode)

	if wasRunning {
		core.emitLocked(Event{Type: EventRunningChanged, Mode: core.mode, Remaining: core.remaining, Sessions: core.sessions, At: now})
	}
	core.emitLocked(Event{Type: EventTick, Mode: core.mode, Remaining: core.remaining, Sessions: core.sessions, At: now})
}

// Close stops any tick source and closes observer channels. The timer
// ignores all commands afterwards.
func (core *Timer) Close() {
	core.mu.Lock()
	if core.closed {
		core.mu.Unlock()
		return
	}
	core.closed = true
	core.stopRunLocked()
	events := core.events
	core.events = nil
	core.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

// handleTick recomputes remaining time from the tick timestamp. Ticks
// that race a pause or reset arrive with running already false and are
// discarded.
func (core *Timer) handleTick(now time.Time) {
	core.mu.Lock()
	defer core.mu.Unlock()
	if core.closed || !core.running {
		return
	}
	core.remaining = core.segmentRemainingLocked(now)
	if core.remaining == 0 {
		core.completeLocked(now)
		return
	}
	core.emitLocked(Event{Type: EventTick, Mode: core.mode, Remaining: core.remaining, Running: true, Sessions: core.sessions, At: now})
}

// applyUpdate adopts a worker snapshot as-is, bypassing local tick
// math. Stale snapshots are discarded the same way as stale ticks.
func (core *Timer) applyUpdate(update Update) {
	core.mu.Lock()
	defer core.mu.Unlock()
	if core.closed || !core.running {
		return
	}
	remaining := update.Remaining
	if remaining < 0 {
		remaining = 0
	}
	if remaining > core.segmentBudget {
		remaining = core.segmentBudget
	}
	core.remaining = remaining
	if update.Done || remaining == 0 {
		core.remaining = 0
		core.completeLocked(update.At)
		return
	}
	core.emitLocked(Event{Type: EventTick, Mode: core.mode, Remaining: core.remaining, Running: true, Sessions: core.sessions, At: update.At})
}

// segmentRemainingLocked computes remaining whole seconds for the
// current run segment at the given instant.
func (core *Timer) segmentRemainingLocked(now time.Time) time.Duration {
	elapsed := now.Sub(core.segmentStart)
	if elapsed < 0 {
		elapsed = 0
	}
	// Truncate, never round: the displayed value must not jump back.
	remaining := core.segmentBudget - elapsed.Truncate(time.Second)
	if remaining < 0 {
		remaining = 0
	}
	return remaining
}

func (core *Timer) completeLocked(now time.Time) {
	previous := core.mode
	core.stopRunLocked()
	if previous == model.ModeWork {
		core.sessions++
	}

	core.emitLocked(Event{Type: EventRunningChanged, Mode: core.mode, Sessions: core.sessions, At: now})
	core.emitLocked(Event{Type: EventTick, Mode: core.mode, Sessions: core.sessions, At: now})
	core.emitLocked(Event{Type: EventCompleted, Mode: core.mode, PreviousMode: previous, Sessions: core.sessions, At: now})
}

// stopRunLocked halts the tick source and clears the run segment on
// every path that leaves the running state.
func (core *Timer) stopRunLocked() {
	core.running = false
	core.segmentStart = time.Time{}
	core.sched.stop()
}

func (core *Timer) emitLocked(event Event) {
	for _, ch := range core.events {
		select {
		case ch <- event:
		default:
		}
	}
}
