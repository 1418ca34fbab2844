package timer

import (
	"errors"
	"sync"
	"time"
)

// Update is a snapshot pushed by the worker scheduling strategy. The
// worker does its own clock math; the timer applies the values directly.
type Update struct {
	Remaining time.Duration
	Elapsed   time.Duration
	Done      bool
	At        time.Time
}

// tickSink receives scheduler output. Implemented by Timer.
type tickSink interface {
	handleTick(now time.Time)
	applyUpdate(update Update)
}

// scheduler drives periodic re-evaluation of a timer while it is
// running. Implementations guarantee at most one active tick source:
// start while active is a no-op, never an error.
type scheduler interface {
	start(budget time.Duration)
	stop()
}

// localScheduler ticks in the caller's own process with a time.Ticker
// and hands the sink a timestamp each tick.
type localScheduler struct {
	mu       sync.Mutex
	sink     tickSink
	clock    Clock
	interval time.Duration
	stopCh   chan struct{}
	active   bool
}

func newLocalScheduler(sink tickSink, clock Clock, interval time.Duration) *localScheduler {
	return &localScheduler{sink: sink, clock: clock, interval: interval}
}

func (sched *localScheduler) start(time.Duration) {
	sched.mu.Lock()
	if sched.active {
		sched.mu.Unlock()
		return
	}
	sched.active = true
	sched.stopCh = make(chan struct{})
	stopCh := sched.stopCh
	sched.mu.Unlock()

	go sched.run(stopCh)
}

func (sched *localScheduler) stop() {
	sched.mu.Lock()
	if !sched.active {
		sched.mu.Unlock()
		return
	}
	sched.active = false
	close(sched.stopCh)
	sched.mu.Unlock()
}

func (sched *localScheduler) run(stopCh chan struct{}) {
	ticker := time.NewTicker(sched.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			sched.sink.handleTick(sched.clock.Now())
		}
	}
}

// workerScheduler delegates timekeeping to an independent goroutine that
// reads its own clock and pushes Update snapshots over a one-way
// channel. The forwarding side stops by ceasing to read; the worker is
// never reached into directly.
type workerScheduler struct {
	mu       sync.Mutex
	sink     tickSink
	clock    Clock
	interval time.Duration
	stopCh   chan struct{}
	active   bool
}

var errBadInterval = errors.New("tick interval must be positive")

func newWorkerScheduler(sink tickSink, clock Clock, interval time.Duration) (*workerScheduler, error) {
	if interval <= 0 {
		return nil, errBadInterval
	}
	return &workerScheduler{sink: sink, clock: clock, interval: interval}, nil
}

func (sched *workerScheduler) start(budget time.Duration) {
	sched.mu.Lock()
	if sched.active {
		sched.mu.Unlock()
		return
	}
	sched.active = true
	sched.stopCh = make(chan struct{})
	stopCh := sched.stopCh
	sched.mu.Unlock()

	started := sched.clock.Now()
	updates := make(chan Update, 4)
	go sched.produce(started, budget, updates, stopCh)
	go sched.forward(updates, stopCh)
}

func (sched *workerScheduler) stop() {
	sched.mu.Lock()
	if !sched.active {
		sched.mu.Unlock()
		return
	}
	sched.active = false
	close(sched.stopCh)
	sched.mu.Unlock()
}

// produce is the worker side: it owns its own notion of elapsed time.
func (sched *workerScheduler) produce(started time.Time, budget time.Duration, updates chan<- Update, stopCh <-chan struct{}) {
	ticker := time.NewTicker(sched.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			now := sched.clock.Now()
			elapsed := now.Sub(started).Truncate(time.Second)
			if elapsed < 0 {
				elapsed = 0
			}
			remaining := budget - elapsed
			if remaining < 0 {
				remaining = 0
			}
			update := Update{
				Remaining: remaining,
				Elapsed:   elapsed,
				Done:      remaining == 0,
				At:        now,
			}
			if update.Done {
				// The final update must not be lost, but must also
				// not outlive a stop.
				select {
				case updates <- update:
				case <-stopCh:
				}
				return
			}
			select {
			case updates <- update:
			default: // drop when the reader lags; the next tick supersedes it
			}
		}
	}
}

// forward is the receiving side: it applies snapshots until stopped.
func (sched *workerScheduler) forward(updates <-chan Update, stopCh <-chan struct{}) {
	for {
		select {
		case <-stopCh:
			return
		case update := <-updates:
			sched.sink.applyUpdate(update)
			if update.Done {
				return
			}
		}
	}
}
