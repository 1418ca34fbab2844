package timer

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pomotick/internal/core/model"
)

// countingSink records scheduler output.
type countingSink struct {
	mu      sync.Mutex
	ticks   []time.Time
	updates []Update
}

func (sink *countingSink) handleTick(now time.Time) {
	sink.mu.Lock()
	sink.ticks = append(sink.ticks, now)
	sink.mu.Unlock()
}

func (sink *countingSink) applyUpdate(update Update) {
	sink.mu.Lock()
	sink.updates = append(sink.updates, update)
	sink.mu.Unlock()
}

func (sink *countingSink) tickCount() int {
	sink.mu.Lock()
	defer sink.mu.Unlock()
	return len(sink.ticks)
}

func (sink *countingSink) updateCount() int {
	sink.mu.Lock()
	defer sink.mu.Unlock()
	return len(sink.updates)
}

func (sink *countingSink) lastUpdate() (Update, bool) {
	sink.mu.Lock()
	defer sink.mu.Unlock()
	if len(sink.updates) == 0 {
		return Update{}, false
	}
	return sink.updates[len(sink.updates)-1], true
}

func TestLocalSchedulerStartIsIdempotent(t *testing.T) {
	sink := &countingSink{}
	sched := newLocalScheduler(sink, SystemClock, 20*time.Millisecond)
	defer sched.stop()

	// A second start must not add a second tick source.
	sched.start(0)
	sched.start(0)

	time.Sleep(210 * time.Millisecond)
	count := sink.tickCount()

	// One source yields ~10 ticks in 210ms; a doubled source ~20.
	assert.GreaterOrEqual(t, count, 5)
	assert.LessOrEqual(t, count, 14)
}

func TestLocalSchedulerStopHaltsTicks(t *testing.T) {
	sink := &countingSink{}
	sched := newLocalScheduler(sink, SystemClock, 10*time.Millisecond)

	sched.start(0)
	time.Sleep(50 * time.Millisecond)
	sched.stop()
	sched.stop() // idempotent

	settled := sink.tickCount()
	time.Sleep(50 * time.Millisecond)
	assert.LessOrEqual(t, sink.tickCount(), settled+1, "at most one in-flight tick after stop")
}

func TestLocalSchedulerRestartsAfterStop(t *testing.T) {
	sink := &countingSink{}
	sched := newLocalScheduler(sink, SystemClock, 10*time.Millisecond)
	defer sched.stop()

	sched.start(0)
	sched.stop()
	sched.start(0)

	require.Eventually(t, func() bool {
		return sink.tickCount() > 0
	}, time.Second, 5*time.Millisecond)
}

func TestWorkerSchedulerRejectsBadInterval(t *testing.T) {
	_, err := newWorkerScheduler(&countingSink{}, SystemClock, 0)
	require.ErrorIs(t, err, errBadInterval)
}

func TestWorkerSchedulerPushesSnapshots(t *testing.T) {
	clock := newFakeClock()
	sink := &countingSink{}
	sched, err := newWorkerScheduler(sink, clock, 5*time.Millisecond)
	require.NoError(t, err)
	defer sched.stop()

	sched.start(10 * time.Minute)

	clock.advance(90 * time.Second)
	require.Eventually(t, func() bool {
		update, ok := sink.lastUpdate()
		return ok && update.Remaining == 10*time.Minute-90*time.Second
	}, time.Second, 5*time.Millisecond)

	update, _ := sink.lastUpdate()
	assert.Equal(t, 90*time.Second, update.Elapsed)
	assert.False(t, update.Done)
}

func TestWorkerSchedulerReportsDoneOnceBudgetElapses(t *testing.T) {
	clock := newFakeClock()
	sink := &countingSink{}
	sched, err := newWorkerScheduler(sink, clock, 5*time.Millisecond)
	require.NoError(t, err)
	defer sched.stop()

	sched.start(3 * time.Minute)
	clock.advance(3 * time.Minute)

	require.Eventually(t, func() bool {
		update, ok := sink.lastUpdate()
		return ok && update.Done
	}, time.Second, 5*time.Millisecond)

	update, _ := sink.lastUpdate()
	assert.Zero(t, update.Remaining)

	// The worker exits after the final snapshot; no further pushes.
	settled := sink.updateCount()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, settled, sink.updateCount())
}

func TestWorkerSchedulerStopEndsDelivery(t *testing.T) {
	clock := newFakeClock()
	sink := &countingSink{}
	sched, err := newWorkerScheduler(sink, clock, 5*time.Millisecond)
	require.NoError(t, err)

	sched.start(time.Hour)
	clock.advance(time.Minute)
	require.Eventually(t, func() bool {
		return sink.updateCount() > 0
	}, time.Second, 5*time.Millisecond)

	sched.stop()
	time.Sleep(20 * time.Millisecond)
	settled := sink.updateCount()
	clock.advance(time.Minute)
	time.Sleep(50 * time.Millisecond)
	assert.LessOrEqual(t, sink.updateCount(), settled+1)
}

func TestTimerWithWorkerStrategyCompletes(t *testing.T) {
	clock := newFakeClock()
	core := New(model.DefaultTimerConfig(), Options{
		TickInterval: 5 * time.Millisecond,
		Clock:        clock,
		UseWorker:    true,
	})
	defer core.Close()
	events := core.Subscribe(64)

	core.SwitchMode(model.ModeShortBreak)
	core.Start()
	clock.advance(5 * time.Minute)

	require.Eventually(t, func() bool {
		for _, event := range drain(events) {
			if event.Type == EventCompleted {
				return true
			}
		}
		return false
	}, 2*time.Second, 10*time.Millisecond)

	snap := core.Snapshot()
	assert.Zero(t, snap.Remaining)
	assert.Zero(t, snap.Sessions, "break completion must not count a session")
}

func TestTimerWorkerPauseDiscardsLateSnapshot(t *testing.T) {
	clock := newFakeClock()
	core := New(model.DefaultTimerConfig(), Options{
		TickInterval: 5 * time.Millisecond,
		Clock:        clock,
		UseWorker:    true,
	})
	defer core.Close()

	core.Start()
	clock.advance(10 * time.Second)
	require.Eventually(t, func() bool {
		return core.Snapshot().Remaining == 25*time.Minute-10*time.Second
	}, time.Second, 5*time.Millisecond)

	core.Pause()
	remaining := core.Snapshot().Remaining
	clock.advance(time.Minute)
	time.Sleep(50 * time.Millisecond)

	assert.Equal(t, remaining, core.Snapshot().Remaining)
}
