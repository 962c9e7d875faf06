package session

import "time"

// Kind identifies the interval type
type Kind int

const (
	Work Kind = iota
	Break
)

// String returns the display name
func (k Kind) String() string {
	if k == Break {
		return "Break"
	}
	return "Work"
}

// Opposite returns the other interval kind
func (k Kind) Opposite() Kind {
	if k == Work {
		return Break
	}
	return Work
}

// Mode selects what completion does next. It is supplied by the caller
// on each Tick, not owned by the timer.
type Mode int

const (
	// Auto starts the opposite interval immediately on completion
	Auto Mode = iota
	// Manual halts at zero remaining until an explicit Start
	Manual
)

// String returns the display name
func (m Mode) String() string {
	if m == Manual {
		return "Manual"
	}
	return "Auto"
}

// Event reports one interval completion
type Event struct {
	Kind Kind
}

// Default interval lengths
const (
	DefaultWorkDuration  = 25 * time.Minute
	DefaultBreakDuration = 5 * time.Minute
)

// Timer tracks one active work or break interval across pause/resume
// cycles. Elapsed time is accounted stopwatch-style: accumulated holds
// time from finished run stretches, resumedAt marks the start of the
// live stretch while running. Invariant: running == !resumedAt.IsZero().
//
// Timer is not safe for concurrent use; a single poll loop owns it.
type Timer struct {
	clock Clock

	kind        Kind
	total       time.Duration
	accumulated time.Duration
	running     bool
	resumedAt   time.Time

	workDuration  time.Duration
	breakDuration time.Duration

	completed int
}

// NewTimer creates a paused Work timer with the given interval lengths.
// Non-positive durations fall back to the defaults.
func NewTimer(clock Clock, work, brk time.Duration) *Timer {
	if clock == nil {
		clock = SystemClock
	}
	if work <= 0 {
		work = DefaultWorkDuration
	}
	if brk <= 0 {
		brk = DefaultBreakDuration
	}
	return &Timer{
		clock:         clock,
		kind:          Work,
		total:         work,
		workDuration:  work,
		breakDuration: brk,
	}
}

// SetDurations updates the stored interval lengths used by StartWork,
// StartBreak and auto-cycling. Non-positive values are ignored.
func (t *Timer) SetDurations(work, brk time.Duration) {
	if work > 0 {
		t.workDuration = work
	}
	if brk > 0 {
		t.breakDuration = brk
	}
}

// Start begins a fresh interval of the given kind and duration,
// discarding the current one. Valid from any state.
func (t *Timer) Start(kind Kind, d time.Duration) {
	t.kind = kind
	t.total = d
	t.accumulated = 0
	t.running = true
	t.resumedAt = t.clock.Now()
}

// StartWork begins a work interval at the stored length
func (t *Timer) StartWork() {
	t.Start(Work, t.workDuration)
}

// StartBreak begins a break interval at the stored length
func (t *Timer) StartBreak() {
	t.Start(Break, t.breakDuration)
}

// Pause freezes the interval. Idempotent.
func (t *Timer) Pause() {
	if !t.running {
		return
	}
	t.accumulated += t.clock.Now().Sub(t.resumedAt)
	t.running = false
	t.resumedAt = time.Time{}
}

// Resume unfreezes the interval. Idempotent.
func (t *Timer) Resume() {
	if t.running {
		return
	}
	t.running = true
	t.resumedAt = t.clock.Now()
}

// Toggle pauses if running, resumes if paused
func (t *Timer) Toggle() {
	if t.running {
		t.Pause()
	} else {
		t.Resume()
	}
}

// Elapsed returns effective elapsed time for the current interval
func (t *Timer) Elapsed() time.Duration {
	if !t.running {
		return t.accumulated
	}
	return t.accumulated + t.clock.Now().Sub(t.resumedAt)
}

// Remaining returns time left in the current interval, never negative
func (t *Timer) Remaining() time.Duration {
	remaining := t.total - t.Elapsed()
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Progress returns completion ratio in [0, 1]
func (t *Timer) Progress() float64 {
	if t.total <= 0 {
		return 1
	}
	progress := float64(t.Elapsed()) / float64(t.total)
	if progress > 1 {
		return 1
	}
	return progress
}

// Tick checks for completion. It fires at most one event per interval:
// when the running interval's elapsed time reaches its total, the event
// carries the finished kind, and the timer either auto-cycles into the
// opposite interval or halts frozen at zero remaining per mode.
// Non-blocking; call once per poll cycle.
func (t *Timer) Tick(mode Mode) (Event, bool) {
	if !t.running {
		return Event{}, false
	}

	elapsed := t.Elapsed()
	if elapsed < t.total {
		return Event{}, false
	}

	t.completed++
	ev := Event{Kind: t.kind}

	if mode == Auto {
		switch t.kind {
		case Work:
			t.StartBreak()
		case Break:
			t.StartWork()
		}
	} else {
		// Freeze at the final elapsed value so the display holds 00:00
		t.accumulated = elapsed
		t.running = false
		t.resumedAt = time.Time{}
	}

	return ev, true
}

// Kind returns the current interval kind
func (t *Timer) Kind() Kind { return t.kind }

// Total returns the current interval's configured duration
func (t *Timer) Total() time.Duration { return t.total }

// IsRunning reports whether the interval clock is advancing
func (t *Timer) IsRunning() bool { return t.running }

// Completed returns the number of finished intervals since start.
// Monotonically increasing, never reset.
func (t *Timer) Completed() int { return t.completed }

// WorkDuration returns the stored work interval length
func (t *Timer) WorkDuration() time.Duration { return t.workDuration }

// BreakDuration returns the stored break interval length
func (t *Timer) BreakDuration() time.Duration { return t.breakDuration }
