package sheetsync

import (
	"sync"
	"time"
)

// State is the visible sync indicator
type State string

const (
	StateIdle    State = "idle"
	StateSyncing State = "syncing"
	StateSuccess State = "success"
	StateError   State = "error"
)

// Tracker holds the four-state sync indicator. Success and error
// revert to idle after the reset duration. At most one dispatch is
// visually tracked: overlapping dispatches may overwrite each other's
// displayed outcome, which is accepted rather than serialized.
type Tracker struct {
	mu    sync.Mutex
	state State
	reset time.Duration
	timer *time.Timer
}

func NewTracker(reset time.Duration) *Tracker {
	return &Tracker{state: StateIdle, reset: reset}
}

// Begin marks a dispatch in flight
func (t *Tracker) Begin() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopTimer()
	t.state = StateSyncing
}

// Finish records the dispatch outcome and schedules the revert to idle
func (t *Tracker) Finish(err error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopTimer()
	if err != nil {
		t.state = StateError
	} else {
		t.state = StateSuccess
	}
	t.timer = time.AfterFunc(t.reset, func() {
		t.mu.Lock()
		defer t.mu.Unlock()
		if t.state == StateSuccess || t.state == StateError {
			t.state = StateIdle
		}
	})
}

// State returns the current indicator state
func (t *Tracker) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

func (t *Tracker) stopTimer() {
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
}
