// Package clock provides a cancellable timer scheduler with a wall-clock
// implementation for production and a virtual implementation for tests.
package clock

import (
	"sort"
	"sync"
	"time"
)

// Timer is a handle to a scheduled callback. Stop cancels the callback and
// reports whether it was still pending.
type Timer interface {
	Stop() bool
}

// Scheduler schedules a callback to run after a delay.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Timer
}

// Ensure implementations satisfy Scheduler.
var (
	_ Scheduler = Wall{}
	_ Scheduler = (*Virtual)(nil)
)

// Wall is the production scheduler backed by time.AfterFunc.
type Wall struct{}

// AfterFunc schedules fn on the runtime timer heap.
func (Wall) AfterFunc(d time.Duration, fn func()) Timer {
	return wallTimer{t: time.AfterFunc(d, fn)}
}

type wallTimer struct {
	t *time.Timer
}

func (w wallTimer) Stop() bool {
	return w.t.Stop()
}

// Virtual is a deterministic scheduler for tests. Time only moves when
// Advance is called; due callbacks fire synchronously, in deadline order.
type Virtual struct {
	mu      sync.Mutex
	now     time.Time
	seq     int
	pending []*virtualTimer
}

// NewVirtual creates a virtual scheduler starting at an arbitrary fixed time.
func NewVirtual() *Virtual {
	return &Virtual{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

// Now returns the current virtual time.
func (v *Virtual) Now() time.Time {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.now
}

// AfterFunc registers fn to fire once virtual time reaches now+d.
func (v *Virtual) AfterFunc(d time.Duration, fn func()) Timer {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.seq++
	t := &virtualTimer{
		v:        v,
		deadline: v.now.Add(d),
		seq:      v.seq,
		fn:       fn,
	}
	v.pending = append(v.pending, t)
	return t
}

// Advance moves virtual time forward by d, firing every callback whose
// deadline falls inside the window. Callbacks run without the scheduler
// lock held, so they may schedule follow-up timers; a follow-up due within
// the same window fires in the same Advance call.
func (v *Virtual) Advance(d time.Duration) {
	v.mu.Lock()
	target := v.now.Add(d)

	for {
		t := v.popDue(target)
		if t == nil {
			break
		}
		v.now = t.deadline
		v.mu.Unlock()
		t.fn()
		v.mu.Lock()
	}

	v.now = target
	v.mu.Unlock()
}

// popDue removes and returns the earliest pending timer with deadline at or
// before target, or nil. Ties break on registration order.
func (v *Virtual) popDue(target time.Time) *virtualTimer {
	sort.SliceStable(v.pending, func(i, j int) bool {
		if v.pending[i].deadline.Equal(v.pending[j].deadline) {
			return v.pending[i].seq < v.pending[j].seq
		}
		return v.pending[i].deadline.Before(v.pending[j].deadline)
	})

	if len(v.pending) == 0 || v.pending[0].deadline.After(target) {
		return nil
	}

	t := v.pending[0]
	v.pending = v.pending[1:]
	return t
}

// remove unregisters a pending timer and reports whether it was found.
func (v *Virtual) remove(t *virtualTimer) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	for i, p := range v.pending {
		if p == t {
			v.pending = append(v.pending[:i], v.pending[i+1:]...)
			return true
		}
	}
	return false
}

type virtualTimer struct {
	v        *Virtual
	deadline time.Time
	seq      int
	fn       func()
}

func (t *virtualTimer) Stop() bool {
	return t.v.remove(t)
}
