package clock

import (
	"testing"
	"time"
)

func TestVirtual_FiresInDeadlineOrder(t *testing.T) {
	t.Parallel()

	v := NewVirtual()
	var order []int

	v.AfterFunc(3*time.Second, func() { order = append(order, 3) })
	v.AfterFunc(1*time.Second, func() { order = append(order, 1) })
	v.AfterFunc(2*time.Second, func() { order = append(order, 2) })

	v.Advance(5 * time.Second)

	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Errorf("expected fire order [1 2 3], got %v", order)
	}
}

func TestVirtual_DoesNotFireBeforeDeadline(t *testing.T) {
	t.Parallel()

	v := NewVirtual()
	fired := false
	v.AfterFunc(3*time.Second, func() { fired = true })

	v.Advance(2999 * time.Millisecond)
	if fired {
		t.Fatal("timer fired before its deadline")
	}

	v.Advance(1 * time.Millisecond)
	if !fired {
		t.Fatal("timer did not fire at its deadline")
	}
}

func TestVirtual_ChainedTimersFireWithinOneAdvance(t *testing.T) {
	t.Parallel()

	v := NewVirtual()
	var order []string

	v.AfterFunc(1*time.Second, func() {
		order = append(order, "first")
		v.AfterFunc(1*time.Second, func() {
			order = append(order, "second")
		})
	})

	v.Advance(2 * time.Second)

	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Errorf("expected chained timers [first second], got %v", order)
	}
}

func TestVirtual_StopPreventsFiring(t *testing.T) {
	t.Parallel()

	v := NewVirtual()
	fired := false
	timer := v.AfterFunc(1*time.Second, func() { fired = true })

	if !timer.Stop() {
		t.Fatal("expected Stop to report a pending timer")
	}
	if timer.Stop() {
		t.Fatal("second Stop should report no pending timer")
	}

	v.Advance(10 * time.Second)
	if fired {
		t.Fatal("stopped timer fired")
	}
}

func TestVirtual_NowAdvances(t *testing.T) {
	t.Parallel()

	v := NewVirtual()
	start := v.Now()
	v.Advance(90 * time.Second)

	if got := v.Now().Sub(start); got != 90*time.Second {
		t.Errorf("expected 90s to pass, got %v", got)
	}
}
