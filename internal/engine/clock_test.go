package engine

import (
	"testing"
	"time"
)

func TestManualClockAdvance(t *testing.T) {
	c := NewManualClock(epoch)

	c.Advance(250 * time.Millisecond)
	if got := c.Now().Sub(epoch); got != 250*time.Millisecond {
		t.Errorf("Now() - start = %v, expected 250ms", got)
	}
}

func TestManualClockAfterFiresImmediately(t *testing.T) {
	c := NewManualClock(epoch)

	select {
	case fired := <-c.After(time.Second):
		if !fired.Equal(epoch.Add(time.Second)) {
			t.Errorf("After() fired at %v, expected %v", fired, epoch.Add(time.Second))
		}
	default:
		t.Fatal("After() channel was empty")
	}
	if !c.Now().Equal(epoch.Add(time.Second)) {
		t.Errorf("Now() = %v, expected the clock to have advanced", c.Now())
	}
}

func TestSystemClockAfter(t *testing.T) {
	var c SystemClock
	start := c.Now()
	<-c.After(time.Millisecond)
	if c.Now().Sub(start) < time.Millisecond {
		t.Error("After() returned before the duration elapsed")
	}
}
