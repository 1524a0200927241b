package core

import (
	"testing"
	"time"
)

func TestClampFPS(t *testing.T) {
	cases := map[int]int{0: 1, -5: 1, 1: 1, 30: 30, 60: 60, 1000: 60}
	for in, want := range cases {
		if got := ClampFPS(in); got != want {
			t.Fatalf("ClampFPS(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestClampScale(t *testing.T) {
	cases := map[int]int{0: 5, 4: 5, 5: 5, 50: 50, 200: 200, 999: 200}
	for in, want := range cases {
		if got := ClampScale(in); got != want {
			t.Fatalf("ClampScale(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestFixedStepInterval(t *testing.T) {
	fs := NewFixedStep(10)
	if fs.Interval() != time.Second/10 {
		t.Fatalf("unexpected interval %v", fs.Interval())
	}

	// Out-of-range rates clamp instead of producing degenerate delays.
	fs.SetFPS(0)
	if fs.Interval() != time.Second {
		t.Fatalf("fps 0 should clamp to 1, interval %v", fs.Interval())
	}
	fs.SetFPS(10000)
	if fs.Interval() != time.Second/60 {
		t.Fatalf("huge fps should clamp to 60, interval %v", fs.Interval())
	}
}

func TestFixedStepWaitsOneInterval(t *testing.T) {
	fs := NewFixedStep(60)
	if fs.ShouldStep() {
		t.Fatal("a fresh FixedStep must not fire before one interval elapsed")
	}
	time.Sleep(fs.Interval() + 5*time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("a step is due after the interval elapsed")
	}
	if fs.ShouldStep() {
		t.Fatal("only one step may be due per interval")
	}
}

func TestFixedStepResetDefersNextStep(t *testing.T) {
	fs := NewFixedStep(60)
	time.Sleep(fs.Interval() + 5*time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("a step is due after the interval elapsed")
	}

	// Resuming computes a generation up front; the scheduler must wait a
	// full interval before the next one, not fire in the same frame.
	fs.Reset()
	if fs.ShouldStep() {
		t.Fatal("no step may be due immediately after Reset")
	}
	time.Sleep(fs.Interval() + 5*time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("a step is due one interval after Reset")
	}
}
