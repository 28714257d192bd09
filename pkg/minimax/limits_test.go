package minimax

import (
	"strings"
	"testing"
	"time"
)

func TestLimitsChaining(t *testing.T) {
	limits := DefaultLimits()
	if !limits.Infinite || limits.Depth != DefaultDepthLimit || limits.Movetime != DefaultMovetimeLimit {
		t.Fatalf("unexpected defaults: %s", limits)
	}

	limits = DefaultLimits().SetDepth(3)
	if limits.Infinite || limits.Depth != 3 {
		t.Fatalf("SetDepth: %s", limits)
	}

	limits = DefaultLimits().SetMovetime(250).SetDepth(8)
	if limits.Infinite || limits.Movetime != 250 || limits.Depth != 8 {
		t.Fatalf("chained setters: %s", limits)
	}

	if !strings.Contains(limits.String(), "\"Depth\":8") {
		t.Fatalf("String() lost the depth: %s", limits)
	}
}

func TestStopReasonString(t *testing.T) {
	cases := []struct {
		reason StopReason
		want   string
	}{
		{StopNone, "None"},
		{StopDepth, "Depth"},
		{StopMovetime, "Movetime"},
		{StopTerminal, "Terminal"},
		{StopDepth | StopMovetime, "Depth|Movetime"},
	}

	for _, c := range cases {
		if got := c.reason.String(); got != c.want {
			t.Errorf("StopReason(%d) = %q, want %q", c.reason, got, c.want)
		}
	}
}

func TestTimer(t *testing.T) {
	timer := _NewTimer(DefaultMovetimeLimit)
	if timer.IsSet() || timer.IsEnd() || timer.HalfTime() {
		t.Fatal("unset timer must never end")
	}

	timer = _NewTimer(40)
	if !timer.IsSet() || timer.IsEnd() {
		t.Fatal("fresh 40ms timer already ended")
	}

	time.Sleep(25 * time.Millisecond)
	if !timer.HalfTime() {
		t.Fatal("HalfTime not reached after 25ms of a 40ms budget")
	}

	time.Sleep(25 * time.Millisecond)
	if !timer.IsEnd() {
		t.Fatal("IsEnd not reached after 50ms of a 40ms budget")
	}

	timer.Reset()
	if timer.IsEnd() {
		t.Fatal("IsEnd still set after Reset")
	}
	if timer.Deltatime() < 1 {
		t.Fatal("Deltatime must be at least 1ms")
	}
}
