package minimax

import (
	"time"
)

type _Timer struct {
	start    time.Time
	duration time.Duration
}

// In milliseconds, negative means no budget
func _NewTimer(movetime int) *_Timer {
	t := &_Timer{time.Now(), -1}
	if movetime >= 0 {
		t.duration = time.Duration(movetime) * time.Millisecond
	}
	return t
}

// Wheter a time budget was set at all
func (t *_Timer) IsSet() bool {
	return t.duration != -1
}

// Check if this timer has ended
func (t *_Timer) IsEnd() bool {
	return t.duration > 0 && time.Since(t.start) >= t.duration
}

// True once half of the budget is spent, checked between deepening
// iterations since a started iteration is never abandoned
func (t *_Timer) HalfTime() bool {
	return t.duration > 0 && time.Since(t.start) >= t.duration/2
}

// Set the 'start' as now
func (t *_Timer) Reset() {
	t.start = time.Now()
}

func (t *_Timer) Deltatime() int {
	return max(int(time.Since(t.start).Milliseconds()), 1)
}
