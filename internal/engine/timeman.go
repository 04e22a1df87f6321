package engine

import "time"

// GoLimits mirrors the time-control arguments of the UCI `go` command.
type GoLimits struct {
	WTime, BTime time.Duration
	WInc, BInc   time.Duration
	MoveTime     time.Duration
	MovesToGo    int
	Depth        int
	Infinite     bool
}

// WhiteToMove reports which side's clock applies: history length odd
// means white is about to move (ply 0, 2, 4, ...).
func WhiteToMove(historyLen int) bool {
	return historyLen%2 == 1
}

// Budget converts limits into a wall-clock search budget. movetime, if
// given, is used directly. Otherwise, for the side to move:
// think = min(time/40 + inc, time/2 - 1ms), budget = 0.8 * think.
// Missing time fields fall back to a 1-second default per the error
// handling policy of a malformed/absent `go` command.
func Budget(limits GoLimits, historyLen int) time.Duration {
	if limits.MoveTime > 0 {
		return limits.MoveTime
	}
	if limits.Infinite {
		return time.Duration(1<<63 - 1)
	}

	t, inc := limits.WTime, limits.WInc
	if !WhiteToMove(historyLen) {
		t, inc = limits.BTime, limits.BInc
	}
	if t <= 0 {
		return time.Second
	}

	think := t/40 + inc
	if alt := t/2 - time.Millisecond; alt < think {
		think = alt
	}
	if think < 0 {
		think = 0
	}
	return think * 8 / 10
}

// TimeManager tracks elapsed wall-clock time against a search budget.
type TimeManager struct {
	start  time.Time
	budget time.Duration
}

// NewTimeManager computes the budget for limits given the current
// history length and starts the clock.
func NewTimeManager(limits GoLimits, historyLen int) *TimeManager {
	return &TimeManager{
		start:  time.Now(),
		budget: Budget(limits, historyLen),
	}
}

// Elapsed returns the time since the search started.
func (tm *TimeManager) Elapsed() time.Duration {
	return time.Since(tm.start)
}

// ShouldStop reports whether the budget has been exceeded.
func (tm *TimeManager) ShouldStop() bool {
	return tm.Elapsed() >= tm.budget
}

// Budget reports the computed budget.
func (tm *TimeManager) Budget() time.Duration {
	return tm.budget
}
