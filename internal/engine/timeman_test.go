package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBudgetUsesMoveTimeDirectly(t *testing.T) {
	got := Budget(GoLimits{MoveTime: 250 * time.Millisecond}, 1)
	assert.Equal(t, 250*time.Millisecond, got)
}

func TestBudgetPicksClockBySideToMove(t *testing.T) {
	limits := GoLimits{
		WTime: 40 * time.Second, WInc: time.Second,
		BTime: 10 * time.Second, BInc: 0,
	}
	// history length 1 (odd): white to move, white's clock applies.
	white := Budget(limits, 1)
	// history length 2 (even): black to move, black's clock applies.
	black := Budget(limits, 2)
	assert.Greater(t, white, black)
}

func TestBudgetFormula(t *testing.T) {
	limits := GoLimits{WTime: 40 * time.Second, WInc: 500 * time.Millisecond}
	think := limits.WTime/40 + limits.WInc
	if alt := limits.WTime/2 - time.Millisecond; alt < think {
		think = alt
	}
	want := think * 8 / 10
	assert.Equal(t, want, Budget(limits, 1))
}

func TestBudgetDefaultsWhenTimeMissing(t *testing.T) {
	assert.Equal(t, time.Second, Budget(GoLimits{}, 1))
}

func TestTimeManagerShouldStop(t *testing.T) {
	tm := NewTimeManager(GoLimits{MoveTime: 1 * time.Millisecond}, 1)
	time.Sleep(5 * time.Millisecond)
	assert.True(t, tm.ShouldStop())
}
