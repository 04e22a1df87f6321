package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/colding10/finch/internal/board"
)

func TestScoreTableMissReturnsFullWindow(t *testing.T) {
	tbl := NewScoreTable(1)
	lower, upper := tbl.Get(0xdeadbeef, 4, true)
	assert.Equal(t, -board.MateUpper, lower)
	assert.Equal(t, board.MateUpper, upper)
}

func TestScoreTableSetThenGet(t *testing.T) {
	tbl := NewScoreTable(1)
	tbl.Set(42, 3, true, 10, 20)
	lower, upper := tbl.Get(42, 3, true)
	assert.Equal(t, 10, lower)
	assert.Equal(t, 20, upper)

	// A different depth at the same hash is a distinct key.
	lower, upper = tbl.Get(42, 4, true)
	assert.Equal(t, -board.MateUpper, lower)
	assert.Equal(t, board.MateUpper, upper)
}

func TestScoreTableClear(t *testing.T) {
	tbl := NewScoreTable(1)
	tbl.Set(1, 1, false, 5, 5)
	tbl.Clear()
	lower, upper := tbl.Get(1, 1, false)
	assert.Equal(t, -board.MateUpper, lower)
	assert.Equal(t, board.MateUpper, upper)
}

func TestKillerTableGetSetAndOverflowClear(t *testing.T) {
	k := NewKillerTable(2)
	assert.False(t, k.Has(1))

	m := board.Move{From: board.E1, To: board.E1 + board.North}
	k.Set(1, m)
	assert.True(t, k.Has(1))
	assert.Equal(t, m, k.Get(1))

	k.Set(2, m)
	k.Set(3, m)
	assert.True(t, k.Has(1)) // capacity 2 not yet exceeded (len == 2 before insert)

	k.Set(4, m) // len is 3 > capacity 2, clears before inserting
	assert.False(t, k.Has(1))
	assert.False(t, k.Has(3))
	assert.True(t, k.Has(4))
}
