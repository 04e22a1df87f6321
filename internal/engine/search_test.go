package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colding10/finch/internal/board"
)

// applyUCI mirrors coordinates when it is black's turn to move, exactly
// as the UCI boundary does before calling Position.Move, then applies
// the move to the last position in history.
func applyUCI(pos board.Position, historyLen int, from, to board.Square, promotion board.Piece) board.Position {
	if historyLen%2 == 0 {
		from, to = from.Flip(), to.Flip()
	}
	return pos.Move(board.Move{From: from, To: to, Promotion: promotion})
}

func mustSquare(t *testing.T, s string) board.Square {
	t.Helper()
	sq, err := board.ParseSquare(s)
	require.NoError(t, err)
	return sq
}

func TestBoundWithinMateBounds(t *testing.T) {
	s := NewSearcher(1, 1<<12)
	pos := board.Start()
	score := s.Bound(pos, 0, 3, false)
	assert.GreaterOrEqual(t, score, -board.MateUpper)
	assert.LessOrEqual(t, score, board.MateUpper)
}

func TestBoundMonotoneInGamma(t *testing.T) {
	pos := board.Start()
	lo := NewSearcher(1, 1<<12).Bound(pos, -board.MateUpper, 2, false)
	hi := NewSearcher(1, 1<<12).Bound(pos, board.MateUpper, 2, false)
	assert.LessOrEqual(t, lo, hi)
}

func TestRepetitionScoresZero(t *testing.T) {
	s := NewSearcher(1, 1<<12)
	pos := board.Start()
	// A position repeated in history scores exactly 0 at depth > 0 when
	// can_null is enabled, regardless of material.
	s.History = []board.Position{pos, pos.Rotate(true), pos}
	score := s.Bound(pos, 1, 2, true)
	assert.Equal(t, 0, score)
}

func TestMateInOneFromOpeningBlunder(t *testing.T) {
	history := []board.Position{board.Start()}
	moves := [][2]string{{"f2", "f3"}, {"e7", "e5"}, {"g2", "g4"}}
	for _, mv := range moves {
		from := mustSquare(t, mv[0])
		to := mustSquare(t, mv[1])
		next := applyUCI(history[len(history)-1], len(history), from, to, 0)
		history = append(history, next)
	}

	s := NewSearcher(4, 1<<14)
	best := s.Deepen(history, 3, nil, nil)
	require.NotEqual(t, board.NullMove, best)

	from, to := best.From, best.To
	if len(history)%2 == 0 {
		from, to = from.Flip(), to.Flip()
	}
	assert.Equal(t, "d8", from.String())
	assert.Equal(t, "h4", to.String())
}

func TestDeepenStopsImmediatelyWhenAlreadyStopped(t *testing.T) {
	s := NewSearcher(1, 1<<12)
	history := []board.Position{board.Start()}
	best := s.Deepen(history, 5, func() bool { return true }, nil)
	assert.Equal(t, board.NullMove, best)
}
