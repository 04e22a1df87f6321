package uci

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colding10/finch/internal/board"
	"github.com/colding10/finch/internal/engine"
)

func newTestShell() (*Shell, *bytes.Buffer) {
	out := &bytes.Buffer{}
	s := New(out, engine.NewSearcher(1, 1<<12), nil)
	return s, out
}

func TestHandshake(t *testing.T) {
	s, out := newTestShell()
	s.Run(strings.NewReader("uci\n"))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.GreaterOrEqual(t, len(lines), 3)
	assert.True(t, strings.HasPrefix(lines[0], "id name "))
	assert.Equal(t, "uciok", lines[len(lines)-1])
}

func TestIsReady(t *testing.T) {
	s, out := newTestShell()
	s.Run(strings.NewReader("isready\n"))
	assert.Equal(t, "readyok", strings.TrimSpace(out.String()))
}

func TestPositionStartposAppliesMoves(t *testing.T) {
	s, _ := newTestShell()
	s.Run(strings.NewReader("position startpos moves e2e4 e7e5\n"))
	require.Len(t, s.history, 3)
	assert.NotEqual(t, board.Start(), s.history[2])
}

func TestPositionFenParsesAndMirrorsForBlack(t *testing.T) {
	s, _ := newTestShell()
	s.Run(strings.NewReader("position fen rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR b KQkq - 0 1\n"))
	require.Len(t, s.history, 1)
	assert.Equal(t, board.Start().Board.Rotate(), s.history[0].Board)
}

func TestUnknownCommandIsIgnored(t *testing.T) {
	s, out := newTestShell()
	s.Run(strings.NewReader("frobnicate\nisready\n"))
	assert.Equal(t, "readyok", strings.TrimSpace(out.String()))
}

func TestParseMoveMirrorsForBlackToMove(t *testing.T) {
	m, ok := parseMove("e2e4", 1)
	require.True(t, ok)
	assert.Equal(t, "e2e4", m.String())

	mirrored, ok := parseMove("e2e4", 2)
	require.True(t, ok)
	assert.NotEqual(t, m, mirrored)
}

func TestParseMoveRejectsGarbage(t *testing.T) {
	_, ok := parseMove("zz", 1)
	assert.False(t, ok)
}

func TestRenderMoveRoundTripsThroughMirror(t *testing.T) {
	m, ok := parseMove("e2e4", 1)
	require.True(t, ok)
	assert.Equal(t, "e2e4", renderMove(m, 2))
}

func TestRenderNullMoveIsNone(t *testing.T) {
	assert.Equal(t, "(none)", renderMove(board.NullMove, 1))
}

func TestGoWithMoveTimeEmitsBestmove(t *testing.T) {
	s, out := newTestShell()
	s.Run(strings.NewReader("position startpos\ngo movetime 50\n"))
	s.handleStop()
	assert.Contains(t, out.String(), "bestmove ")
}

func TestStopWithoutSearchIsNoop(t *testing.T) {
	s, _ := newTestShell()
	s.handleStop()
}

func TestUCINewGameClearsHistoryAndTables(t *testing.T) {
	s, _ := newTestShell()
	s.searcher.Score.Set(1, 1, false, 5, 5)
	s.searcher.Killer.Set(1, board.Move{From: board.E1, To: board.E1 + board.North})
	s.Run(strings.NewReader("position startpos moves e2e4\nucinewgame\n"))
	require.Len(t, s.history, 1)
	assert.Equal(t, board.Start(), s.history[0])
	lower, _ := s.searcher.Score.Get(1, 1, false)
	assert.Equal(t, -board.MateUpper, lower)
	assert.False(t, s.searcher.Killer.Has(1))
}

func TestDebugCommandPrintsBoard(t *testing.T) {
	s, out := newTestShell()
	s.Run(strings.NewReader("d\n"))
	assert.NotEmpty(t, strings.TrimSpace(out.String()))
}
