package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSquareRoundTrip(t *testing.T) {
	for file := byte('a'); file <= 'h'; file++ {
		for rank := byte('1'); rank <= '8'; rank++ {
			s := string([]byte{file, rank})
			sq, err := ParseSquare(s)
			require.NoError(t, err)
			assert.Equal(t, s, sq.String())
		}
	}
}

func TestParseSquareRejectsGarbage(t *testing.T) {
	for _, s := range []string{"", "a", "i1", "a9", "a0", "abc"} {
		_, err := ParseSquare(s)
		assert.Errorf(t, err, "expected error for %q", s)
	}
}

func TestPieceFlip(t *testing.T) {
	assert.Equal(t, Piece('p'), Piece('P').Flip())
	assert.Equal(t, Piece('P'), Piece('p').Flip())
	assert.Equal(t, Piece('.'), Piece('.').Flip())
	assert.Equal(t, Piece(' '), Piece(' ').Flip())
}

func TestBoardRotateInvolution(t *testing.T) {
	r := initialBoard.Rotate().Rotate()
	assert.Equal(t, initialBoard, r)
}

func TestMoveString(t *testing.T) {
	m := Move{From: E1, To: E1 + North + North}
	assert.Equal(t, "e1e3", m.String())

	promo := Move{From: A1, To: A1 + North, Promotion: 'Q'}
	assert.Equal(t, "a1a2q", promo.String())
}

func TestMirrorZeroIsFixedPoint(t *testing.T) {
	assert.Equal(t, Square(0), mirror(0))
	assert.Equal(t, Square(119)-E1, mirror(E1))
}
