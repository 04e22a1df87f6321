// Package board implements the 120-square padded mailbox representation,
// piece-square evaluation, and move generation described for the engine
// core: a 10x12 grid with sentinel borders, side-to-move pieces always
// uppercase, and a rotation trick that re-expresses every position from
// the perspective of whoever moves next.
package board

import "fmt"

// Piece is a single square's contents: an uppercase letter for a
// side-to-move piece, lowercase for the opponent's, '.' for empty and
// ' ' for the sentinel border.
type Piece byte

// Piece values in centipawns (midgame). King is large enough that losing
// it dwarfs any positional score, which is how checkmate is detected.
const (
	ValuePawn   = 100
	ValueKnight = 280
	ValueBishop = 320
	ValueRook   = 479
	ValueQueen  = 929
	ValueKing   = 60000
)

// MateLower/MateUpper bound the range of scores that represent mate-in-N
// rather than a positional evaluation.
const (
	MateLower = ValueKing - 10*ValueQueen
	MateUpper = ValueKing + 10*ValueQueen
)

func pieceValue(p Piece) int {
	switch p {
	case 'P':
		return ValuePawn
	case 'N':
		return ValueKnight
	case 'B':
		return ValueBishop
	case 'R':
		return ValueRook
	case 'Q':
		return ValueQueen
	case 'K':
		return ValueKing
	}
	return 0
}

// IsOwn reports whether p belongs to the side to move (an uppercase piece
// letter).
func (p Piece) IsOwn() bool { return pieceValue(p) > 0 }

// IsEnemy reports whether p belongs to the opponent (a lowercase piece
// letter).
func (p Piece) IsEnemy() bool { return p != '.' && p != ' ' && !p.IsOwn() }

// Flip returns p belonging to the other side: case is swapped, empty and
// sentinel squares are unaffected.
func (p Piece) Flip() Piece {
	switch {
	case p >= 'A' && p <= 'Z':
		return p + ('a' - 'A')
	case p >= 'a' && p <= 'z':
		return p - ('a' - 'A')
	default:
		return p
	}
}

// Square is an index into the 120-square board. A1..H1 occupy 91..98;
// A8..H8 occupy 21..28.
type Square int

// Board corners, used throughout move generation and castling.
const (
	A1 Square = 91
	B1 Square = 92
	C1 Square = 93
	D1 Square = 94
	E1 Square = 95
	F1 Square = 96
	G1 Square = 97
	H1 Square = 98
	A8 Square = 21
	H8 Square = 28
)

// Movement direction offsets on the 120-square grid.
const (
	North = -10
	East  = 1
	South = 10
	West  = -1
)

// mirror returns 119-s, the square reached by rotating the board end for
// end; the zero square (meaning "no square") mirrors to itself rather
// than to 119, matching the Position invariant that ep/kp are 0 when
// absent.
func mirror(s Square) Square {
	if s == 0 {
		return 0
	}
	return 119 - s
}

// Flip mirrors a square across the board's rotation: a1 <-> h8, e2 <-> d7,
// and so on. Used for coordinate mirroring at the UCI boundary and for
// piece-square lookups of the opponent's pieces.
func (s Square) Flip() Square { return 119 - s }

// String renders a playable square in algebraic notation, e.g. "e4".
// Behavior on sentinel squares is undefined by convention (not reached).
func (s Square) String() string {
	file := (s - A1) % 10
	if file < 0 {
		file += 10
	}
	rank := -floorDiv(int(s-A1), 10) + 1
	return fmt.Sprintf("%c%d", 'a'+byte(file), rank)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// ParseSquare parses algebraic notation ("a1".."h8") back to a Square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return 0, fmt.Errorf("board: invalid square %q", s)
	}
	file := s[0]
	rank := s[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return 0, fmt.Errorf("board: invalid square %q", s)
	}
	return A1 + Square(file-'a') - 10*Square(rank-'1'), nil
}

// Move is a single ply: a source and destination square, plus an
// optional uppercase promotion piece (one of NBRQ), zero otherwise.
type Move struct {
	From, To  Square
	Promotion Piece
}

// NullMove is the sentinel "no move" value used by the transposition
// table and by null-move search.
var NullMove = Move{}

// String renders a move in UCI's long algebraic form, e.g. "e2e4" or
// "e7e8q" for a promotion.
func (m Move) String() string {
	if m.Promotion == 0 {
		return m.From.String() + m.To.String()
	}
	return m.From.String() + m.To.String() + string(rune(m.Promotion + ('a' - 'A')))
}

// Board is the 120-square buffer. Index 0 and 119 and the outer
// rows/columns hold the sentinel ' '; the playable 8x8 area holds
// PNBRQKpnbrqk and '.'.
type Board [120]Piece

// initialBoard is the standard starting position laid out on the padded
// 120-square grid, exactly as spec.md describes it: two sentinel rows,
// the back ranks and pawn ranks, empty interior, sentinel rows again.
var initialBoard = func() Board {
	rows := [12]string{
		"          ",
		"          ",
		" rnbqkbnr ",
		" pppppppp ",
		" ........ ",
		" ........ ",
		" ........ ",
		" ........ ",
		" PPPPPPPP ",
		" RNBQKBNR ",
		"          ",
		"          ",
	}
	var b Board
	i := 0
	for _, row := range rows {
		for _, c := range []byte(row) {
			b[i] = Piece(c)
			i++
		}
	}
	return b
}()

// Rotate reverses the board byte-for-byte and swaps the case of every
// piece, re-expressing the position from the opponent's perspective.
func (b Board) Rotate() Board {
	var r Board
	for i := range b {
		r[i] = b[len(b)-1-i].Flip()
	}
	return r
}

// String renders the playable 8x8 area as 8 newline-separated ranks,
// rank 8 first, for debug printing.
func (b Board) String() string {
	s := make([]byte, 0, 8*9)
	for rank := 2; rank < 10; rank++ {
		for file := 1; file < 9; file++ {
			s = append(s, byte(b[rank*10+file]))
		}
		s = append(s, '\n')
	}
	return string(s)
}
