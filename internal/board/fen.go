package board

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ParseFEN parses Forsyth-Edwards Notation into a Position. Board,
// side-to-move, castling rights and the en-passant square are honored;
// halfmove/fullmove counters are accepted but not retained, since the
// search's repetition detection works from position history rather than
// a move counter.
//
// spec.md allows position fen to be stubbed; it is kept here because the
// teacher already carries a correct FEN board parser and wiring it up
// costs little.
func ParseFEN(fen string) (Position, error) {
	fields := strings.Fields(fen)
	if len(fields) < 1 {
		return Position{}, errors.New("board: empty FEN")
	}
	rows := strings.Split(fields[0], "/")
	if len(rows) != 8 {
		return Position{}, errors.New("board: FEN must have 8 ranks")
	}

	var b Board
	for i := range b {
		b[i] = ' '
	}
	for r, row := range rows {
		index := r*10 + 21
		for _, c := range row {
			if index > r*10+28 {
				return Position{}, errors.New("board: invalid FEN rank length")
			}
			switch {
			case c >= '1' && c <= '8':
				n, _ := strconv.Atoi(string(c))
				for k := 0; k < n; k++ {
					b[index] = '.'
					index++
				}
			default:
				p := Piece(c)
				if pieceValue(p) == 0 && pieceValue(p.Flip()) == 0 {
					return Position{}, fmt.Errorf("board: invalid FEN piece %q", c)
				}
				b[index] = p
				index++
			}
		}
		if index%10 != 9 {
			return Position{}, errors.New("board: invalid FEN rank length")
		}
	}

	blackToMove := len(fields) > 1 && fields[1] == "b"

	var wc, bc [2]bool
	if len(fields) > 2 && fields[2] != "-" {
		for _, c := range fields[2] {
			switch c {
			case 'K':
				wc[0] = true
			case 'Q':
				wc[1] = true
			case 'k':
				bc[0] = true
			case 'q':
				bc[1] = true
			}
		}
	}

	var ep Square
	if len(fields) > 3 && fields[3] != "-" {
		sq, err := ParseSquare(fields[3])
		if err != nil {
			return Position{}, err
		}
		ep = sq
	}

	pos := Position{Board: b, WC: wc, BC: bc, EP: ep}
	if blackToMove {
		pos.Board = b.Rotate()
		pos.WC, pos.BC = bc, wc
		pos.EP = mirror(ep)
	}
	pos.Score = pos.computeScore()
	pos.Hash = pos.computeHash()
	return pos, nil
}
