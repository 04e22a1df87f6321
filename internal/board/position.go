package board

// pieceDirections enumerates the base step directions searched from a
// square holding each piece type. Sliding pieces (B, R, Q) walk a
// direction repeatedly; N, K and P take a single step per direction
// (P's "step" entries are overloaded below to also cover its two-square
// opening push and its diagonal captures).
var pieceDirections = map[Piece][]Square{
	'P': {North, North + North, North + West, North + East},
	'N': {North + North + East, East + North + East, East + South + East, South + South + East,
		South + South + West, West + South + West, West + North + West, North + North + West},
	'B': {North + East, South + East, South + West, North + West},
	'R': {North, East, South, West},
	'Q': {North, East, South, West, North + East, South + East, South + West, North + West},
	'K': {North, East, South, West, North + East, South + East, South + West, North + West},
}

var promotionPieces = []Piece{'N', 'B', 'R', 'Q'}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Position is an immutable snapshot of a board plus the state needed to
// continue the game from it: incremental score, castling rights, and the
// en-passant/king-passant squares. Every operation that advances the
// game (Move, Rotate) returns a new Position rather than mutating the
// receiver.
type Position struct {
	Board Board
	Score int
	// WC is the side-to-move's castling rights, (kingside, queenside).
	WC [2]bool
	// BC is the opponent's castling rights, named from the side-to-move's
	// point of view; the two pairs swap on Rotate.
	BC [2]bool
	EP Square
	KP Square
	// Hash is the Zobrist key of (Board, WC, BC, EP, KP), kept current by
	// every constructor below.
	Hash uint64
}

// Start returns the standard initial position, white to move.
func Start() Position {
	pos := Position{
		Board: initialBoard,
		WC:    [2]bool{true, true},
		BC:    [2]bool{true, true},
	}
	pos.Score = pos.computeScore()
	pos.Hash = pos.computeHash()
	return pos
}

func (pos Position) computeScore() int {
	score := 0
	for sq, p := range pos.Board {
		switch {
		case p.IsOwn():
			score += PST(p, Square(sq))
		case p.IsEnemy():
			score -= PST(p.Flip(), Square(sq).Flip())
		}
	}
	return score
}

// Rotate re-expresses pos from the opponent's perspective: the board is
// reversed and case-swapped, score negated, castling rights swapped, and
// ep/kp mirrored. When called with nullmove=true (the side to move
// passes rather than playing a move), ep/kp are discarded instead of
// mirrored, since a pass cannot leave a live en-passant or king-passant
// square for the opponent to exploit.
func (pos Position) Rotate(nullmove bool) Position {
	np := Position{
		Board: pos.Board.Rotate(),
		Score: -pos.Score,
		WC:    pos.BC,
		BC:    pos.WC,
	}
	if nullmove {
		np.EP = 0
		np.KP = 0
	} else {
		np.EP = mirror(pos.EP)
		np.KP = mirror(pos.KP)
	}
	np.Hash = np.computeHash()
	return np
}

// GenMoves returns every pseudo-legal move for the side to move. When
// legal is true, moves that leave the side-to-move's king capturable on
// the reply are filtered out; the search itself never needs this (it
// prunes on king capture directly). The UCI shell applies incoming moves
// without consulting this filter.
func (pos Position) GenMoves(legal bool) []Move {
	var moves []Move
	for index := 0; index < len(pos.Board); index++ {
		p := pos.Board[index]
		if !p.IsOwn() {
			continue
		}
		i := Square(index)
		for _, d := range pieceDirections[p] {
			for j := i + d; ; j += d {
				q := pos.Board[j]
				if q == ' ' || (q != '.' && q.IsOwn()) {
					break
				}
				if p == 'P' {
					if (d == North || d == North+North) && q != '.' {
						break
					}
					if d == North+North && (i < A1+North || pos.Board[i+North] != '.') {
						break
					}
					if (d == North+West || d == North+East) && q == '.' &&
						j != pos.EP && j != pos.KP && j != pos.KP-1 && j != pos.KP+1 {
						break
					}
				}
				if p == 'P' && j >= A8 && j <= H8 {
					for _, promo := range promotionPieces {
						moves = append(moves, Move{From: i, To: j, Promotion: promo})
					}
				} else {
					moves = append(moves, Move{From: i, To: j})
				}
				if p == 'P' || p == 'N' || p == 'K' || (q != ' ' && q != '.' && !q.IsOwn()) {
					break
				}
			}
		}
	}
	moves = append(moves, pos.castlingMoves()...)
	if legal {
		moves = pos.filterLegal(moves)
	}
	return moves
}

// LegalMoves is GenMoves(true): the move list with king-capturable
// replies filtered out. The search core calls GenMoves
// directly and relies on king-capture pruning instead.
func (pos Position) LegalMoves() []Move {
	return pos.GenMoves(true)
}

// castlingMoves emits E1->G1 (kingside, wc[0]) when F1/G1 are empty and
// an R sits on H1, and E1->C1 (queenside, wc[1]) when D1/C1/B1 are empty
// and an R sits on A1.
func (pos Position) castlingMoves() []Move {
	var moves []Move
	if pos.Board[E1] != 'K' {
		return moves
	}
	if pos.WC[0] && pos.Board[F1] == '.' && pos.Board[G1] == '.' && pos.Board[H1] == 'R' {
		moves = append(moves, Move{From: E1, To: G1})
	}
	if pos.WC[1] && pos.Board[D1] == '.' && pos.Board[C1] == '.' && pos.Board[B1] == '.' && pos.Board[A1] == 'R' {
		moves = append(moves, Move{From: E1, To: C1})
	}
	return moves
}

func (pos Position) filterLegal(moves []Move) []Move {
	out := make([]Move, 0, len(moves))
	for _, m := range moves {
		if !pos.Move(m).KingCapturable() {
			out = append(out, m)
		}
	}
	return out
}

// KingCapturable reports whether the side to move in pos has a move
// that captures the opponent's king (rendered lowercase 'k' on pos's
// board). Called on the position just after a move, from the mover's
// point of view this answers "did that move leave my king capturable?"
func (pos Position) KingCapturable() bool {
	for _, m := range pos.GenMoves(false) {
		if pos.Board[m.To] == 'k' {
			return true
		}
	}
	return false
}

// HasMinorOrMajor reports whether the side to move has at least one
// rook, bishop, knight or queen on the board — the null-move pruning
// precondition that guards against zugzwang-prone king-and-pawn endings.
func (pos Position) HasMinorOrMajor() bool {
	for _, p := range pos.Board {
		switch p {
		case 'R', 'B', 'N', 'Q':
			return true
		}
	}
	return false
}

// Value returns the incremental evaluation delta of applying m, without
// constructing the successor position.
func (pos Position) Value(m Move) int {
	i, j := m.From, m.To
	p, q := pos.Board[i], pos.Board[j]
	score := PST(p, j) - PST(p, i)

	if q.IsEnemy() {
		score += PST(q.Flip(), j.Flip())
	}
	// Captures the square the king crossed while castling through check.
	if abs(int(j-pos.KP)) < 2 {
		score += PST('K', j.Flip())
	}
	if p == 'K' && abs(int(i-j)) == 2 {
		score += PST('R', Square((int(i)+int(j))/2))
		if j < i {
			score -= PST('R', A1)
		} else {
			score -= PST('R', H1)
		}
	}
	if p == 'P' {
		if j >= A8 && j <= H8 {
			promo := m.Promotion
			if promo == 0 {
				promo = 'Q'
			}
			score += PST(promo, j) - PST('P', j)
		}
		if j == pos.EP {
			score += PST('P', (j + South).Flip())
		}
	}
	return score
}

// Move applies m and returns the successor, already rotated into the
// opponent's orientation.
func (pos Position) Move(m Move) Position {
	i, j := m.From, m.To
	p := pos.Board[i]

	np := pos
	np.EP = 0
	np.KP = 0
	np.Score = pos.Score + pos.Value(m)
	np.Board[j] = pos.Board[i]
	np.Board[i] = '.'

	if i == A1 {
		np.WC[1] = false
	}
	if i == H1 {
		np.WC[0] = false
	}
	if j == A8 {
		np.BC[0] = false
	}
	if j == H8 {
		np.BC[1] = false
	}

	if p == 'K' {
		np.WC[0], np.WC[1] = false, false
		if abs(int(j-i)) == 2 {
			np.KP = Square((int(i) + int(j)) / 2)
			if j < i {
				np.Board[A1] = '.'
			} else {
				np.Board[H1] = '.'
			}
			np.Board[np.KP] = 'R'
		}
	}

	if p == 'P' {
		if j >= A8 && j <= H8 {
			promo := m.Promotion
			if promo == 0 {
				promo = 'Q'
			}
			np.Board[j] = promo
		}
		if j-i == 2*North {
			np.EP = i + North
		}
		if j == pos.EP {
			np.Board[j+South] = '.'
		}
	}

	return np.Rotate(false)
}
