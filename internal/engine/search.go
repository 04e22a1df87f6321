package engine

import (
	"sort"

	"github.com/colding10/finch/internal/board"
)

// Tuning constants carried over from the Sunfish lineage: QS gates which
// captures quiescence still considers at the frontier, EvalRoughness
// controls how tight the MTD-bi window converges, and a null-move probe
// is attempted only when the remaining depth exceeds NullMoveDepth.
const (
	QS            = 40
	EvalRoughness = 20
	NullMoveDepth = 2
)

// Searcher holds the mutable state a single search shares across nodes:
// the two transposition tables, a node counter for UCI's "nodes"/"nps"
// fields, and the position history used for repetition detection.
type Searcher struct {
	Score   *ScoreTable
	Killer  *KillerTable
	Nodes   uint64
	History []board.Position
}

// NewSearcher allocates a Searcher with a scoreMB-sized score table and
// a killer table capped at killerCapacity entries.
func NewSearcher(scoreMB, killerCapacity int) *Searcher {
	return &Searcher{
		Score:  NewScoreTable(scoreMB),
		Killer: NewKillerTable(killerCapacity),
	}
}

func (s *Searcher) inHistory(pos board.Position) bool {
	for _, h := range s.History {
		if h.Hash == pos.Hash {
			return true
		}
	}
	return false
}

type scoredMove struct {
	value int
	move  board.Move
}

// Bound is the fail-soft zero-window negamax search: it returns a score
// that is a verified lower bound when >= gamma and a verified upper
// bound when < gamma. Move generation is organized into four phases —
// null-move, stand-pat, killer, main — each a block that performs its
// own cutoff check, per the staged-loop shape of the original
// generator-based search.
func (s *Searcher) Bound(pos board.Position, gamma, depth int, canNull bool) int {
	s.Nodes++
	if depth < 0 {
		depth = 0
	}

	if pos.Score <= -board.MateLower {
		return -board.MateUpper
	}

	lower, upper := s.Score.Get(pos.Hash, depth, canNull)
	if lower >= gamma {
		return lower
	}
	if upper < gamma {
		return upper
	}

	if canNull && depth > 0 && s.inHistory(pos) {
		return 0
	}

	best := -board.MateUpper
	cutoff := false

	record := func(move board.Move, score int) bool {
		if score > best {
			best = score
		}
		if best >= gamma {
			if move != board.NullMove {
				s.Killer.Set(pos.Hash, move)
			}
			cutoff = true
		}
		return cutoff
	}

	valLower := -board.MateLower
	if depth == 0 {
		valLower = QS
	}

	// A. Null-move pruning.
	if !cutoff && canNull && depth > NullMoveDepth && pos.HasMinorOrMajor() {
		score := -s.Bound(pos.Rotate(true), 1-gamma, depth-3, true)
		record(board.NullMove, score)
	}

	// B. Stand-pat.
	if !cutoff && depth == 0 {
		record(board.NullMove, pos.Score)
	}

	// C. Killer move, refreshed by a shallow internal search first.
	if !cutoff && s.Killer.Has(pos.Hash) && depth > 2 {
		s.Bound(pos, gamma, depth-3, false)
		killer := s.Killer.Get(pos.Hash)
		if pos.Value(killer) >= valLower {
			score := -s.Bound(pos.Move(killer), 1-gamma, depth-1, true)
			record(killer, score)
		}
	}

	// D. Main moves, sorted by descending static value.
	if !cutoff {
		moves := pos.GenMoves(false)
		ranked := make([]scoredMove, len(moves))
		for i, m := range moves {
			ranked[i] = scoredMove{pos.Value(m), m}
		}
		sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].value > ranked[j].value })

		for _, sm := range ranked {
			if sm.value < valLower {
				break
			}
			if depth <= 1 && pos.Score+sm.value < gamma {
				score := pos.Score + sm.value
				if sm.value >= board.MateLower {
					score = board.MateUpper
				}
				record(sm.move, score)
				break
			}
			score := -s.Bound(pos.Move(sm.move), 1-gamma, depth-1, true)
			if record(sm.move, score) {
				break
			}
		}
	}

	// Mate detection: no move beat -MATE_UPPER, so probe check directly.
	if depth > 0 && best == -board.MateUpper {
		inCheck := s.Bound(pos.Rotate(true), board.MateUpper, 0, true) == board.MateUpper
		if inCheck {
			best = -board.MateLower
		} else {
			best = 0
		}
	}

	if best >= gamma {
		s.Score.Set(pos.Hash, depth, canNull, best, upper)
	} else {
		s.Score.Set(pos.Hash, depth, canNull, lower, best)
	}
	return best
}
