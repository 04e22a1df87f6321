package engine

import "github.com/colding10/finch/internal/board"

// Result is one streamed root-level outcome: a single MTD-bi probe at a
// given depth and gamma, with the score that probe returned and the
// root's killer move after it.
type Result struct {
	Depth int
	Gamma int
	Score int
	Move  board.Move
	Nodes uint64
}

// Search runs MTD-bi at a fixed depth against the position at the end
// of history, invoking yield for every converging (gamma, score, move)
// triple. history is also installed as the searcher's repetition
// history for the duration of the call. stop is polled between yields
// so an in-flight search can be abandoned without finishing the window.
func (s *Searcher) Search(history []board.Position, depth int, stop func() bool, yield func(gamma, score int, move board.Move)) {
	s.History = history
	pos := history[len(history)-1]

	lower, upper := -board.MateLower, board.MateLower
	gamma := 0
	for lower < upper-EvalRoughness {
		if stop != nil && stop() {
			return
		}
		score := s.Bound(pos, gamma, depth, false)
		if score >= gamma {
			lower = score
		}
		if score < gamma {
			upper = score
		}
		yield(gamma, score, s.Killer.Get(pos.Hash))
		gamma = (lower + upper + 1) / 2
	}
}

// Deepen iterates Search at depth = 1, 2, ... forwarding every result to
// onResult, until stop reports true or maxDepth is reached (maxDepth ==
// 0 means unbounded — "infinite" mode relies entirely on stop). It
// returns the move from the final result of the deepest depth whose
// final result carried a non-null move (a depth cut short by stop
// counts), or the null move if there is none.
func (s *Searcher) Deepen(history []board.Position, maxDepth int, stop func() bool, onResult func(Result)) board.Move {
	var best board.Move
	for depth := 1; maxDepth == 0 || depth <= maxDepth; depth++ {
		if stop != nil && stop() {
			break
		}
		var last Result
		haveResult := false
		s.Search(history, depth, stop, func(gamma, score int, move board.Move) {
			last = Result{Depth: depth, Gamma: gamma, Score: score, Move: move, Nodes: s.Nodes}
			haveResult = true
			if onResult != nil {
				onResult(last)
			}
		})
		if haveResult && last.Move != board.NullMove {
			best = last.Move
		}
		if stop != nil && stop() {
			break
		}
	}
	return best
}
