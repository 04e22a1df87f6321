// Package uci implements the UCI shell: a line-oriented command loop over
// standard input/output that drives the iterative deepener and renders its
// results as "info"/"bestmove" lines, per spec.md §4.4, §5, §6.
package uci

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/op/go-logging"

	"github.com/colding10/finch/internal/board"
	"github.com/colding10/finch/internal/engine"
	"github.com/colding10/finch/internal/store"
)

var log = logging.MustGetLogger("uci")

// Version and Author identify this engine in the "uci" handshake.
const (
	Version = "finch 0.1"
	Author  = "finch contributors"
)

// Shell holds everything one UCI session needs: the search state, the
// position history, and the single stop flag shared with a running search
// goroutine per spec.md §5's concurrency model.
type Shell struct {
	out io.Writer

	searcher *engine.Searcher
	persist  *store.Store

	history []board.Position

	stop      atomic.Bool
	searching atomic.Bool
	done      chan struct{}
}

// New builds a Shell around an already-constructed Searcher. persist may be
// nil, in which case the killer-move table is purely in-memory.
func New(out io.Writer, searcher *engine.Searcher, persist *store.Store) *Shell {
	return &Shell{
		out:      out,
		searcher: searcher,
		persist:  persist,
		history:  []board.Position{board.Start()},
	}
}

func (s *Shell) println(format string, args ...any) {
	fmt.Fprintf(s.out, format+"\n", args...)
}

// Run reads commands from in until "quit" or EOF, dispatching each line.
func (s *Shell) Run(in io.Reader) {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		cmd, args := fields[0], fields[1:]

		switch cmd {
		case "uci":
			s.handleUCI()
		case "isready":
			s.println("readyok")
		case "ucinewgame":
			s.handleNewGame()
		case "position":
			s.handlePosition(args)
		case "go":
			s.handleGo(args)
		case "stop":
			s.handleStop()
		case "quit":
			s.handleStop()
			s.persistKillers()
			return
		case "d":
			s.println("%s", s.history[len(s.history)-1].Board.String())
		default:
			log.Debugf("ignoring unknown command %q", cmd)
		}
	}
}

func (s *Shell) handleUCI() {
	s.println("id name %s", Version)
	s.println("id author %s", Author)
	s.println("uciok")
}

func (s *Shell) handleNewGame() {
	s.handleStop()
	s.history = []board.Position{board.Start()}
	s.searcher.Score.Clear()
	s.searcher.Killer.Clear()
}

// handlePosition implements "position startpos [moves ...]" and
// "position fen <FEN> [moves ...]". Each move is applied with the ply-based
// coordinate mirroring spec.md §6 requires: when it is black's turn to move
// (history length even), the incoming UCI square indices are mirrored via
// i' = 119-i before being handed to Position.Move, since Position itself is
// always expressed from the mover's perspective.
func (s *Shell) handlePosition(args []string) {
	if len(args) == 0 {
		return
	}

	idx := 1
	switch args[0] {
	case "startpos":
		s.history = []board.Position{board.Start()}
	case "fen":
		fenFields := []string{}
		for idx < len(args) && args[idx] != "moves" {
			fenFields = append(fenFields, args[idx])
			idx++
		}
		pos, err := board.ParseFEN(strings.Join(fenFields, " "))
		if err != nil {
			log.Errorf("bad fen: %v", err)
			return
		}
		s.history = []board.Position{pos}
	default:
		return
	}

	if idx < len(args) && args[idx] == "moves" {
		idx++
		for ; idx < len(args); idx++ {
			m, ok := parseMove(args[idx], len(s.history))
			if !ok {
				log.Warningf("ignoring unparsable move %q", args[idx])
				continue
			}
			last := s.history[len(s.history)-1]
			s.history = append(s.history, last.Move(m))
		}
	}
}

// parseMove decodes a UCI move string ("e2e4", "e7e8q") into a Move,
// mirroring coordinates when history length is even (black to move) per
// spec.md §6.
func parseMove(str string, historyLen int) (board.Move, bool) {
	if len(str) < 4 {
		return board.Move{}, false
	}
	from, err := board.ParseSquare(str[0:2])
	if err != nil {
		return board.Move{}, false
	}
	to, err := board.ParseSquare(str[2:4])
	if err != nil {
		return board.Move{}, false
	}
	var promotion board.Piece
	if len(str) > 4 {
		promotion = board.Piece(strings.ToUpper(str[4:5])[0])
	}
	if historyLen%2 == 0 {
		from, to = from.Flip(), to.Flip()
	}
	return board.Move{From: from, To: to, Promotion: promotion}, true
}

// renderMove formats an engine move for output, mirroring coordinates back
// when needed: for a move emitted at ply p (history length after the move
// equals p+1), p even means the position was mirrored on the way in, so the
// squares must be mirrored again on the way out.
func renderMove(m board.Move, historyLenAfter int) string {
	if m == board.NullMove {
		return "(none)"
	}
	from, to := m.From, m.To
	ply := historyLenAfter - 1
	if ply%2 == 0 {
		from, to = from.Flip(), to.Flip()
	}
	out := from.String() + to.String()
	if m.Promotion != 0 {
		out += strings.ToLower(string(rune(m.Promotion)))
	}
	return out
}

func (s *Shell) handleStop() {
	if s.searching.Load() {
		s.stop.Store(true)
		<-s.done
	}
}

// handleGo parses the go-command arguments into engine.GoLimits and spawns
// the iterative deepener on a goroutine, per spec.md §5: the command-reading
// loop signals the goroutine only through the stop flag, and the goroutine
// reports that it has finished by clearing searching and closing done.
func (s *Shell) handleGo(args []string) {
	s.handleStop()

	limits := parseGoLimits(args)
	historyLen := len(s.history)
	history := s.history

	s.stop.Store(false)
	s.searching.Store(true)
	s.done = make(chan struct{})

	go func() {
		defer close(s.done)
		defer s.searching.Store(false)

		tm := engine.NewTimeManager(limits, historyLen)
		stopFn := func() bool {
			return s.stop.Load() || (!limits.Infinite && tm.ShouldStop())
		}

		var lastResult engine.Result
		haveResult := false
		best := s.searcher.Deepen(history, limits.Depth, stopFn, func(r engine.Result) {
			lastResult = r
			haveResult = true
			s.emitInfo(r, tm.Elapsed(), historyLen)
		})

		if best == board.NullMove && haveResult {
			best = lastResult.Move
		}
		s.println("bestmove %s", renderMove(best, historyLen+1))
	}()
}

func (s *Shell) emitInfo(r engine.Result, elapsed time.Duration, historyLen int) {
	ms := elapsed.Milliseconds()
	nps := uint64(0)
	if elapsed > 0 {
		nps = uint64(float64(r.Nodes) / elapsed.Seconds())
	}
	s.println(
		"info depth %d score cp %d nodes %d nps %d hashfull %d time %d pv %s",
		r.Depth, r.Score, r.Nodes, nps, s.searcher.Score.PermillFull(), ms,
		renderMove(r.Move, historyLen+1),
	)
}

func (s *Shell) persistKillers() {
	if s.persist == nil {
		return
	}
	if err := s.persist.Save(s.searcher.Killer); err != nil {
		log.Errorf("failed to persist killer table: %v", err)
	}
}

// parseGoLimits turns the "go" command's arguments into GoLimits. Malformed
// or missing numeric fields are left at zero, which Budget treats as "use
// the default" per spec.md §7's error-handling policy.
func parseGoLimits(args []string) engine.GoLimits {
	var limits engine.GoLimits
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "wtime":
			i++
			limits.WTime = parseMillis(args, i)
		case "btime":
			i++
			limits.BTime = parseMillis(args, i)
		case "winc":
			i++
			limits.WInc = parseMillis(args, i)
		case "binc":
			i++
			limits.BInc = parseMillis(args, i)
		case "movetime":
			i++
			limits.MoveTime = parseMillis(args, i)
		case "depth":
			i++
			if i < len(args) {
				if d, err := strconv.Atoi(args[i]); err == nil {
					limits.Depth = d
				}
			}
		case "movestogo":
			i++
			if i < len(args) {
				if n, err := strconv.Atoi(args[i]); err == nil {
					limits.MovesToGo = n
				}
			}
		case "infinite":
			limits.Infinite = true
		}
	}
	return limits
}

func parseMillis(args []string, i int) time.Duration {
	if i >= len(args) {
		return 0
	}
	n, err := strconv.Atoi(args[i])
	if err != nil || n < 0 {
		return 0
	}
	return time.Duration(n) * time.Millisecond
}
