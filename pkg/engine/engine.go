// Package engine implements a depth-limited minimax search with alpha-beta
// pruning over a position supplied by the rules package. The search is
// single-threaded and runs every requested depth to completion; White is
// always the maximizing side and scores are absolute, never side-relative.
package engine

import (
	"time"

	chess "github.com/notnil/chess"
	"github.com/rs/zerolog/log"

	"muninn/pkg/rules"
)

// Result is the outcome of a root search. Move is nil when the root
// position has no legal moves; the score is then -Infinity with White to
// move and +Infinity with Black to move.
type Result struct {
	Move  *chess.Move
	Score int
}

// DepthReport records the diagnostics of one completed iterative-deepening
// pass. It is an observation channel only; nothing in the search reads it.
type DepthReport struct {
	Depth   int
	Move    *chess.Move
	Score   int
	Nodes   uint64
	Elapsed time.Duration
}

// Engine searches one shared board. It holds no state across top-level
// searches beyond the node counter and the per-depth reports, both of which
// reset when a new search starts.
type Engine struct {
	board   *rules.Board
	eval    *Evaluator
	orderer *Orderer
	nodes   uint64
	reports []DepthReport
}

// New returns an Engine searching b with the default weights.
func New(b *rules.Board) *Engine {
	return NewWithWeights(b, DefaultWeights())
}

// NewWithWeights returns an Engine searching b with the given weights.
func NewWithWeights(b *rules.Board, w Weights) *Engine {
	return &Engine{
		board:   b,
		eval:    NewEvaluator(w),
		orderer: NewOrderer(w),
	}
}

// Nodes returns the number of nodes visited by the most recent search.
func (e *Engine) Nodes() uint64 {
	return e.nodes
}

// Reports returns the per-depth diagnostics of the most recent iterative
// search, shallowest first.
func (e *Engine) Reports() []DepthReport {
	return e.reports
}

// MinimaxPruning searches the current position to the given remaining depth
// inside the [alpha, beta] window and returns its minimax score. Every move
// applied on the way down is undone before the frame returns, cutoff or
// not, so siblings always see the position they started from.
func (e *Engine) MinimaxPruning(depth, alpha, beta int, maximizing bool) int {
	e.nodes++
	if depth == 0 || e.board.IsTerminal() {
		return e.eval.Evaluate(e.board)
	}
	if maximizing {
		best := -Infinity
		for _, mv := range e.orderer.Order(e.board) {
			e.board.Push(mv)
			score := e.MinimaxPruning(depth-1, alpha, beta, false)
			e.board.Pop()
			best = imax(best, score)
			alpha = imax(alpha, score)
			if beta <= alpha {
				break
			}
		}
		return best
	}
	best := Infinity
	for _, mv := range e.orderer.Order(e.board) {
		e.board.Push(mv)
		score := e.MinimaxPruning(depth-1, alpha, beta, true)
		e.board.Pop()
		best = imin(best, score)
		beta = imin(beta, score)
		if beta <= alpha {
			break
		}
	}
	return best
}

// FindBestMove runs one full-width pass over the root moves at the given
// depth and returns the best move with its score. The first ordered move is
// taken as the provisional best, so a legal move is always returned even if
// every line scores identically.
func (e *Engine) FindBestMove(depth int) Result {
	e.nodes = 0
	maximizing := e.board.SideToMove() == chess.White

	moves := e.orderer.Order(e.board)
	if len(moves) == 0 {
		if maximizing {
			return Result{Score: -Infinity}
		}
		return Result{Score: Infinity}
	}

	alpha, beta := -Infinity, Infinity
	best := moves[0]
	bestScore := Infinity
	if maximizing {
		bestScore = -Infinity
	}
	for _, mv := range moves {
		e.board.Push(mv)
		score := e.MinimaxPruning(depth-1, alpha, beta, !maximizing)
		e.board.Pop()
		if maximizing {
			if score > bestScore {
				bestScore = score
				best = mv
			}
			alpha = imax(alpha, bestScore)
		} else {
			if score < bestScore {
				bestScore = score
				best = mv
			}
			beta = imin(beta, bestScore)
		}
	}
	return Result{Move: best, Score: bestScore}
}

// FindBestMoveIterative searches depth 1 through maxDepth in turn and
// returns the move chosen by the deepest completed pass. Each pass
// overwrites the running best move unconditionally and carries nothing over
// to the next depth, so the result matches a direct FindBestMove call at
// maxDepth.
func (e *Engine) FindBestMoveIterative(maxDepth int) *chess.Move {
	e.reports = e.reports[:0]
	var best *chess.Move
	for depth := 1; depth <= maxDepth; depth++ {
		start := time.Now()
		res := e.FindBestMove(depth)
		elapsed := time.Since(start)
		best = res.Move
		e.reports = append(e.reports, DepthReport{
			Depth:   depth,
			Move:    res.Move,
			Score:   res.Score,
			Nodes:   e.nodes,
			Elapsed: elapsed,
		})
		log.Info().Msgf("depth %d: %v score %v nodes %d in %v",
			depth, res.Move, res.Score, e.nodes, elapsed)
	}
	return best
}
