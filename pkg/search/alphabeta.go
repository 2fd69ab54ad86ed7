// Package search implements the depth-limited alpha-beta minimax searcher that drives move
// selection over a board.Position, using eval.Evaluate at the leaves.
package search

import (
	"github.com/dalequinn/octane/pkg/board"
	"github.com/dalequinn/octane/pkg/eval"
	"github.com/seekerror/stdlib/pkg/util/mathx"
)

// mateScore is the sentinel magnitude for a forced mate. It is offset by the remaining depth,
// which makes a mate found with more depth remaining (closer to the root) less attractive to
// the side being mated, so the mating side prefers the shortest mate available.
const mateScore = 100000

// Searcher is a depth-limited alpha-beta minimax searcher. White is the maximizing player
// and Black the minimizing player: the evaluator's White-positive sign convention is honored
// directly, not via a NegaMax reformulation. It carries only per-invocation counters; all
// mutable state lives in the board.Position it is given.
type Searcher struct {
	// Nodes is the number of nodes below the root, interior and leaf alike, visited during
	// the most recent FindBestMove call. Diagnostic only.
	Nodes uint64
}

// FindBestMove selects a root move by alpha-beta minimax to the given depth. If pos has no
// legal move, it returns the null move; the caller must distinguish checkmate from stalemate
// separately via pos.IsInCheck. The root never prunes, so a best move is always recorded
// even when every child evaluates to the same score.
func (s *Searcher) FindBestMove(pos *board.Position, depth int) board.Move {
	s.Nodes = 0

	moves := pos.GenerateLegalMoves()
	if len(moves) == 0 {
		return board.NullMove
	}

	maximizing := pos.Turn() == board.White
	best := moves[0]
	bestValue := eval.Score(-mathsInf)
	if !maximizing {
		bestValue = eval.Score(mathsInf)
	}
	alpha, beta := eval.Score(-mathsInf), eval.Score(mathsInf)

	for _, m := range moves {
		pos.Make(m)
		value := s.alphaBeta(pos, depth-1, alpha, beta, !maximizing)
		pos.Unmake(m)

		if maximizing {
			if value > bestValue {
				bestValue = value
				best = m
			}
			alpha = mathx.Max(alpha, bestValue)
		} else {
			if value < bestValue {
				bestValue = value
				best = m
			}
			beta = mathx.Min(beta, bestValue)
		}
	}
	return best
}

// mathsInf is a magnitude safely larger than any real evaluation or mate score, used as the
// root's open alpha/beta bound.
const mathsInf = 1 << 30

// alphaBeta returns the minimax value of pos to the given depth from the side-to-move
// implied by maximizing.
func (s *Searcher) alphaBeta(pos *board.Position, depth int, alpha, beta eval.Score, maximizing bool) eval.Score {
	s.Nodes++

	if depth == 0 {
		return eval.Evaluate(pos)
	}

	moves := pos.GenerateLegalMoves()
	if len(moves) == 0 {
		if pos.IsInCheck(pos.Turn()) {
			if maximizing {
				return eval.Score(-mateScore - depth)
			}
			return eval.Score(mateScore + depth)
		}
		return 0
	}

	if maximizing {
		value := eval.Score(-mathsInf)
		for _, m := range moves {
			pos.Make(m)
			child := s.alphaBeta(pos, depth-1, alpha, beta, false)
			pos.Unmake(m)

			value = mathx.Max(value, child)
			alpha = mathx.Max(alpha, value)
			if alpha >= beta {
				break
			}
		}
		return value
	}

	value := eval.Score(mathsInf)
	for _, m := range moves {
		pos.Make(m)
		child := s.alphaBeta(pos, depth-1, alpha, beta, true)
		pos.Unmake(m)

		value = mathx.Min(value, child)
		beta = mathx.Min(beta, value)
		if beta <= alpha {
			break
		}
	}
	return value
}
