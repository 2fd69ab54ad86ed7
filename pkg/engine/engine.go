// Package engine glues the rules engine, evaluator, and searcher together and exposes the
// consumer contract used by the CLI front end and the UCI adapter, both external
// collaborators with respect to the core.
package engine

import (
	"context"
	"fmt"

	"github.com/dalequinn/octane/pkg/board"
	"github.com/dalequinn/octane/pkg/eval"
	"github.com/dalequinn/octane/pkg/search"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
)

var version = build.NewVersion(1, 0, 0)

// Engine owns a single *board.Position and dispatches to the evaluator and searcher. It is
// not safe for concurrent use: Position.Make/Unmake are not re-entrant, matching the core's
// single-threaded, synchronous concurrency model.
type Engine struct {
	name, author string

	pos      *board.Position
	searcher search.Searcher

	// Debug enables move-application logging, the Go counterpart of the reference
	// engine's verbose flag.
	Debug bool
}

// New returns a new Engine set up at the standard starting position.
func New(name, author string) *Engine {
	return &Engine{
		name:   name,
		author: author,
		pos:    board.NewStandardPosition(),
	}
}

// Name returns the engine name and version, e.g. for the UCI "id name" response.
func (e *Engine) Name() string {
	return fmt.Sprintf("%v %v", e.name, version)
}

// Author returns the engine author, e.g. for the UCI "id author" response.
func (e *Engine) Author() string {
	return e.author
}

// Reset returns the engine to the standard starting position.
func (e *Engine) Reset(ctx context.Context) {
	e.pos = board.NewStandardPosition()
	logw.Infof(ctx, "position reset to standard start")
}

// Position returns the engine's current position.
func (e *Engine) Position() *board.Position {
	return e.pos
}

// Move applies a move given in pure algebraic coordinate notation, such as "e2e4" or
// "a7a8q". Returns false, leaving the position unchanged, for malformed input or a move
// that is not legal.
func (e *Engine) Move(ctx context.Context, uci string) bool {
	if len(uci) < 4 || len(uci) > 5 {
		return false
	}
	from := board.ParseSquare(uci[0:2])
	to := board.ParseSquare(uci[2:4])
	if from == board.NoSquare || to == board.NoSquare {
		return false
	}
	promo := board.NoPieceType
	if len(uci) == 5 {
		p, ok := board.ParsePromotionPiece(rune(uci[4]))
		if !ok {
			return false
		}
		promo = p
	}

	ok := e.pos.MakeUCI(from, to, promo)
	if e.Debug {
		logw.Debugf(ctx, "move %v: applied=%v turn=%v", uci, ok, e.pos.Turn())
	}
	return ok
}

// GenerateLegalMoves returns every legal move from the current position.
func (e *Engine) GenerateLegalMoves() []board.Move {
	return e.pos.GenerateLegalMoves()
}

// IsInCheck reports whether color's king is attacked in the current position.
func (e *Engine) IsInCheck(c board.Color) bool {
	return e.pos.IsInCheck(c)
}

// Evaluate returns the static centipawn evaluation of the current position.
func (e *Engine) Evaluate() eval.Score {
	return eval.Evaluate(e.pos)
}

// FindBestMove runs the alpha-beta searcher to the given depth and returns its chosen move,
// along with the number of nodes visited.
func (e *Engine) FindBestMove(depth int) (board.Move, uint64) {
	m := e.searcher.FindBestMove(e.pos, depth)
	return m, e.searcher.Nodes
}
