// Package console implements an interactive command-line front end for debugging and casual
// play: board printing, an evaluation bar, and a prompt loop. Like pkg/engine/uci, it is an
// external collaborator with respect to the rules/eval/search core.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dalequinn/octane/pkg/board"
	"github.com/dalequinn/octane/pkg/engine"
	"github.com/seekerror/logw"
)

const ProtocolName = "console"

const (
	defaultDepth = 4
	evalBarWidth = 40
	// evalBarRange is the centipawn magnitude that fills one end of the bar.
	evalBarRange = 1000
)

// Driver runs an interactive read-eval-print loop against an Engine.
type Driver struct {
	e     *engine.Engine
	depth int
}

func NewDriver(e *engine.Engine) *Driver {
	return &Driver{e: e, depth: defaultDepth}
}

// Run reads commands from scanner and writes output to out until "quit"/"exit" or EOF. The
// caller owns scanner, so that the line used to select this protocol (and only that line) is
// consumed before Run is called.
func (d *Driver) Run(ctx context.Context, scanner *bufio.Scanner, out io.Writer) {
	logw.Infof(ctx, "console protocol initialized")

	fmt.Fprintf(out, "engine %v (%v)\n", d.e.Name(), d.e.Author())
	d.printBoard(out)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		cmd, args := strings.ToLower(fields[0]), fields[1:]

		switch cmd {
		case "reset", "r":
			d.e.Reset(ctx)
			d.printBoard(out)

		case "print", "p":
			d.printBoard(out)

		case "depth", "d":
			if len(args) > 0 {
				if v, err := strconv.Atoi(args[0]); err == nil {
					d.depth = v
				}
			}

		case "go", "think", "g":
			best, nodes := d.e.FindBestMove(d.depth)
			if best.IsNull() {
				fmt.Fprintln(out, "no legal move (checkmate or stalemate)")
				break
			}
			fmt.Fprintf(out, "bestmove %v (nodes=%v)\n", best, nodes)

		case "quit", "exit", "q":
			logw.Infof(ctx, "console driver exiting")
			return

		default:
			// Assume the token is a move in pure algebraic coordinate notation.
			if d.e.Move(ctx, cmd) {
				d.printBoard(out)
			} else {
				fmt.Fprintf(out, "invalid move: %q\n", cmd)
			}
		}
	}
}

const (
	files      = "    a   b   c   d   e   f   g   h"
	horizontal = "  ---------------------------------"
	vertical   = " | "
)

func (d *Driver) printBoard(out io.Writer) {
	pos := d.e.Position()

	fmt.Fprintln(out)
	fmt.Fprintln(out, files)
	fmt.Fprintln(out, horizontal)

	for rank := 7; rank >= 0; rank-- {
		var sb strings.Builder
		sb.WriteString(strconv.Itoa(rank + 1))
		sb.WriteString(vertical)
		for file := 0; file < 8; file++ {
			sb.WriteString(pos.PieceAt(board.NewSquare(rank, file)).String())
			sb.WriteString(vertical)
		}
		fmt.Fprintln(out, sb.String())
		fmt.Fprintln(out, horizontal)
	}
	fmt.Fprintln(out, files)
	fmt.Fprintln(out)

	fmt.Fprintf(out, "turn: %v   castling: %v   ep: %v\n", pos.Turn(), pos.Castling(), pos.EnPassant())
	fmt.Fprintln(out, d.evalBar())
}

// evalBar renders the static evaluation as a one-line bar: a filled run grows from the centre
// to the right with White's advantage, and to the left with Black's, clamped to
// +/- evalBarRange.
func (d *Driver) evalBar() string {
	score := int(d.e.Evaluate())
	if score > evalBarRange {
		score = evalBarRange
	}
	if score < -evalBarRange {
		score = -evalBarRange
	}

	mid := evalBarWidth / 2
	fill := score * mid / evalBarRange

	var sb strings.Builder
	sb.WriteString("[")
	for i := -mid; i < mid; i++ {
		switch {
		case fill >= 0 && i >= 0 && i < fill:
			sb.WriteByte('#')
		case fill < 0 && i < 0 && i >= fill:
			sb.WriteByte('#')
		default:
			sb.WriteByte('-')
		}
	}
	sb.WriteString(fmt.Sprintf("] %.2f", float64(score)/100))
	return sb.String()
}
