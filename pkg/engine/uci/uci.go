// Package uci contains a line-oriented driver for using the engine under the Universal Chess
// Interface protocol. It is an external collaborator of the core: it only translates
// UCI commands into Engine calls and is kept intentionally thin, since the core carries no
// time management, pondering, or multi-PV support (all explicit Non-goals).
//
// See: http://wbec-ridderkerk.nl/html/UCIProtocol.html
package uci

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dalequinn/octane/pkg/engine"
	"github.com/seekerror/logw"
)

const ProtocolName = "uci"

const defaultDepth = 4

// Driver drives an Engine from UCI commands read line-by-line. Run blocks until the input
// is exhausted or "quit" is received, matching the core's synchronous, non-reentrant model:
// there is no goroutine driving the engine concurrently with the caller.
type Driver struct {
	e     *engine.Engine
	depth int
}

func NewDriver(e *engine.Engine) *Driver {
	return &Driver{e: e, depth: defaultDepth}
}

// Run processes UCI commands from scanner, writing responses to out, until "quit" or EOF.
// The caller owns scanner, so that the line used to select this protocol (and only that
// line) is consumed before Run is called.
func (d *Driver) Run(ctx context.Context, scanner *bufio.Scanner, out io.Writer) {
	logw.Infof(ctx, "UCI protocol initialized")

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		cmd, args := fields[0], fields[1:]

		switch cmd {
		case "uci":
			fmt.Fprintf(out, "id name %v\n", d.e.Name())
			fmt.Fprintf(out, "id author %v\n", d.e.Author())
			fmt.Fprintln(out, "uciok")

		case "isready":
			fmt.Fprintln(out, "readyok")

		case "ucinewgame":
			d.e.Reset(ctx)

		case "position":
			d.position(ctx, args)

		case "go":
			d.goSearch(ctx, out, args)

		case "quit":
			logw.Infof(ctx, "UCI driver exiting")
			return

		default:
			logw.Debugf(ctx, "ignoring unsupported UCI command: %v", line)
		}
	}
}

func (d *Driver) position(ctx context.Context, args []string) {
	if len(args) == 0 {
		return
	}
	i := 0
	switch args[0] {
	case "startpos":
		d.e.Reset(ctx)
		i = 1
	default:
		// FEN positions are out of scope for the core (see Non-goals); only "startpos" is
		// supported.
		return
	}

	if i < len(args) && args[i] == "moves" {
		for _, mv := range args[i+1:] {
			if !d.e.Move(ctx, mv) {
				logw.Errorf(ctx, "illegal move in position command: %v", mv)
				return
			}
		}
	}
}

func (d *Driver) goSearch(ctx context.Context, out io.Writer, args []string) {
	depth := d.depth
	for i := 0; i < len(args)-1; i++ {
		if args[i] == "depth" {
			if v, err := strconv.Atoi(args[i+1]); err == nil {
				depth = v
			}
		}
	}

	best, nodes := d.e.FindBestMove(depth)
	logw.Debugf(ctx, "searched %v nodes at depth %v", nodes, depth)

	if best.IsNull() {
		fmt.Fprintln(out, "bestmove 0000")
		return
	}
	fmt.Fprintf(out, "bestmove %v\n", best)
}
