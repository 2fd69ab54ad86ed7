package uci_test

import (
	"bufio"
	"context"
	"strings"
	"testing"

	"github.com/dalequinn/octane/pkg/engine"
	"github.com/dalequinn/octane/pkg/engine/uci"
	"github.com/stretchr/testify/assert"
)

func TestUCIHandshakeAndSearch(t *testing.T) {
	ctx := context.Background()
	e := engine.New("octane", "octane contributors")
	d := uci.NewDriver(e)

	in := strings.NewReader("uci\nisready\nposition startpos moves e2e4 e7e5\ngo depth 1\nquit\n")
	var out strings.Builder

	d.Run(ctx, bufio.NewScanner(in), &out)

	result := out.String()
	assert.Contains(t, result, "id name octane")
	assert.Contains(t, result, "uciok")
	assert.Contains(t, result, "readyok")
	assert.Contains(t, result, "bestmove")
}

func TestUCIIgnoresUnsupportedFEN(t *testing.T) {
	ctx := context.Background()
	e := engine.New("octane", "octane contributors")
	d := uci.NewDriver(e)

	in := strings.NewReader("position fen 8/8/8/8/8/8/8/8 w - - 0 1\nquit\n")
	var out strings.Builder

	d.Run(ctx, bufio.NewScanner(in), &out)

	// The position command is a no-op for "fen" (unsupported, see Non-goals), so the engine
	// keeps its standard starting position with 20 legal moves.
	assert.Equal(t, 20, len(e.GenerateLegalMoves()))
}
