package engine_test

import (
	"context"
	"testing"

	"github.com/dalequinn/octane/pkg/board"
	"github.com/dalequinn/octane/pkg/engine"
	"github.com/stretchr/testify/assert"
)

func TestMoveAndReset(t *testing.T) {
	ctx := context.Background()
	e := engine.New("test", "tester")

	assert.True(t, e.Move(ctx, "e2e4"))
	assert.Equal(t, board.Black, e.Position().Turn())

	e.Reset(ctx)
	assert.Equal(t, board.White, e.Position().Turn())
	assert.Len(t, e.GenerateLegalMoves(), 20)
}

func TestMoveRejectsMalformedInput(t *testing.T) {
	ctx := context.Background()
	e := engine.New("test", "tester")

	assert.False(t, e.Move(ctx, ""))
	assert.False(t, e.Move(ctx, "z9z9"))
	assert.False(t, e.Move(ctx, "e2e5")) // not a legal pawn move
}

func TestFindBestMoveReturnsNodeCount(t *testing.T) {
	e := engine.New("test", "tester")

	m, nodes := e.FindBestMove(1)
	assert.False(t, m.IsNull())
	assert.Greater(t, nodes, uint64(0))
}
