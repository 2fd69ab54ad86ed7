package board_test

import (
	"testing"

	"github.com/dalequinn/octane/pkg/board"
	"github.com/stretchr/testify/assert"
)

// perft counts leaf nodes of the legal move tree, a standard move-generation correctness
// check. See: https://www.chessprogramming.org/Perft_Results.
func perft(pos *board.Position, depth int) int64 {
	if depth == 0 {
		return 1
	}
	var nodes int64
	for _, m := range pos.GenerateLegalMoves() {
		pos.Make(m)
		nodes += perft(pos, depth-1)
		pos.Unmake(m)
	}
	return nodes
}

func TestPerftFromStandardPosition(t *testing.T) {
	tests := []struct {
		depth    int
		expected int64
	}{
		{1, 20},
		{2, 400},
		{3, 8902},
		{4, 197281},
	}

	for _, tt := range tests {
		pos := board.NewStandardPosition()
		assert.Equalf(t, tt.expected, perft(pos, tt.depth), "perft depth %v", tt.depth)
	}
}

func TestFoolsMate(t *testing.T) {
	pos := board.NewStandardPosition()
	moves := []string{"f2f3", "e7e5", "g2g4", "d8h4"}
	for _, m := range moves {
		from, to := board.ParseSquare(m[0:2]), board.ParseSquare(m[2:4])
		ok := pos.MakeUCI(from, to, board.NoPieceType)
		assert.Truef(t, ok, "move %v should be legal", m)
	}

	assert.True(t, pos.IsInCheck(board.White))
	assert.True(t, pos.IsCheckmate())
	assert.False(t, pos.IsStalemate())
	assert.Empty(t, pos.GenerateLegalMoves())
}

func TestCastlingMove(t *testing.T) {
	pos := board.NewStandardPosition()
	for _, m := range []string{"g1f3", "g8f6", "g2g3", "g7g6", "f1g2", "f8g7"} {
		from, to := board.ParseSquare(m[0:2]), board.ParseSquare(m[2:4])
		ok := pos.MakeUCI(from, to, board.NoPieceType)
		assert.Truef(t, ok, "move %v should be legal", m)
	}

	ok := pos.MakeUCI(board.ParseSquare("e1"), board.ParseSquare("g1"), board.NoPieceType)
	assert.True(t, ok)
	assert.Equal(t, "K", pos.PieceAt(board.ParseSquare("g1")).String())
	assert.Equal(t, "R", pos.PieceAt(board.ParseSquare("f1")).String())
	assert.True(t, pos.PieceAt(board.ParseSquare("e1")).IsEmpty())
	assert.True(t, pos.PieceAt(board.ParseSquare("h1")).IsEmpty())
	assert.False(t, pos.Castling().Has(board.WhiteKingside))
	assert.False(t, pos.Castling().Has(board.WhiteQueenside))
}

func TestCastlingAvailableForBothSides(t *testing.T) {
	pos := board.NewStandardPosition()
	for _, m := range []string{"e2e4", "e7e5", "f1c4", "f8c5", "g1f3", "g8f6"} {
		from, to := board.ParseSquare(m[0:2]), board.ParseSquare(m[2:4])
		ok := pos.MakeUCI(from, to, board.NoPieceType)
		assert.Truef(t, ok, "move %v should be legal", m)
	}

	ok := pos.MakeUCI(board.ParseSquare("e1"), board.ParseSquare("g1"), board.NoPieceType)
	assert.True(t, ok)
	ok = pos.MakeUCI(board.ParseSquare("e8"), board.ParseSquare("g8"), board.NoPieceType)
	assert.True(t, ok)
}
