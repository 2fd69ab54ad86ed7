package board

import "testing"

// newTestPosition builds a position directly from a piece layout, bypassing the standard
// setup constructor. It exists only for white-box tests that need a position NewStandardPosition
// cannot reach (e.g. a bare promotion scenario), and lives in this file (package board, not
// board_test) because Position's fields are unexported.
func newTestPosition(turn Color, castling Castling, enPassant Square, pieces map[Square]Piece) *Position {
	p := &Position{turn: turn, castling: castling, enPassant: enPassant}
	for sq, pc := range pieces {
		p.board[sq] = pc
	}
	return p
}

// TestPromotionGeneratesAllFourTypes covers spec scenario S6: a White pawn on a7 with only
// the two kings otherwise on the board must generate all four a7a8 promotion moves, and
// applying the queen promotion must leave a White queen on a8.
func TestPromotionGeneratesAllFourTypes(t *testing.T) {
	pos := newTestPosition(White, 0, NoSquare, map[Square]Piece{
		ParseSquare("a7"): NewPiece(White, Pawn),
		ParseSquare("a1"): NewPiece(White, King),
		ParseSquare("h8"): NewPiece(Black, King),
	})

	from, to := ParseSquare("a7"), ParseSquare("a8")
	var promos []PieceType
	for _, m := range pos.GenerateLegalMoves() {
		if m.From == from && m.To == to {
			if !m.IsPromotion {
				t.Fatalf("a7a8 move not marked as promotion: %+v", m)
			}
			promos = append(promos, m.PromotionType)
		}
	}
	if len(promos) != 4 {
		t.Fatalf("expected 4 promotion moves from a7a8, got %v: %v", len(promos), promos)
	}

	if !pos.MakeUCI(from, to, Queen) {
		t.Fatalf("queen promotion a7a8q should be legal")
	}
	if got := pos.PieceAt(to); got.Type() != Queen || got.Color() != White {
		t.Fatalf("expected White queen on a8 after promotion, got %v", got)
	}
}
