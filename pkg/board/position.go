// Package board implements the chess rules engine: position representation, legal move
// generation, and reversible make/unmake. It is the only mutable state in the engine; the
// evaluator and searcher are pure/stateless functions of a *Position.
package board

// history is the per-make snapshot needed to restore Position.Unmake to its pre-make state.
// The snapshot is the restoration source for the piece on move.To. An en-passant capture
// leaves move.To empty, so Unmake restores the captured pawn from the Move's own Capture
// field instead (see Move).
type history struct {
	castling  Castling
	enPassant Square
	captured  Piece // piece that was on move.To immediately before the overwrite
}

// Position holds a full chess position: the 64-square board, side to move, castling rights,
// en-passant target, and a history stack sufficient to undo any applied move.
//
// Position is mutated only through Make and Unmake. Make and Unmake are not re-entrant and
// the history stack is not safe for concurrent use; a Position is meant to be driven by a
// single goroutine for the lifetime of a search, matching the engine's synchronous model.
type Position struct {
	board     [NumSquares]Piece
	turn      Color
	castling  Castling
	enPassant Square
	hist      []history
}

// NewStandardPosition returns a Position set up for the initial chess position: White to
// move, all castling rights, no en-passant target.
func NewStandardPosition() *Position {
	p := &Position{turn: White, castling: AllCastling, enPassant: NoSquare}

	back := [8]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file, t := range back {
		p.board[NewSquare(0, file)] = NewPiece(White, t)
		p.board[NewSquare(7, file)] = NewPiece(Black, t)
	}
	for file := 0; file < 8; file++ {
		p.board[NewSquare(1, file)] = NewPiece(White, Pawn)
		p.board[NewSquare(6, file)] = NewPiece(Black, Pawn)
	}
	return p
}

// Turn returns the side to move.
func (p *Position) Turn() Color {
	return p.turn
}

// Castling returns the current castling-rights mask.
func (p *Position) Castling() Castling {
	return p.castling
}

// EnPassant returns the current en-passant target square, or NoSquare if none.
func (p *Position) EnPassant() Square {
	return p.enPassant
}

// PieceAt returns the piece occupying sq, or Empty.
func (p *Position) PieceAt(sq Square) Piece {
	return p.board[sq]
}

// HistoryLen returns the number of applied, not-yet-undone moves. Exposed for property tests.
func (p *Position) HistoryLen() int {
	return len(p.hist)
}

// kingSquare locates color's king. Panics if none is present, which is a programmer error:
// Position's invariants guarantee exactly one king of each color at all times.
func (p *Position) kingSquare(c Color) Square {
	for sq := Square(0); sq < NumSquares; sq++ {
		pc := p.board[sq]
		if pc.Type() == King && pc.Color() == c {
			return sq
		}
	}
	panic("board: no king on board for " + c.String())
}

// IsInCheck reports whether color's king is attacked by the opposing side.
func (p *Position) IsInCheck(c Color) bool {
	return p.IsSquareAttacked(p.kingSquare(c), c.Opponent())
}

var knightOffsets = [8][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
var kingOffsets = [8][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
var rookDirs = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
var bishopDirs = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}

// IsSquareAttacked returns true iff any piece of color attacker could, by the geometric
// movement rules of its type (ignoring pins and check), move to or capture on sq.
func (p *Position) IsSquareAttacked(sq Square, attacker Color) bool {
	rank, file := sq.Rank(), sq.File()

	// Pawn: look at the two diagonals on the rank an attacking pawn would stand on.
	pawnRank := rank - 1
	if attacker == Black {
		pawnRank = rank + 1
	}
	if pawnRank >= 0 && pawnRank < 8 {
		for _, df := range [2]int{-1, 1} {
			f := file + df
			if f < 0 || f > 7 {
				continue
			}
			pc := p.board[NewSquare(pawnRank, f)]
			if pc.Type() == Pawn && pc.Color() == attacker {
				return true
			}
		}
	}

	for _, o := range knightOffsets {
		r, f := rank+o[0], file+o[1]
		if r < 0 || r > 7 || f < 0 || f > 7 {
			continue
		}
		pc := p.board[NewSquare(r, f)]
		if pc.Type() == Knight && pc.Color() == attacker {
			return true
		}
	}

	for _, o := range kingOffsets {
		r, f := rank+o[0], file+o[1]
		if r < 0 || r > 7 || f < 0 || f > 7 {
			continue
		}
		pc := p.board[NewSquare(r, f)]
		if pc.Type() == King && pc.Color() == attacker {
			return true
		}
	}

	if p.rayAttacked(rank, file, rookDirs, attacker, Rook) {
		return true
	}
	if p.rayAttacked(rank, file, bishopDirs, attacker, Bishop) {
		return true
	}
	return false
}

// rayAttacked walks outward in each direction until a piece or the edge is hit; the hit
// matches if it is a rook/bishop (per slider) or queen of attacker's color.
func (p *Position) rayAttacked(rank, file int, dirs [4][2]int, attacker Color, slider PieceType) bool {
	for _, d := range dirs {
		r, f := rank+d[0], file+d[1]
		for r >= 0 && r < 8 && f >= 0 && f < 8 {
			pc := p.board[NewSquare(r, f)]
			if !pc.IsEmpty() {
				if pc.Color() == attacker && (pc.Type() == slider || pc.Type() == Queen) {
					return true
				}
				break
			}
			r += d[0]
			f += d[1]
		}
	}
	return false
}

// rookCornerRight returns the castling-rights bit tied to a rook's original square (a1, h1,
// a8, h8), or 0 for any other square. A move from or to one of these squares clears that bit.
func rookCornerRight(sq Square) Castling {
	switch sq {
	case 0:
		return WhiteQueenside
	case 7:
		return WhiteKingside
	case 56:
		return BlackQueenside
	case 63:
		return BlackKingside
	default:
		return 0
	}
}

// Make applies move, a structurally well-formed move whose moving piece's color equals
// Turn(). It returns false, with the Position fully restored via an internal Unmake, if the
// move would leave the just-moved side in check: that is the only way a move is rejected.
func (p *Position) Make(m Move) bool {
	mover := p.turn

	p.hist = append(p.hist, history{
		castling:  p.castling,
		enPassant: p.enPassant,
		captured:  p.board[m.To],
	})

	p.board[m.To] = p.board[m.From]
	p.board[m.From] = Empty

	if m.IsPromotion {
		p.board[m.To] = NewPiece(mover, m.PromotionType)
	}

	if m.IsCastling {
		rank := m.From.Rank()
		if m.To.File() == 6 {
			rookFrom, rookTo := NewSquare(rank, 7), NewSquare(rank, 5)
			p.board[rookTo] = p.board[rookFrom]
			p.board[rookFrom] = Empty
		} else {
			rookFrom, rookTo := NewSquare(rank, 0), NewSquare(rank, 3)
			p.board[rookTo] = p.board[rookFrom]
			p.board[rookFrom] = Empty
		}
	}

	if m.Piece.Type() == Pawn && m.To == p.enPassant {
		capSq := m.To - 8
		if mover == Black {
			capSq = m.To + 8
		}
		p.board[capSq] = Empty
	}

	p.enPassant = NoSquare
	if m.Piece.Type() == Pawn {
		diff := int(m.To) - int(m.From)
		if diff == 16 || diff == -16 {
			p.enPassant = (m.From + m.To) / 2
		}
	}

	if m.Piece.Type() == King {
		if mover == White {
			p.castling = p.castling.Clear(WhiteKingside | WhiteQueenside)
		} else {
			p.castling = p.castling.Clear(BlackKingside | BlackQueenside)
		}
	}
	p.castling = p.castling.Clear(rookCornerRight(m.From))
	p.castling = p.castling.Clear(rookCornerRight(m.To))

	if p.IsInCheck(mover) {
		// Unmake flips the turn back, so flip it first to leave Turn() unchanged.
		p.turn = mover.Opponent()
		p.Unmake(m)
		return false
	}

	p.turn = mover.Opponent()
	return true
}

// Unmake reverses the most recently applied move, which must be m. The history stack must be
// non-empty; calling Unmake on an empty history is a programmer error and is not recovered.
func (p *Position) Unmake(m Move) {
	n := len(p.hist) - 1
	h := p.hist[n]
	p.hist = p.hist[:n]

	mover := p.turn.Opponent()
	p.turn = mover
	p.castling = h.castling
	p.enPassant = h.enPassant

	p.board[m.From] = m.Piece
	p.board[m.To] = Empty

	if m.Piece.Type() == Pawn && m.To == h.enPassant {
		capSq := m.To - 8
		if mover == Black {
			capSq = m.To + 8
		}
		p.board[capSq] = m.Capture
	} else {
		p.board[m.To] = h.captured
	}

	if m.IsCastling {
		rank := m.From.Rank()
		if m.To.File() == 6 {
			rookFrom, rookTo := NewSquare(rank, 7), NewSquare(rank, 5)
			p.board[rookFrom] = p.board[rookTo]
			p.board[rookTo] = Empty
		} else {
			rookFrom, rookTo := NewSquare(rank, 0), NewSquare(rank, 3)
			p.board[rookFrom] = p.board[rookTo]
			p.board[rookTo] = Empty
		}
	}
}
