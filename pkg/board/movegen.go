package board

// GeneratePseudoLegalMoves generates every move for the side to move that obeys piece
// movement geometry, without checking whether it leaves the mover's own king in check.
func (p *Position) GeneratePseudoLegalMoves() []Move {
	moves := make([]Move, 0, 48)
	turn := p.turn

	for sq := Square(0); sq < NumSquares; sq++ {
		pc := p.board[sq]
		if pc.IsEmpty() || pc.Color() != turn {
			continue
		}
		switch pc.Type() {
		case Pawn:
			moves = p.genPawnMoves(sq, pc, moves)
		case Knight:
			moves = p.genOffsetMoves(sq, pc, knightOffsets[:], moves)
		case Bishop:
			moves = p.genSlidingMoves(sq, pc, bishopDirs[:], moves)
		case Rook:
			moves = p.genSlidingMoves(sq, pc, rookDirs[:], moves)
		case Queen:
			moves = p.genSlidingMoves(sq, pc, bishopDirs[:], moves)
			moves = p.genSlidingMoves(sq, pc, rookDirs[:], moves)
		case King:
			moves = p.genOffsetMoves(sq, pc, kingOffsets[:], moves)
			moves = p.genCastlingMoves(sq, pc, moves)
		}
	}
	return moves
}

func (p *Position) genPawnMoves(sq Square, pc Piece, moves []Move) []Move {
	color := pc.Color()
	rank, file := sq.Rank(), sq.File()

	dir, startRank, promoRank := 1, 1, 7
	if color == Black {
		dir, startRank, promoRank = -1, 6, 0
	}

	emit := func(to Square, capture Piece) []Move {
		if to.Rank() == promoRank {
			for _, t := range [4]PieceType{Queen, Rook, Bishop, Knight} {
				moves = append(moves, Move{From: sq, To: to, Piece: pc, Capture: capture, IsPromotion: true, PromotionType: t})
			}
		} else {
			moves = append(moves, Move{From: sq, To: to, Piece: pc, Capture: capture})
		}
		return moves
	}

	oneStep := NewSquare(rank+dir, file)
	if rank+dir >= 0 && rank+dir < 8 && p.board[oneStep].IsEmpty() {
		moves = emit(oneStep, Empty)
		if rank == startRank {
			twoStep := NewSquare(rank+2*dir, file)
			if p.board[twoStep].IsEmpty() {
				moves = append(moves, Move{From: sq, To: twoStep, Piece: pc})
			}
		}
	}

	for _, df := range [2]int{-1, 1} {
		f := file + df
		if f < 0 || f > 7 || rank+dir < 0 || rank+dir > 7 {
			continue
		}
		to := NewSquare(rank+dir, f)
		target := p.board[to]
		if !target.IsEmpty() && target.Color() != color {
			moves = emit(to, target)
		} else if to == p.enPassant {
			capSq := to - 8
			if color == Black {
				capSq = to + 8
			}
			moves = append(moves, Move{From: sq, To: to, Piece: pc, Capture: p.board[capSq]})
		}
	}
	return moves
}

func (p *Position) genOffsetMoves(sq Square, pc Piece, offsets [][2]int, moves []Move) []Move {
	rank, file := sq.Rank(), sq.File()
	for _, o := range offsets {
		r, f := rank+o[0], file+o[1]
		if r < 0 || r > 7 || f < 0 || f > 7 {
			continue
		}
		to := NewSquare(r, f)
		target := p.board[to]
		if target.IsEmpty() || target.Color() != pc.Color() {
			moves = append(moves, Move{From: sq, To: to, Piece: pc, Capture: target})
		}
	}
	return moves
}

func (p *Position) genSlidingMoves(sq Square, pc Piece, dirs [][2]int, moves []Move) []Move {
	rank, file := sq.Rank(), sq.File()
	for _, d := range dirs {
		r, f := rank+d[0], file+d[1]
		for r >= 0 && r < 8 && f >= 0 && f < 8 {
			to := NewSquare(r, f)
			target := p.board[to]
			if target.IsEmpty() {
				moves = append(moves, Move{From: sq, To: to, Piece: pc})
			} else {
				if target.Color() != pc.Color() {
					moves = append(moves, Move{From: sq, To: to, Piece: pc, Capture: target})
				}
				break
			}
			r += d[0]
			f += d[1]
		}
	}
	return moves
}

func (p *Position) genCastlingMoves(sq Square, pc Piece, moves []Move) []Move {
	color := pc.Color()
	rank := 0
	kingside, queenside := WhiteKingside, WhiteQueenside
	opp := Black
	if color == Black {
		rank, kingside, queenside, opp = 7, BlackKingside, BlackQueenside, White
	}

	if p.castling.Has(kingside) &&
		p.board[NewSquare(rank, 5)].IsEmpty() && p.board[NewSquare(rank, 6)].IsEmpty() &&
		!p.IsSquareAttacked(NewSquare(rank, 4), opp) && !p.IsSquareAttacked(NewSquare(rank, 5), opp) && !p.IsSquareAttacked(NewSquare(rank, 6), opp) {
		moves = append(moves, Move{From: sq, To: NewSquare(rank, 6), Piece: pc, IsCastling: true})
	}
	if p.castling.Has(queenside) &&
		p.board[NewSquare(rank, 1)].IsEmpty() && p.board[NewSquare(rank, 2)].IsEmpty() && p.board[NewSquare(rank, 3)].IsEmpty() &&
		!p.IsSquareAttacked(NewSquare(rank, 4), opp) && !p.IsSquareAttacked(NewSquare(rank, 3), opp) && !p.IsSquareAttacked(NewSquare(rank, 2), opp) {
		moves = append(moves, Move{From: sq, To: NewSquare(rank, 2), Piece: pc, IsCastling: true})
	}
	return moves
}

// GenerateLegalMoves generates pseudo-legal moves and filters them by trial application:
// each pseudo-legal move is made, discarded if it leaves the mover in check, and unmade. The
// returned list contains exactly the legal moves.
func (p *Position) GenerateLegalMoves() []Move {
	pseudo := p.GeneratePseudoLegalMoves()
	legal := make([]Move, 0, len(pseudo))
	for _, m := range pseudo {
		if p.Make(m) {
			p.Unmake(m)
			legal = append(legal, m)
		}
	}
	return legal
}

// IsCheckmate reports whether the side to move has no legal move and is in check.
func (p *Position) IsCheckmate() bool {
	return len(p.GenerateLegalMoves()) == 0 && p.IsInCheck(p.turn)
}

// IsStalemate reports whether the side to move has no legal move and is not in check.
func (p *Position) IsStalemate() bool {
	return len(p.GenerateLegalMoves()) == 0 && !p.IsInCheck(p.turn)
}

// MakeUCI generates legal moves and applies the first one matching from/to, disambiguating
// promotions with the given hint (defaults to Queen if promo is NoPieceType). Returns false,
// leaving the Position untouched, if no matching legal move exists.
func (p *Position) MakeUCI(from, to Square, promo PieceType) bool {
	if promo == NoPieceType {
		promo = Queen
	}
	for _, m := range p.GenerateLegalMoves() {
		if m.From == from && m.To == to {
			if m.IsPromotion && m.PromotionType != promo {
				continue
			}
			return p.Make(m)
		}
	}
	return false
}
