package chess

// slot records one square's occupant so it can be put back later.
type slot struct {
	sq    Square
	piece *Piece
}

func (b *Board) snapshot(squares ...Square) []slot {
	slots := make([]slot, len(squares))
	for i, sq := range squares {
		slots[i] = slot{sq: sq, piece: b.squares[sq]}
	}
	return slots
}

func (b *Board) restore(slots []slot) {
	for _, s := range slots {
		if s.piece == nil {
			delete(b.squares, s.sq)
		} else {
			b.squares[s.sq] = s.piece
		}
	}
}

// simulate relocates the piece on from to to, runs fn against the resulting
// position and puts every touched square back, whatever fn does. An en
// passant capture also lifts the captured pawn for the duration.
func (b *Board) simulate(from, to Square, fn func()) {
	moving := b.squares[from]
	touched := []Square{from, to}
	captured := NoSquare
	if b.IsEnPassantMove(from, to) {
		captured = SquareAt(to.File(), from.Rank())
		touched = append(touched, captured)
	}

	slots := b.snapshot(touched...)
	defer b.restore(slots)

	delete(b.squares, from)
	if captured != NoSquare {
		delete(b.squares, captured)
	}
	b.squares[to] = moving
	fn()
}

// IsMoveLegal reports whether moving the piece on from to to leaves the
// king of color out of check. The board is unchanged afterwards. An empty
// origin is never legal.
func (b *Board) IsMoveLegal(from, to Square, color Color) bool {
	if b.squares[from] == nil {
		return false
	}
	inCheck := true
	b.simulate(from, to, func() {
		inCheck = b.IsKingInCheck(color)
	})
	return !inCheck
}
