package chess

// Status classifies a side's position at the start of its turn.
type Status string

const (
	StatusActive    Status = "active"
	StatusCheckmate Status = "checkmate"
	StatusStalemate Status = "stalemate"
)

func (s Status) Terminal() bool {
	return s == StatusCheckmate || s == StatusStalemate
}

// Status computes whether color, about to move, is checkmated, stalemated
// or still playing. A side without a king is reported active.
func (b *Board) Status(color Color) Status {
	kingSq, ok := b.KingSquare(color)
	if !ok {
		return StatusActive
	}
	king := b.squares[kingSq]
	opponent := color.Opponent()
	inCheck := b.IsSquareUnderAttack(kingSq, opponent)

	for _, to := range b.kingMoves(kingSq, king, false) {
		if b.IsMoveLegal(kingSq, to, color) {
			return StatusActive
		}
	}

	if !inCheck {
		if b.hasLegalMove(color, nil) {
			return StatusActive
		}
		return StatusStalemate
	}

	checkers := b.attackers(kingSq, opponent)
	if len(checkers) != 1 {
		// Double check: only a king move could answer it.
		return StatusCheckmate
	}
	checker := checkers[0]
	resolving := map[Square]bool{checker: true}
	for _, sq := range between(checker, kingSq) {
		resolving[sq] = true
	}
	accept := func(from, to Square) bool {
		if resolving[to] {
			return true
		}
		// An en passant capture removes a checking pawn without landing on it.
		return b.IsEnPassantMove(from, to) && SquareAt(to.File(), from.Rank()) == checker
	}
	if b.hasLegalMove(color, accept) {
		return StatusActive
	}
	return StatusCheckmate
}

// hasLegalMove reports whether any non-king piece of color has a legal move
// that accept admits. A nil accept admits every move.
func (b *Board) hasLegalMove(color Color, accept func(from, to Square) bool) bool {
	for _, from := range b.occupied(color) {
		p := b.squares[from]
		if p.Type == King {
			continue
		}
		for _, to := range b.pseudoLegalMoves(from, p) {
			if accept != nil && !accept(from, to) {
				continue
			}
			if b.IsMoveLegal(from, to, color) {
				return true
			}
		}
	}
	return false
}

// between returns the squares strictly between two squares sharing a rank,
// file or diagonal. Unaligned or adjacent squares have none.
func between(a, c Square) []Square {
	df, dr := c.File()-a.File(), c.Rank()-a.Rank()
	if df != 0 && dr != 0 && abs(df) != abs(dr) {
		return nil
	}
	stepFile, stepRank := sign(df), sign(dr)
	var squares []Square
	sq, _ := a.offset(stepFile, stepRank)
	for sq != c {
		squares = append(squares, sq)
		sq, _ = sq.offset(stepFile, stepRank)
	}
	return squares
}

func (b *Board) IsCheckmate(color Color) bool {
	return b.Status(color) == StatusCheckmate
}

func (b *Board) IsStalemate(color Color) bool {
	return b.Status(color) == StatusStalemate
}
