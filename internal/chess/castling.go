package chess

const kingHomeFile = 4

type castleSide struct {
	rookFile int
	step     int
}

var castleSides = []castleSide{
	{rookFile: 7, step: 1},  // kingside
	{rookFile: 0, step: -1}, // queenside
}

// castlingMoves returns the castling destinations available to the king p
// on sq. The king must be unmoved on its home square and not in check; the
// corner rook must be unmoved; every square between them must be empty; and
// neither the king's square nor the two squares it crosses may be attacked.
func (b *Board) castlingMoves(sq Square, p *Piece) []Square {
	if p.HasMoved || sq.File() != kingHomeFile || sq.Rank() != p.Color.backRank() {
		return nil
	}
	opponent := p.Color.Opponent()
	if b.IsSquareUnderAttack(sq, opponent) {
		return nil
	}

	var moves []Square
	for _, side := range castleSides {
		rook := b.squares[SquareAt(side.rookFile, sq.Rank())]
		if rook == nil || rook.Type != Rook || rook.Color != p.Color || rook.HasMoved {
			continue
		}
		if !b.pathClear(sq, side) {
			continue
		}
		through := SquareAt(sq.File()+side.step, sq.Rank())
		dest := SquareAt(sq.File()+2*side.step, sq.Rank())
		if b.IsSquareUnderAttack(through, opponent) || b.IsSquareUnderAttack(dest, opponent) {
			continue
		}
		moves = append(moves, dest)
	}
	return moves
}

func (b *Board) pathClear(kingSq Square, side castleSide) bool {
	for file := kingSq.File() + side.step; file != side.rookFile; file += side.step {
		if b.squares[SquareAt(file, kingSq.Rank())] != nil {
			return false
		}
	}
	return true
}

// IsCastlingMove reports whether moving the piece on from to to is a king
// travelling two files along its rank.
func (b *Board) IsCastlingMove(from, to Square) bool {
	p, ok := b.squares[from]
	if !ok || p.Type != King || !to.Valid() {
		return false
	}
	return from.Rank() == to.Rank() && abs(to.File()-from.File()) == 2
}

// castleRookSquares returns where the rook starts and lands for a castling
// king move from -> to.
func castleRookSquares(from, to Square) (Square, Square) {
	step := sign(to.File() - from.File())
	rookFile := 7
	if step < 0 {
		rookFile = 0
	}
	return SquareAt(rookFile, from.Rank()), SquareAt(from.File()+step, from.Rank())
}
