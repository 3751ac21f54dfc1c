package chess

type direction struct {
	file, rank int
}

var (
	rookDirections   = []direction{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	bishopDirections = []direction{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	queenDirections  = append(append([]direction{}, rookDirections...), bishopDirections...)
	kingDirections   = queenDirections
	knightOffsets    = []direction{{2, 1}, {2, -1}, {-2, 1}, {-2, -1}, {1, 2}, {1, -2}, {-1, 2}, {-1, -2}}
)

// generator produces target squares for the piece p standing on sq.
type generator func(b *Board, sq Square, p *Piece) []Square

func sliding(dirs []direction) generator {
	return func(b *Board, sq Square, p *Piece) []Square {
		return b.walk(sq, p.Color, dirs, true)
	}
}

func stepping(dirs []direction) generator {
	return func(b *Board, sq Square, p *Piece) []Square {
		return b.walk(sq, p.Color, dirs, false)
	}
}

// pseudoGenerators maps each role to its pseudo-legal move generator.
var pseudoGenerators = map[PieceType]generator{
	Pawn:   (*Board).pawnMoves,
	Knight: stepping(knightOffsets),
	Bishop: sliding(bishopDirections),
	Rook:   sliding(rookDirections),
	Queen:  sliding(queenDirections),
	King: func(b *Board, sq Square, p *Piece) []Square {
		return b.kingMoves(sq, p, true)
	},
}

// attackGenerators maps each role to the squares it attacks. Kings use the
// plain adjacent squares so that two kings never recurse into each other's
// safety checks, and pawns attack diagonally whether or not a piece is there.
var attackGenerators = map[PieceType]generator{
	Pawn:   (*Board).pawnAttacks,
	Knight: stepping(knightOffsets),
	Bishop: sliding(bishopDirections),
	Rook:   sliding(rookDirections),
	Queen:  sliding(queenDirections),
	King:   stepping(kingDirections),
}

func (b *Board) pseudoLegalMoves(sq Square, p *Piece) []Square {
	gen, ok := pseudoGenerators[p.Type]
	if !ok {
		return nil
	}
	return gen(b, sq, p)
}

func (b *Board) attackSquares(sq Square, p *Piece) []Square {
	gen, ok := attackGenerators[p.Type]
	if !ok {
		return nil
	}
	return gen(b, sq, p)
}

// walk steps from sq along each direction. Friendly pieces block without
// being included, enemy pieces are included and end the ray. Non-sliding
// pieces take a single step per direction.
func (b *Board) walk(sq Square, color Color, dirs []direction, slides bool) []Square {
	var moves []Square
	for _, d := range dirs {
		target, ok := sq.offset(d.file, d.rank)
		for ok {
			if occupant, taken := b.squares[target]; taken {
				if occupant.Color != color {
					moves = append(moves, target)
				}
				break
			}
			moves = append(moves, target)
			if !slides {
				break
			}
			target, ok = target.offset(d.file, d.rank)
		}
	}
	return moves
}

// kingAttackSquares returns the adjacent squares not held by a friendly
// piece, with no safety filtering.
func (b *Board) kingAttackSquares(sq Square, p *Piece) []Square {
	return b.walk(sq, p.Color, kingDirections, false)
}

func (b *Board) kingMoves(sq Square, p *Piece, includeCastling bool) []Square {
	moves := b.kingAttackSquares(sq, p)
	if includeCastling {
		moves = append(moves, b.castlingMoves(sq, p)...)
	}
	return moves
}

func (b *Board) pawnMoves(sq Square, p *Piece) []Square {
	var moves []Square
	dir := p.Color.forward()

	if one, ok := sq.offset(0, dir); ok && b.squares[one] == nil {
		moves = append(moves, one)
		// Double step eligibility follows the starting rank, not HasMoved.
		if sq.Rank() == p.Color.pawnStartRank() {
			if two, ok := sq.offset(0, 2*dir); ok && b.squares[two] == nil {
				moves = append(moves, two)
			}
		}
	}

	for _, df := range []int{-1, 1} {
		target, ok := sq.offset(df, dir)
		if !ok {
			continue
		}
		occupant := b.squares[target]
		if occupant != nil && occupant.Color != p.Color {
			moves = append(moves, target)
		} else if occupant == nil && b.enPassantTarget(sq, p, target) {
			moves = append(moves, target)
		}
	}
	return moves
}

func (b *Board) pawnAttacks(sq Square, p *Piece) []Square {
	var squares []Square
	for _, df := range []int{-1, 1} {
		target, ok := sq.offset(df, p.Color.forward())
		if !ok {
			continue
		}
		if occupant := b.squares[target]; occupant != nil && occupant.Color == p.Color {
			continue
		}
		squares = append(squares, target)
	}
	return squares
}

// enPassantTarget reports whether the pawn p on from may capture en passant
// by moving to target: the last move was an enemy pawn's double step that
// landed beside from, and target is the square it skipped.
func (b *Board) enPassantTarget(from Square, p *Piece, target Square) bool {
	lm := b.lastMove
	if lm == nil || lm.Piece.Type != Pawn || lm.Piece.Color == p.Color {
		return false
	}
	if abs(lm.To.Rank()-lm.From.Rank()) != 2 {
		return false
	}
	if lm.To.Rank() != from.Rank() || abs(lm.To.File()-from.File()) != 1 {
		return false
	}
	if enemy := b.squares[lm.To]; enemy == nil || enemy.Type != Pawn || enemy.Color == p.Color {
		return false
	}
	skipped, ok := lm.To.offset(0, p.Color.forward())
	return ok && skipped == target
}

// IsEnPassantMove reports whether moving the pawn on from to to would be an
// en passant capture.
func (b *Board) IsEnPassantMove(from, to Square) bool {
	p, ok := b.squares[from]
	if !ok || p.Type != Pawn || b.squares[to] != nil {
		return false
	}
	return b.enPassantTarget(from, p, to)
}

// IsPromotionMove reports whether moving the piece on from to to is a pawn
// reaching its final rank.
func (b *Board) IsPromotionMove(from, to Square) bool {
	p, ok := b.squares[from]
	return ok && p.Type == Pawn && to.Valid() && to.Rank() == p.Color.promotionRank()
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
