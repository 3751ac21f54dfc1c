package chess

import "sort"

var backRank = [8]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// LastMove remembers the most recent relocation. It only feeds en passant
// eligibility for the very next move.
type LastMove struct {
	From  Square `json:"from"`
	To    Square `json:"to"`
	Piece Piece  `json:"piece"`
}

// Board maps squares to their occupants. Absent entries are empty squares.
//
// A Board is not safe for concurrent use. Legality checks temporarily
// rearrange the position and restore it before returning.
type Board struct {
	squares  map[Square]*Piece
	lastMove *LastMove
}

// NewBoard returns a board set up with the standard starting arrangement.
func NewBoard() *Board {
	b := NewEmptyBoard()
	for file, pieceType := range backRank {
		b.PlacePiece(SquareAt(file, 0), pieceType, White)
		b.PlacePiece(SquareAt(file, 1), Pawn, White)
		b.PlacePiece(SquareAt(file, 6), Pawn, Black)
		b.PlacePiece(SquareAt(file, 7), pieceType, Black)
	}
	return b
}

// NewEmptyBoard returns a board with no pieces, for building custom positions.
func NewEmptyBoard() *Board {
	return &Board{squares: make(map[Square]*Piece)}
}

// PieceAt returns a copy of the occupant of sq.
func (b *Board) PieceAt(sq Square) (Piece, bool) {
	p, ok := b.squares[sq]
	if !ok {
		return Piece{}, false
	}
	return *p, true
}

// PlacePiece puts a fresh, unmoved piece on sq, replacing any occupant.
func (b *Board) PlacePiece(sq Square, pieceType PieceType, color Color) {
	b.squares[sq] = &Piece{Type: pieceType, Color: color, Position: sq}
}

// RemovePiece clears sq and returns what was there.
func (b *Board) RemovePiece(sq Square) (Piece, bool) {
	p, ok := b.squares[sq]
	if !ok {
		return Piece{}, false
	}
	delete(b.squares, sq)
	return *p, true
}

// MovePiece relocates the piece on from to to, silently replacing any
// occupant of to. It is a raw primitive: no rule checks, no castling rook,
// no en passant removal and no promotion. An empty origin is a no-op.
func (b *Board) MovePiece(from, to Square) {
	p, ok := b.squares[from]
	if !ok {
		return
	}
	b.lastMove = &LastMove{From: from, To: to, Piece: *p}
	delete(b.squares, from)
	p.Position = to
	p.HasMoved = true
	b.squares[to] = p
}

// LastMove returns the most recent MovePiece, if any.
func (b *Board) LastMove() (LastMove, bool) {
	if b.lastMove == nil {
		return LastMove{}, false
	}
	return *b.lastMove, true
}

// Pieces returns copies of all pieces of color, ordered by square.
func (b *Board) Pieces(color Color) []Piece {
	pieces := make([]Piece, 0, 16)
	for _, sq := range b.occupied(color) {
		pieces = append(pieces, *b.squares[sq])
	}
	return pieces
}

// occupied lists the squares holding pieces of color in ascending order.
func (b *Board) occupied(color Color) []Square {
	squares := make([]Square, 0, 16)
	for sq, p := range b.squares {
		if p.Color == color {
			squares = append(squares, sq)
		}
	}
	sort.Slice(squares, func(i, j int) bool { return squares[i] < squares[j] })
	return squares
}

// KingSquare locates the king of color.
func (b *Board) KingSquare(color Color) (Square, bool) {
	for sq, p := range b.squares {
		if p.Type == King && p.Color == color {
			return sq, true
		}
	}
	return NoSquare, false
}

// Clone returns a deep copy of the board, last move included.
func (b *Board) Clone() *Board {
	c := &Board{squares: make(map[Square]*Piece, len(b.squares))}
	for sq, p := range b.squares {
		cp := *p
		c.squares[sq] = &cp
	}
	if b.lastMove != nil {
		lm := *b.lastMove
		c.lastMove = &lm
	}
	return c
}

// IsSquareUnderAttack reports whether any piece of byColor attacks sq.
func (b *Board) IsSquareUnderAttack(sq Square, byColor Color) bool {
	for from, p := range b.squares {
		if p.Color != byColor {
			continue
		}
		for _, target := range b.attackSquares(from, p) {
			if target == sq {
				return true
			}
		}
	}
	return false
}

// attackers lists the squares of byColor pieces attacking sq, in square order.
func (b *Board) attackers(sq Square, byColor Color) []Square {
	var found []Square
	for _, from := range b.occupied(byColor) {
		for _, target := range b.attackSquares(from, b.squares[from]) {
			if target == sq {
				found = append(found, from)
				break
			}
		}
	}
	return found
}

// IsKingInCheck reports whether the king of color is attacked. A side
// without a king is never in check.
func (b *Board) IsKingInCheck(color Color) bool {
	sq, ok := b.KingSquare(color)
	if !ok {
		return false
	}
	return b.IsSquareUnderAttack(sq, color.Opponent())
}

// LegalMoves returns the legal destinations of the piece on sq in generator
// order. An empty square yields an empty list.
func (b *Board) LegalMoves(sq Square) []Square {
	moves := make([]Square, 0)
	p, ok := b.squares[sq]
	if !ok {
		return moves
	}
	for _, to := range b.pseudoLegalMoves(sq, p) {
		if b.IsMoveLegal(sq, to, p.Color) {
			moves = append(moves, to)
		}
	}
	return moves
}
