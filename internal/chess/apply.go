package chess

import (
	"errors"
	"fmt"
	"slices"
)

var (
	ErrNoPiece          = errors.New("no piece at origin square")
	ErrIllegalMove      = errors.New("illegal move")
	ErrInvalidPromotion = errors.New("invalid promotion piece")
)

type CastleRookMove struct {
	From Square `json:"from"`
	To   Square `json:"to"`
}

// Ply describes one applied move and its side effects.
type Ply struct {
	Piece          Piece           `json:"piece"`
	From           Square          `json:"from"`
	To             Square          `json:"to"`
	Captured       *Piece          `json:"capturedPiece"`
	CastleRookMove *CastleRookMove `json:"castleRookMove"`
	EnPassant      bool            `json:"enPassant"`
	Promotion      PieceType       `json:"promotion,omitempty"`
}

// ApplyMove plays a complete legal move: it moves the castling rook,
// removes a pawn captured en passant and substitutes the promotion piece
// (queen when promotion is empty). Unlike MovePiece it rejects empty
// origins and moves outside LegalMoves. The board's last move is the moved
// piece's own relocation.
func (b *Board) ApplyMove(from, to Square, promotion PieceType) (Ply, error) {
	p, ok := b.squares[from]
	if !ok {
		return Ply{}, fmt.Errorf("%w: %s", ErrNoPiece, from)
	}
	if !slices.Contains(b.LegalMoves(from), to) {
		return Ply{}, fmt.Errorf("%w: %s%s", ErrIllegalMove, from, to)
	}

	promote := b.IsPromotionMove(from, to)
	if promote {
		if promotion == "" {
			promotion = Queen
		}
		switch promotion {
		case Queen, Rook, Bishop, Knight:
		default:
			return Ply{}, fmt.Errorf("%w: %q", ErrInvalidPromotion, promotion)
		}
	}

	ply := Ply{Piece: *p, From: from, To: to}
	if occupant, taken := b.squares[to]; taken {
		captured := *occupant
		ply.Captured = &captured
	}

	switch {
	case b.IsCastlingMove(from, to):
		rookFrom, rookTo := castleRookSquares(from, to)
		b.MovePiece(rookFrom, rookTo)
		ply.CastleRookMove = &CastleRookMove{From: rookFrom, To: rookTo}
	case b.IsEnPassantMove(from, to):
		if captured, ok := b.RemovePiece(SquareAt(to.File(), from.Rank())); ok {
			ply.Captured = &captured
			ply.EnPassant = true
		}
	}

	b.MovePiece(from, to)

	if promote {
		b.squares[to].Type = promotion
		ply.Promotion = promotion
	}
	return ply, nil
}
