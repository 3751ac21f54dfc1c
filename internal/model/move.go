package model

import (
	"fmt"
	"strings"

	"github.com/benbeisheim/chesstutor-backend/internal/chess"
)

// MoveRequest is a move as submitted by a client.
type MoveRequest struct {
	From      chess.Square    `json:"from"`
	To        chess.Square    `json:"to"`
	Promotion chess.PieceType `json:"promotion,omitempty"`
}

// ParseMoveRequest builds a request from client strings such as "e7",
// "e8" and "knight". An empty promotion leaves the choice to the board.
func ParseMoveRequest(from, to, promotion string) (MoveRequest, error) {
	f, err := chess.ParseSquare(from)
	if err != nil {
		return MoveRequest{}, err
	}
	t, err := chess.ParseSquare(to)
	if err != nil {
		return MoveRequest{}, err
	}
	req := MoveRequest{From: f, To: t, Promotion: chess.PieceType(strings.ToLower(promotion))}
	if req.Promotion != "" && !req.Promotion.Valid() {
		return MoveRequest{}, fmt.Errorf("%w: %q", chess.ErrInvalidPromotion, promotion)
	}
	return req, nil
}

// Ply is an applied half-move with its algebraic notation.
type Ply struct {
	chess.Ply
	Notation string `json:"notation"`
}

// Move pairs white's ply with black's reply. BlackPly is nil until black
// has moved.
type Move struct {
	WhitePly *Ply `json:"whitePly"`
	BlackPly *Ply `json:"blackPly"`
}

type SimpleMove struct {
	From chess.Square `json:"from"`
	To   chess.Square `json:"to"`
}

// notation renders ply in short algebraic form. The suffix reflects the
// opponent's status once the ply has been applied.
func notation(ply chess.Ply, check bool, status chess.Status) string {
	var sb strings.Builder
	switch {
	case ply.CastleRookMove != nil && ply.To.File() > ply.From.File():
		sb.WriteString("O-O")
	case ply.CastleRookMove != nil:
		sb.WriteString("O-O-O")
	default:
		sb.WriteString(ply.Piece.Type.Notation())
		if ply.Captured != nil {
			if ply.Piece.Type == chess.Pawn {
				sb.WriteByte(chess.FileChar(ply.From.File()))
			}
			sb.WriteByte('x')
		}
		sb.WriteString(ply.To.String())
		if ply.Promotion != "" {
			sb.WriteByte('=')
			sb.WriteString(ply.Promotion.Notation())
		}
	}

	switch {
	case status == chess.StatusCheckmate:
		sb.WriteByte('#')
	case check:
		sb.WriteByte('+')
	}
	return sb.String()
}
