package model

import "github.com/benbeisheim/chesstutor-backend/internal/chess"

// BoardState is the board as rows of squares, rank 8 first and the a-file
// leftmost in each row, matching how a client draws it from white's side.
type BoardState [][]*chess.Piece

func renderBoard(b *chess.Board) BoardState {
	rows := make(BoardState, 0, 8)
	for rank := 7; rank >= 0; rank-- {
		row := make([]*chess.Piece, 8)
		for file := 0; file < 8; file++ {
			if p, ok := b.PieceAt(chess.SquareAt(file, rank)); ok {
				row[file] = &p
			}
		}
		rows = append(rows, row)
	}
	return rows
}

type CapturedPieces struct {
	White []chess.Piece `json:"white"`
	Black []chess.Piece `json:"black"`
}

func newCapturedPieces() CapturedPieces {
	return CapturedPieces{
		White: make([]chess.Piece, 0),
		Black: make([]chess.Piece, 0),
	}
}

// add records piece as taken by the side opposite its color.
func (c *CapturedPieces) add(piece chess.Piece) {
	if piece.Color == chess.White {
		c.Black = append(c.Black, piece)
		return
	}
	c.White = append(c.White, piece)
}

func (c CapturedPieces) clone() CapturedPieces {
	return CapturedPieces{
		White: append(make([]chess.Piece, 0, len(c.White)), c.White...),
		Black: append(make([]chess.Piece, 0, len(c.Black)), c.Black...),
	}
}
