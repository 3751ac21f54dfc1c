package chess

type Color string

const (
	White Color = "white"
	Black Color = "black"
)

func (c Color) Opponent() Color {
	if c == White {
		return Black
	}
	return White
}

// forward is the rank direction pawns of this color advance in.
func (c Color) forward() int {
	if c == White {
		return 1
	}
	return -1
}

func (c Color) pawnStartRank() int {
	if c == White {
		return 1
	}
	return 6
}

func (c Color) promotionRank() int {
	if c == White {
		return 7
	}
	return 0
}

func (c Color) backRank() int {
	if c == White {
		return 0
	}
	return 7
}

type PieceType string

const (
	King   PieceType = "king"
	Queen  PieceType = "queen"
	Rook   PieceType = "rook"
	Bishop PieceType = "bishop"
	Knight PieceType = "knight"
	Pawn   PieceType = "pawn"
)

// Notation returns the SAN piece letter; pawns have none.
func (p PieceType) Notation() string {
	switch p {
	case King:
		return "K"
	case Queen:
		return "Q"
	case Rook:
		return "R"
	case Bishop:
		return "B"
	case Knight:
		return "N"
	}
	return ""
}

func (p PieceType) Valid() bool {
	switch p {
	case King, Queen, Rook, Bishop, Knight, Pawn:
		return true
	}
	return false
}

// Piece is the occupant of a board square. The board owns every piece;
// callers only ever see copies.
type Piece struct {
	Type     PieceType `json:"type"`
	Color    Color     `json:"color"`
	Position Square    `json:"position"`
	HasMoved bool      `json:"hasMoved"`
}
