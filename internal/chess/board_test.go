package chess

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewBoardSetup(t *testing.T) {
	b := NewBoard()
	want := map[Square]PieceType{
		A1: Rook, B1: Knight, C1: Bishop, D1: Queen, E1: King, F1: Bishop, G1: Knight, H1: Rook,
	}
	for sq, pieceType := range want {
		p, ok := b.PieceAt(sq)
		if !ok || p.Type != pieceType || p.Color != White {
			t.Errorf("PieceAt(%v) = %+v, %v; want white %s", sq, p, ok, pieceType)
		}
		mirror := SquareAt(sq.File(), 7)
		p, ok = b.PieceAt(mirror)
		if !ok || p.Type != pieceType || p.Color != Black {
			t.Errorf("PieceAt(%v) = %+v, %v; want black %s", mirror, p, ok, pieceType)
		}
	}
	for file := 0; file < 8; file++ {
		white, _ := b.PieceAt(SquareAt(file, 1))
		black, _ := b.PieceAt(SquareAt(file, 6))
		if white.Type != Pawn || white.Color != White || white.Position != SquareAt(file, 1) {
			t.Errorf("rank 2 file %d: %+v", file, white)
		}
		if black.Type != Pawn || black.Color != Black {
			t.Errorf("rank 7 file %d: %+v", file, black)
		}
		for rank := 2; rank < 6; rank++ {
			if p, ok := b.PieceAt(SquareAt(file, rank)); ok {
				t.Errorf("PieceAt(%v) = %+v, want empty", SquareAt(file, rank), p)
			}
		}
	}
	if n := len(b.Pieces(White)) + len(b.Pieces(Black)); n != 32 {
		t.Errorf("piece count = %d, want 32", n)
	}
	if _, ok := b.LastMove(); ok {
		t.Error("new board has a last move")
	}
}

func TestPlacePieceOverwrites(t *testing.T) {
	b := NewEmptyBoard()
	b.PlacePiece(E4, Rook, White)
	b.MovePiece(E4, E5)
	b.PlacePiece(E5, Knight, Black)

	got, ok := b.PieceAt(E5)
	want := Piece{Type: Knight, Color: Black, Position: E5, HasMoved: false}
	if !ok {
		t.Fatal("PieceAt(e5) empty")
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("PieceAt(e5) mismatch (-want +got):\n%s", diff)
	}
}

func TestMovePiece(t *testing.T) {
	b := boardWith(placement{E2, Pawn, White}, placement{D3, Knight, Black})
	b.MovePiece(E2, D3)

	if _, ok := b.PieceAt(E2); ok {
		t.Error("origin still occupied")
	}
	got, _ := b.PieceAt(D3)
	want := Piece{Type: Pawn, Color: White, Position: D3, HasMoved: true}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("PieceAt(d3) mismatch (-want +got):\n%s", diff)
	}
	if n := len(b.Pieces(Black)); n != 0 {
		t.Errorf("captured knight still listed: %d black pieces", n)
	}

	lm, ok := b.LastMove()
	if !ok {
		t.Fatal("LastMove missing")
	}
	wantLast := LastMove{From: E2, To: D3, Piece: Piece{Type: Pawn, Color: White, Position: E2}}
	if diff := cmp.Diff(wantLast, lm); diff != "" {
		t.Errorf("LastMove mismatch (-want +got):\n%s", diff)
	}
}

func TestMovePieceEmptyOriginIsNoop(t *testing.T) {
	b := boardWith(placement{A1, Rook, White})
	b.MovePiece(A1, A2)
	before := position(b)
	b.MovePiece(H8, H1)

	if diff := cmp.Diff(before, position(b)); diff != "" {
		t.Errorf("position changed (-before +after):\n%s", diff)
	}
	lm, _ := b.LastMove()
	if lm.From != A1 || lm.To != A2 {
		t.Errorf("LastMove = %v-%v, want a1-a2", lm.From, lm.To)
	}
}

func TestMovePieceHasNoSideEffects(t *testing.T) {
	b := boardWith(placement{E1, King, White}, placement{H1, Rook, White})
	b.MovePiece(E1, G1)
	if _, ok := b.PieceAt(H1); !ok {
		t.Error("MovePiece relocated the castling rook")
	}

	b = boardWith(placement{E5, Pawn, White}, placement{D7, Pawn, Black})
	b.MovePiece(D7, D5)
	b.MovePiece(E5, D6)
	if _, ok := b.PieceAt(D5); !ok {
		t.Error("MovePiece removed the en passant pawn")
	}

	b = boardWith(placement{E7, Pawn, White})
	b.MovePiece(E7, E8)
	if p, _ := b.PieceAt(E8); p.Type != Pawn {
		t.Errorf("MovePiece promoted the pawn to %s", p.Type)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	b := NewBoard()
	b.MovePiece(E2, E4)
	c := b.Clone()
	c.MovePiece(D7, D5)

	if _, ok := b.PieceAt(D5); ok {
		t.Error("move on clone leaked into original")
	}
	lm, _ := b.LastMove()
	if lm.To != E4 {
		t.Errorf("original LastMove = %v, want e4", lm.To)
	}
	if diff := cmp.Diff(position(b)[E4], position(c)[E4]); diff != "" {
		t.Errorf("clone differs on e4:\n%s", diff)
	}
}

func TestKingSquare(t *testing.T) {
	b := NewBoard()
	if sq, ok := b.KingSquare(White); !ok || sq != E1 {
		t.Errorf("KingSquare(white) = %v, %v", sq, ok)
	}
	if sq, ok := b.KingSquare(Black); !ok || sq != E8 {
		t.Errorf("KingSquare(black) = %v, %v", sq, ok)
	}
	if _, ok := NewEmptyBoard().KingSquare(White); ok {
		t.Error("empty board has a king")
	}
}

func TestIsKingInCheck(t *testing.T) {
	tests := []struct {
		name   string
		pieces []placement
		color  Color
		want   bool
	}{
		{"rook on file", []placement{{E4, King, White}, {E8, Rook, Black}}, White, true},
		{"other side not in check", []placement{{E4, King, White}, {E8, Rook, Black}, {A8, King, Black}}, Black, false},
		{"bishop diagonal", []placement{{E4, King, White}, {H7, Bishop, Black}}, White, true},
		{"queen file", []placement{{E4, King, White}, {E1, Queen, Black}}, White, true},
		{"knight", []placement{{E4, King, White}, {D6, Knight, Black}}, White, true},
		{"pawn", []placement{{E4, King, White}, {D5, Pawn, Black}}, White, true},
		{"pawn behind does not check", []placement{{E4, King, White}, {D3, Pawn, Black}}, White, false},
		{"pawn ahead does not check", []placement{{E4, King, White}, {E5, Pawn, Black}}, White, false},
		{"no threats", []placement{{E4, King, White}, {D6, Rook, Black}, {C3, Bishop, Black}}, White, false},
		{"blocked", []placement{{E4, King, White}, {E8, Rook, Black}, {E6, Pawn, White}}, White, false},
		{"no king", []placement{{E8, Rook, Black}}, White, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := boardWith(tt.pieces...)
			if got := b.IsKingInCheck(tt.color); got != tt.want {
				t.Errorf("IsKingInCheck(%s) = %v, want %v", tt.color, got, tt.want)
			}
		})
	}

	b := NewBoard()
	if b.IsKingInCheck(White) || b.IsKingInCheck(Black) {
		t.Error("check in the starting position")
	}
}

func TestIsSquareUnderAttack(t *testing.T) {
	b := boardWith(placement{E1, Rook, Black})
	for _, sq := range []Square{E4, A1, E8, H1} {
		if !b.IsSquareUnderAttack(sq, Black) {
			t.Errorf("IsSquareUnderAttack(%v, black) = false", sq)
		}
	}
	if b.IsSquareUnderAttack(D2, Black) {
		t.Error("IsSquareUnderAttack(d2, black) = true")
	}
	if b.IsSquareUnderAttack(E4, White) {
		t.Error("white attacks e4 with no pieces")
	}

	// Pawns attack empty diagonal squares but not the square ahead.
	b = boardWith(placement{E2, Pawn, White})
	if !b.IsSquareUnderAttack(D3, White) || !b.IsSquareUnderAttack(F3, White) {
		t.Error("pawn e2 should attack d3 and f3")
	}
	if b.IsSquareUnderAttack(E3, White) {
		t.Error("pawn e2 should not attack e3")
	}
}

func TestIsMoveLegal(t *testing.T) {
	tests := []struct {
		name     string
		pieces   []placement
		from, to Square
		want     bool
	}{
		{
			name:   "pinned bishop",
			pieces: []placement{{E1, King, White}, {E2, Bishop, White}, {E8, Rook, Black}},
			from:   E2, to: D3,
			want: false,
		},
		{
			name:   "pinned rook along the pin",
			pieces: []placement{{E1, King, White}, {E2, Rook, White}, {E8, Rook, Black}},
			from:   E2, to: E5,
			want: true,
		},
		{
			name:   "king into attack",
			pieces: []placement{{E1, King, White}, {D8, Rook, Black}},
			from:   E1, to: D1,
			want: false,
		},
		{
			name:   "king captures defended piece",
			pieces: []placement{{E1, King, White}, {E2, Knight, Black}, {E8, Rook, Black}},
			from:   E1, to: E2,
			want: false,
		},
		{
			name:   "king captures undefended piece",
			pieces: []placement{{E1, King, White}, {E2, Knight, Black}},
			from:   E1, to: E2,
			want: true,
		},
		{
			name:   "block a check",
			pieces: []placement{{E1, King, White}, {A3, Rook, White}, {E8, Rook, Black}},
			from:   A3, to: E3,
			want: true,
		},
		{
			name:   "ignore a check",
			pieces: []placement{{E1, King, White}, {A3, Rook, White}, {E8, Rook, Black}},
			from:   A3, to: A4,
			want: false,
		},
		{
			name:   "empty origin",
			pieces: []placement{{E1, King, White}},
			from:   E4, to: E5,
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := boardWith(tt.pieces...)
			before := position(b)
			if got := b.IsMoveLegal(tt.from, tt.to, White); got != tt.want {
				t.Errorf("IsMoveLegal(%v, %v) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
			if diff := cmp.Diff(before, position(b)); diff != "" {
				t.Errorf("position not restored (-before +after):\n%s", diff)
			}
		})
	}
}

func TestEnPassantRevealingCheckIsIllegal(t *testing.T) {
	// Capturing en passant would lift both pawns off the fifth rank and
	// expose the king to the rook.
	b := boardWith(
		placement{A5, King, White},
		placement{E5, Pawn, White},
		placement{D7, Pawn, Black},
		placement{H5, Rook, Black},
	)
	b.MovePiece(D7, D5)
	if b.IsMoveLegal(E5, D6, White) {
		t.Error("en passant exposing the king reported legal")
	}
	if contains(b.LegalMoves(E5), D6) {
		t.Error("d6 offered although it exposes the king")
	}
	if _, ok := b.PieceAt(D5); !ok {
		t.Error("simulation did not restore the captured pawn")
	}
}

// Every candidate move of every piece, legal or not, must leave the board
// exactly as it was.
func TestSimulationRoundTrip(t *testing.T) {
	boards := map[string]*Board{
		"start": NewBoard(),
		"middlegame": boardWith(
			placement{G1, King, White}, placement{F2, Pawn, White}, placement{E4, Pawn, White},
			placement{D1, Queen, White}, placement{C4, Bishop, White}, placement{F3, Knight, White},
			placement{E8, King, Black}, placement{E5, Pawn, Black}, placement{C6, Knight, Black},
			placement{B4, Bishop, Black}, placement{H4, Queen, Black}, placement{F7, Pawn, Black},
		),
	}
	for name, b := range boards {
		t.Run(name, func(t *testing.T) {
			before := position(b)
			for _, color := range []Color{White, Black} {
				for _, from := range b.occupied(color) {
					for _, to := range b.pseudoLegalMoves(from, b.squares[from]) {
						b.IsMoveLegal(from, to, color)
						if diff := cmp.Diff(before, position(b)); diff != "" {
							t.Fatalf("IsMoveLegal(%v, %v) changed the board (-before +after):\n%s", from, to, diff)
						}
					}
				}
			}
		})
	}
}
