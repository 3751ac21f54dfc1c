package chess

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

type placement struct {
	sq        Square
	pieceType PieceType
	color     Color
}

func boardWith(pieces ...placement) *Board {
	b := NewEmptyBoard()
	for _, p := range pieces {
		b.PlacePiece(p.sq, p.pieceType, p.color)
	}
	return b
}

var sortSquares = cmpopts.SortSlices(func(a, b Square) bool { return a < b })

// assertSameSquares compares two move sets ignoring order.
func assertSameSquares(t *testing.T, got, want []Square, msg string) {
	t.Helper()
	if want == nil {
		want = []Square{}
	}
	if got == nil {
		got = []Square{}
	}
	if diff := cmp.Diff(want, got, sortSquares); diff != "" {
		t.Errorf("%s: mismatch (-want +got):\n%s", msg, diff)
	}
}

func contains(squares []Square, sq Square) bool {
	for _, s := range squares {
		if s == sq {
			return true
		}
	}
	return false
}

// position captures every square's occupant for before/after comparisons.
func position(b *Board) map[Square]Piece {
	pos := make(map[Square]Piece)
	for sq := A1; sq <= H8; sq++ {
		if p, ok := b.PieceAt(sq); ok {
			pos[sq] = p
		}
	}
	return pos
}
