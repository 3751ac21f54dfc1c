package chess

import (
	"errors"
	"fmt"
)

var ErrInvalidSquare = errors.New("invalid square")

// Square identifies one of the 64 board squares. The value is rank*8+file,
// so a1 is 0 and h8 is 63.
type Square int8

const NoSquare Square = -1

const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

// FileIndex converts a file letter ('a'..'h') to 0..7.
func FileIndex(c byte) (int, bool) {
	if c < 'a' || c > 'h' {
		return 0, false
	}
	return int(c - 'a'), true
}

// RankIndex converts a rank digit ('1'..'8') to 0..7.
func RankIndex(c byte) (int, bool) {
	if c < '1' || c > '8' {
		return 0, false
	}
	return int(c - '1'), true
}

func FileChar(file int) byte {
	return byte('a' + file)
}

func RankChar(rank int) byte {
	return byte('1' + rank)
}

// InBounds reports whether both indices are in [0,7].
func InBounds(file, rank int) bool {
	return file >= 0 && file < 8 && rank >= 0 && rank < 8
}

// SquareAt builds a square from file and rank indices. Callers must check
// InBounds first; out of range indices panic.
func SquareAt(file, rank int) Square {
	if !InBounds(file, rank) {
		panic(fmt.Sprintf("chess: square out of bounds (file %d, rank %d)", file, rank))
	}
	return Square(rank*8 + file)
}

// ParseSquare parses algebraic notation such as "e4".
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("%w: %q", ErrInvalidSquare, s)
	}
	file, ok := FileIndex(s[0])
	if !ok {
		return NoSquare, fmt.Errorf("%w: %q", ErrInvalidSquare, s)
	}
	rank, ok := RankIndex(s[1])
	if !ok {
		return NoSquare, fmt.Errorf("%w: %q", ErrInvalidSquare, s)
	}
	return SquareAt(file, rank), nil
}

func (sq Square) File() int {
	return int(sq) % 8
}

func (sq Square) Rank() int {
	return int(sq) / 8
}

func (sq Square) Valid() bool {
	return sq >= A1 && sq <= H8
}

// offset returns the square shifted by the given file and rank deltas, or
// false when that leaves the board.
func (sq Square) offset(df, dr int) (Square, bool) {
	file, rank := sq.File()+df, sq.Rank()+dr
	if !InBounds(file, rank) {
		return NoSquare, false
	}
	return SquareAt(file, rank), true
}

func (sq Square) String() string {
	if !sq.Valid() {
		return "-"
	}
	return string([]byte{FileChar(sq.File()), RankChar(sq.Rank())})
}

func (sq Square) MarshalText() ([]byte, error) {
	if !sq.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSquare, int(sq))
	}
	return []byte(sq.String()), nil
}

func (sq *Square) UnmarshalText(text []byte) error {
	parsed, err := ParseSquare(string(text))
	if err != nil {
		return err
	}
	*sq = parsed
	return nil
}
