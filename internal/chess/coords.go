package chess

import (
	"fmt"

	"github.com/lgbarn/trl2pgn/internal/errors"
)

// Board dimensions and coordinate bases.
const (
	BoardSize  = 8
	NumSquares = BoardSize * BoardSize

	ColBase  = 'a'
	RankBase = '1'
)

// Square identifies one of the 64 board squares as a linear index in
// rank-major order: a1 is 0, h1 is 7, a8 is 56, h8 is 63. This matches
// the coordinate system used by Ludii trace records.
type Square int

// SquareFromIndex converts a trace coordinate to a Square.
func SquareFromIndex(index int) (Square, error) {
	if index < 0 || index >= NumSquares {
		return 0, fmt.Errorf("index %d: %w", index, errors.ErrInvalidCoordinate)
	}
	return Square(index), nil
}

// ParseSquare converts an algebraic label such as "e4" to a Square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return 0, fmt.Errorf("square %q: %w", s, errors.ErrInvalidCoordinate)
	}
	file := int(s[0] - ColBase)
	rank := int(s[1] - RankBase)
	if file < 0 || file >= BoardSize || rank < 0 || rank >= BoardSize {
		return 0, fmt.Errorf("square %q: %w", s, errors.ErrInvalidCoordinate)
	}
	return Square(rank*BoardSize + file), nil
}

// MakeSquare builds a Square from a file letter ('a'-'h') and rank number (1-8).
// The caller is responsible for passing coordinates on the board.
func MakeSquare(file byte, rank int) Square {
	return Square((rank-1)*BoardSize + int(file-ColBase))
}

// MustParseSquare is ParseSquare for known-good labels, panicking on error.
// Intended for fixed tables and tests.
func MustParseSquare(s string) Square {
	sq, err := ParseSquare(s)
	if err != nil {
		panic(err)
	}
	return sq
}

// Valid reports whether the square lies on the board.
func (s Square) Valid() bool {
	return s >= 0 && s < NumSquares
}

// File returns the file letter 'a'-'h'.
func (s Square) File() byte {
	return byte(int(s)%BoardSize) + ColBase
}

// Rank returns the rank number 1-8.
func (s Square) Rank() int {
	return int(s)/BoardSize + 1
}

// String returns the algebraic label, e.g. "e4".
func (s Square) String() string {
	if !s.Valid() {
		return fmt.Sprintf("invalid(%d)", int(s))
	}
	return string([]byte{s.File(), byte(s.Rank()) + RankBase - 1})
}

// FileDistance returns the absolute file distance between two squares.
func FileDistance(a, b Square) int {
	d := int(a.File()) - int(b.File())
	if d < 0 {
		return -d
	}
	return d
}

// RankDistance returns the absolute rank distance between two squares.
func RankDistance(a, b Square) int {
	d := a.Rank() - b.Rank()
	if d < 0 {
		return -d
	}
	return d
}
