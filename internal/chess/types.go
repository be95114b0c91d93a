// Package chess provides core chess types and operations.
package chess

import (
	"fmt"

	"github.com/lgbarn/trl2pgn/internal/errors"
)

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Piece represents a chess piece type, or a coloured piece when combined
// with a colour via MakeColouredPiece.
type Piece int

const (
	Empty Piece = iota // Empty square
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieceValues
)

// String returns the string representation of a piece type.
func (p Piece) String() string {
	names := []string{"Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece type (uppercase).
// Pawns and empty squares have no meaningful letter.
func (p Piece) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// PieceShift is used for encoding coloured pieces.
const PieceShift = 3

// MakeColouredPiece creates a coloured piece value.
func MakeColouredPiece(colour Colour, piece Piece) Piece {
	return Piece((int(piece) << PieceShift) | int(colour))
}

// W creates a white piece.
func W(piece Piece) Piece {
	return MakeColouredPiece(White, piece)
}

// B creates a black piece.
func B(piece Piece) Piece {
	return MakeColouredPiece(Black, piece)
}

// ExtractColour extracts the colour from a coloured piece.
func ExtractColour(colouredPiece Piece) Colour {
	return Colour(colouredPiece & 0x01)
}

// ExtractPiece extracts the piece type from a coloured piece.
func ExtractPiece(colouredPiece Piece) Piece {
	return Piece(colouredPiece >> PieceShift)
}

// kindByCode maps Ludii trace piece codes to piece types. The colour is
// carried by the code's parity and is not part of this table.
var kindByCode = map[int]Piece{
	1: Pawn, 2: Pawn,
	3: Rook, 4: Rook,
	5: King, 6: King,
	7: Bishop, 8: Bishop,
	9: Knight, 10: Knight,
	11: Queen, 12: Queen,
}

// DecodePieceCode converts a Ludii trace piece code to a coloured piece.
// Odd codes are White, even codes are Black; this parity contract is an
// invariant of the trace format and must hold for every recognised code.
func DecodePieceCode(code int) (Piece, error) {
	kind, ok := kindByCode[code]
	if !ok {
		return Empty, fmt.Errorf("piece code %d: %w", code, errors.ErrUnknownPiece)
	}
	colour := Colour(code % 2) // odd -> White(1), even -> Black(0)
	return MakeColouredPiece(colour, kind), nil
}

// PieceLetterForCode returns the notation letter for a trace piece code,
// or fallback when the code is not recognised.
func PieceLetterForCode(code int, fallback byte) byte {
	kind, ok := kindByCode[code]
	if !ok {
		return fallback
	}
	return kind.Letter()
}

// ColourOfPlayer maps a trace mover number (1 or 2) to a colour.
// Player 1 is White, player 2 is Black.
func ColourOfPlayer(mover int) Colour {
	if mover == 1 {
		return White
	}
	return Black
}
