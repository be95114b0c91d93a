package chess

import "strings"

// Board maps each of the 64 squares to a coloured piece, Empty when vacant.
// Boards are advanced copy-on-write: ApplyMove returns a fresh snapshot and
// never mutates its receiver, so a caller holding the pre-move board can
// keep consulting it safely.
type Board struct {
	squares [NumSquares]Piece
}

// NewBoard creates an empty board.
func NewBoard() *Board {
	return &Board{}
}

// At returns the piece on the square, Empty when vacant.
func (b *Board) At(sq Square) Piece {
	if !sq.Valid() {
		return Empty
	}
	return b.squares[sq]
}

// Occupied reports whether the square holds a piece.
func (b *Board) Occupied(sq Square) bool {
	return sq.Valid() && b.squares[sq] != Empty
}

// Place puts a coloured piece on the square, replacing any occupant.
func (b *Board) Place(sq Square, p Piece) {
	if sq.Valid() {
		b.squares[sq] = p
	}
}

// Remove clears the square and returns the piece that was there.
func (b *Board) Remove(sq Square) Piece {
	if !sq.Valid() {
		return Empty
	}
	p := b.squares[sq]
	b.squares[sq] = Empty
	return p
}

// Copy creates an independent copy of the board.
func (b *Board) Copy() *Board {
	nb := &Board{}
	nb.squares = b.squares
	return nb
}

// Equal reports whether two boards hold identical pieces on every square.
func (b *Board) Equal(o *Board) bool {
	return b.squares == o.squares
}

// ApplyMove returns a new board with the move applied: the piece at from
// is removed and placed at to, or replaced by promotion when promotion is
// not Empty. A King travelling exactly two files also relocates the rook
// of the corresponding castle (kingside h->f, queenside a->d, same rank).
//
// An empty from square yields an unchanged copy. The trace is assumed
// legality-checked upstream, so the lenient no-op keeps conversion going
// instead of failing the whole game.
func (b *Board) ApplyMove(from, to Square, promotion Piece) *Board {
	nb := b.Copy()
	piece := nb.Remove(from)
	if piece == Empty {
		return nb
	}

	if promotion != Empty {
		nb.Place(to, promotion)
	} else {
		nb.Place(to, piece)
	}

	if ExtractPiece(piece) == King && FileDistance(from, to) == 2 {
		rank := from.Rank()
		var rookFrom, rookTo Square
		if to.File() == 'g' {
			rookFrom, rookTo = MakeSquare('h', rank), MakeSquare('f', rank)
		} else {
			rookFrom, rookTo = MakeSquare('a', rank), MakeSquare('d', rank)
		}
		if rook := nb.Remove(rookFrom); rook != Empty {
			nb.Place(rookTo, rook)
		}
	}

	return nb
}

// initialBackRank is the canonical piece order of each back rank.
var initialBackRank = []Piece{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// InitialBoard returns the canonical 32-piece starting arrangement.
func InitialBoard() *Board {
	b := NewBoard()
	for col := 0; col < BoardSize; col++ {
		file := byte(col) + ColBase
		b.Place(MakeSquare(file, 1), W(initialBackRank[col]))
		b.Place(MakeSquare(file, 2), W(Pawn))
		b.Place(MakeSquare(file, 7), B(Pawn))
		b.Place(MakeSquare(file, 8), B(initialBackRank[col]))
	}
	return b
}

// String renders the board as eight ASCII rows from rank 8 down to rank 1.
// White pieces are uppercase, black pieces lowercase, vacant squares dots.
func (b *Board) String() string {
	var sb strings.Builder
	for rank := BoardSize; rank >= 1; rank-- {
		for col := 0; col < BoardSize; col++ {
			sq := MakeSquare(byte(col)+ColBase, rank)
			p := b.squares[sq]
			if p == Empty {
				sb.WriteByte('.')
			} else {
				letter := ExtractPiece(p).Letter()
				if ExtractColour(p) == Black {
					letter += 'a' - 'A'
				}
				sb.WriteByte(letter)
			}
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
