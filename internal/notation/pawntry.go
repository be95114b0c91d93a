// Package notation renders parsed trial moves as algebraic notation and
// computes the Kriegspiel umpire hints that accompany them.
package notation

import (
	"fmt"

	"github.com/lgbarn/trl2pgn/internal/chess"
)

// PawnTries computes the pawn capture threats available to the opponent of
// the side that just moved. The board is the post-move snapshot; from and
// to are the squares of the move just played. It returns the number of
// tries and one string per try, for diagnostic output.
//
// Squares are scanned in index order (rank-major, file-minor), so the try
// list is deterministic for identical inputs. The board is never mutated.
func PawnTries(board *chess.Board, mover chess.Colour, from, to chess.Square) (int, []string) {
	opponent := mover.Opposite()
	tries := 0
	var moves []string

	// En passant applies only when the move was a pawn double step. The
	// skipped square is the en passant target; a capturing pawn stands on
	// an adjacent file at the destination's rank.
	moved := board.At(to)
	if moved != chess.Empty && chess.ExtractPiece(moved) == chess.Pawn &&
		chess.RankDistance(from, to) == 2 {
		targetRank := (from.Rank() + to.Rank()) / 2
		target := chess.MakeSquare(to.File(), targetRank)
		for _, file := range []byte{to.File() - 1, to.File() + 1} {
			if file < chess.ColBase || file >= chess.ColBase+chess.BoardSize {
				continue
			}
			pawnSq := chess.MakeSquare(file, to.Rank())
			if board.At(pawnSq) == chess.MakeColouredPiece(opponent, chess.Pawn) {
				tries++
				moves = append(moves, fmt.Sprintf("%s-%s (en passant)", pawnSq, target))
			}
		}
	}

	// Regular diagonal captures: every opposing pawn threatens its two
	// forward-diagonal squares; each occupied one held by the other side
	// is a try. Blocking, pins and check are deliberately ignored.
	dir := 1
	if opponent == chess.Black {
		dir = -1
	}
	for i := 0; i < chess.NumSquares; i++ {
		sq := chess.Square(i)
		if board.At(sq) != chess.MakeColouredPiece(opponent, chess.Pawn) {
			continue
		}
		captureRank := sq.Rank() + dir
		if captureRank < 1 || captureRank > chess.BoardSize {
			continue
		}
		for _, file := range []byte{sq.File() - 1, sq.File() + 1} {
			if file < chess.ColBase || file >= chess.ColBase+chess.BoardSize {
				continue
			}
			capSq := chess.MakeSquare(file, captureRank)
			target := board.At(capSq)
			if target != chess.Empty && chess.ExtractColour(target) != opponent {
				tries++
				moves = append(moves, fmt.Sprintf("%s-%s", sq, capSq))
			}
		}
	}

	return tries, moves
}
