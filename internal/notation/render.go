package notation

import (
	"fmt"
	"strings"

	"github.com/lgbarn/trl2pgn/internal/chess"
	"github.com/lgbarn/trl2pgn/internal/trial"
)

// Rendered is one translated ply: the bare move text plus the structured
// Kriegspiel annotation fields.
type Rendered struct {
	// Text is the move in algebraic notation, without any annotation.
	Text string

	// CaptureSquare is the lowercase destination label when the move
	// captured, "" otherwise.
	CaptureSquare string

	// CheckMarks holds one uppercase letter per check note, in encounter
	// order, duplicates kept.
	CheckMarks string

	// PawnTries is the opposing pawn-try count after the move. Computed
	// only when the move gives no check.
	PawnTries int

	// TryMoves lists the pawn tries for diagnostic output.
	TryMoves []string

	// Illegal holds the rejected attempts buffered since the previous
	// successful ply.
	Illegal []string
}

// Annotation builds the bracketed umpire annotation. Capture, check and
// pawn-try tokens are comma-joined; buffered illegal attempts follow a
// colon, present only when the buffer is non-empty.
func (r *Rendered) Annotation() string {
	var tokens []string
	if r.CaptureSquare != "" {
		tokens = append(tokens, "X"+r.CaptureSquare)
	}
	if r.CheckMarks != "" {
		tokens = append(tokens, "C"+r.CheckMarks)
	} else if r.PawnTries > 0 {
		tokens = append(tokens, fmt.Sprintf("P%d", r.PawnTries))
	}

	body := strings.Join(tokens, ",")
	if len(r.Illegal) > 0 {
		body += ":" + strings.Join(r.Illegal, ",")
	}
	return "{" + body + "}"
}

// Annotated returns the move text with the umpire annotation appended.
func (r *Rendered) Annotated() string {
	return r.Text + " " + r.Annotation()
}

// Render translates one successful ply into notation and advances the
// board. The returned board is a new snapshot; the input board is left
// untouched and stays valid for callers still holding it.
func Render(board *chess.Board, rec *trial.Record, illegal []string) (*Rendered, *chess.Board) {
	r := &Rendered{Illegal: illegal}

	promotion := decodePromotion(rec, chess.ColourOfPlayer(rec.Mover))
	r.Text = moveText(board, rec)

	next := board.ApplyMove(rec.From, rec.To, promotion)

	if rec.IsCapture {
		r.CaptureSquare = rec.To.String()
	}

	r.CheckMarks = checkMarks(rec.Notes)
	if r.CheckMarks == "" {
		r.PawnTries, r.TryMoves = PawnTries(next, chess.ColourOfPlayer(rec.Mover), rec.From, rec.To)
	}

	return r, next
}

// IllegalAttemptText renders a rejected attempt as "<Letter><from>-<to>",
// with the letter omitted for pawns. It reports false when the origin
// square is empty, in which case the attempt cannot be attributed to a
// piece and is dropped.
func IllegalAttemptText(board *chess.Board, from, to chess.Square) (string, bool) {
	piece := board.At(from)
	if piece == chess.Empty {
		return "", false
	}
	kind := chess.ExtractPiece(piece)
	if kind == chess.Pawn {
		return fmt.Sprintf("%s-%s", from, to), true
	}
	return fmt.Sprintf("%c%s-%s", kind.Letter(), from, to), true
}

// Castling square pairs, matched exactly and independently of the board
// contents. Legality is assumed enforced upstream.
var castlePairs = map[[2]chess.Square]string{
	{chess.MustParseSquare("e1"), chess.MustParseSquare("g1")}: "O-O",
	{chess.MustParseSquare("e1"), chess.MustParseSquare("c1")}: "O-O-O",
	{chess.MustParseSquare("e8"), chess.MustParseSquare("g8")}: "O-O",
	{chess.MustParseSquare("e8"), chess.MustParseSquare("c8")}: "O-O-O",
}

// moveText builds the bare algebraic text of a move against the pre-move
// board.
func moveText(board *chess.Board, rec *trial.Record) string {
	if castle, ok := castlePairs[[2]chess.Square{rec.From, rec.To}]; ok {
		return castle
	}

	piece := board.At(rec.From)
	kind := chess.ExtractPiece(piece)
	if piece == chess.Empty {
		// Unexpectedly empty origin: fall back to a pawn move rather than
		// failing the conversion.
		kind = chess.Pawn
	}

	var sb strings.Builder
	if kind == chess.Pawn {
		if rec.From.File() != rec.To.File() {
			sb.WriteByte(rec.From.File())
			sb.WriteByte('x')
		}
		sb.WriteString(rec.To.String())
	} else {
		sb.WriteByte(kind.Letter())
		sb.WriteString(disambiguator(board, piece, rec.From, rec.To))
		if rec.IsCapture {
			sb.WriteByte('x')
		}
		sb.WriteString(rec.To.String())
	}

	if rec.Promotion != 0 {
		sb.WriteByte('=')
		sb.WriteByte(chess.PieceLetterForCode(rec.Promotion, chess.Queen.Letter()))
	}

	return sb.String()
}

// disambiguator resolves move ambiguity: when other identical pieces could
// geometrically reach the destination, the origin file is appended if it
// distinguishes the mover from every candidate, then the rank, then the
// full origin square.
func disambiguator(board *chess.Board, piece chess.Piece, from, to chess.Square) string {
	kind := chess.ExtractPiece(piece)
	var candidates []chess.Square
	for i := 0; i < chess.NumSquares; i++ {
		sq := chess.Square(i)
		if sq != from && board.At(sq) == piece && canReach(kind, sq, to) {
			candidates = append(candidates, sq)
		}
	}
	if len(candidates) == 0 {
		return ""
	}

	fileDiffers, rankDiffers := true, true
	for _, sq := range candidates {
		if sq.File() == from.File() {
			fileDiffers = false
		}
		if sq.Rank() == from.Rank() {
			rankDiffers = false
		}
	}

	switch {
	case fileDiffers:
		return string(from.File())
	case rankDiffers:
		return fmt.Sprintf("%d", from.Rank())
	default:
		return from.String()
	}
}

// canReach reports whether a piece of the given kind could geometrically
// travel between the squares. Blocking pieces, pins and check are ignored;
// the trace is already legality-checked upstream.
func canReach(kind chess.Piece, from, to chess.Square) bool {
	fd := chess.FileDistance(from, to)
	rd := chess.RankDistance(from, to)
	switch kind {
	case chess.Rook:
		return fd == 0 || rd == 0
	case chess.Knight:
		return (fd == 1 && rd == 2) || (fd == 2 && rd == 1)
	case chess.Bishop:
		return fd == rd
	case chess.Queen:
		return fd == 0 || rd == 0 || fd == rd
	case chess.King:
		return fd <= 1 && rd <= 1
	}
	return true
}

// checkMarks collects the uppercase first letter of the leading word of
// every note mentioning a check, in encounter order.
func checkMarks(notes []trial.Note) string {
	var sb strings.Builder
	for _, note := range notes {
		if !strings.Contains(strings.ToLower(note.Message), "check") {
			continue
		}
		fields := strings.Fields(note.Message)
		if len(fields) == 0 {
			continue
		}
		sb.WriteString(strings.ToUpper(fields[0][:1]))
	}
	return sb.String()
}

// decodePromotion maps the record's promotion code to a coloured piece for
// board placement. An unmapped code promotes to a queen of the mover's
// colour, matching the Q fallback in the rendered text.
func decodePromotion(rec *trial.Record, mover chess.Colour) chess.Piece {
	if rec.Promotion == 0 {
		return chess.Empty
	}
	piece, err := chess.DecodePieceCode(rec.Promotion)
	if err != nil {
		return chess.MakeColouredPiece(mover, chess.Queen)
	}
	return piece
}
