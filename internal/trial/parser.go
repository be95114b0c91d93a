package trial

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/lgbarn/trl2pgn/internal/chess"
	"github.com/lgbarn/trl2pgn/internal/errors"
)

// Field patterns of the Ludii move record format.
var (
	moverRx     = regexp.MustCompile(`mover=(\d+)`)
	fromRx      = regexp.MustCompile(`from=(\d+)`)
	toRx        = regexp.MustCompile(`to=(\d+)`)
	promotionRx = regexp.MustCompile(`Promote:.*?what=(\d+)`)
	noteRx      = regexp.MustCompile(`\[Note:message=(.*?),to=(\d+)\]`)
	setupRx     = regexp.MustCompile(`to=(\d+),.*?what=(\d+)`)
)

// Markers scanned for anywhere in a record line.
const (
	illegalMarker      = "Illegal move"
	removeMarker       = "Remove:"
	capturedMarker     = "CapturedPiece"
	resultMarkerPrefix = "winner="
)

// Classify extracts the structured form of one raw trace line.
//
// Extraction order: an illegal-move marker short-circuits everything and
// yields an IllegalAttempt carrying only from/to. Otherwise mover, from
// and to are mandatory; a line missing any of them is Unparsable. Records
// whose mover is not a player are Setup placements; everything else is a
// Normal ply with capture, promotion and note fields attached.
//
// The only error returned is a coordinate outside the board, wrapping
// errors.ErrInvalidCoordinate.
func Classify(line string) (*Record, error) {
	rec := &Record{Raw: line}

	if strings.Contains(line, illegalMarker) {
		from, fromOK := matchInt(fromRx, line)
		to, toOK := matchInt(toRx, line)
		if !fromOK || !toOK {
			rec.Kind = Unparsable
			return rec, nil
		}
		var err error
		if rec.From, err = chess.SquareFromIndex(from); err != nil {
			return nil, err
		}
		if rec.To, err = chess.SquareFromIndex(to); err != nil {
			return nil, err
		}
		rec.Kind = IllegalAttempt
		return rec, nil
	}

	mover, moverOK := matchInt(moverRx, line)
	from, fromOK := matchInt(fromRx, line)
	to, toOK := matchInt(toRx, line)
	if !moverOK || !fromOK || !toOK {
		rec.Kind = Unparsable
		return rec, nil
	}

	rec.Mover = mover
	rec.IsCapture = strings.Contains(line, removeMarker) || strings.Contains(line, capturedMarker)
	if code, ok := matchInt(promotionRx, line); ok {
		rec.Promotion = code
	}
	rec.Notes = extractNotes(line)

	if mover != 1 && mover != 2 {
		rec.Kind = Setup
		if m := setupRx.FindStringSubmatch(line); m != nil {
			placedTo, _ := strconv.Atoi(m[1])
			placed, _ := strconv.Atoi(m[2])
			sq, err := chess.SquareFromIndex(placedTo)
			if err != nil {
				return nil, err
			}
			rec.To = sq
			rec.Placed = placed
		}
		return rec, nil
	}

	var err error
	if rec.From, err = chess.SquareFromIndex(from); err != nil {
		return nil, err
	}
	if rec.To, err = chess.SquareFromIndex(to); err != nil {
		return nil, err
	}
	rec.Kind = Normal
	return rec, nil
}

// ParseResult scans the trace content in reverse for the last winner
// record and maps it to a PGN result token. Absent or unrecognised
// winners yield "*".
func ParseResult(content string) string {
	lines := strings.Split(content, "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		line := strings.TrimSpace(lines[i])
		if !strings.HasPrefix(line, resultMarkerPrefix) {
			continue
		}
		switch strings.TrimPrefix(line, resultMarkerPrefix) {
		case "0":
			return "1/2-1/2"
		case "1":
			return "1-0"
		case "2":
			return "0-1"
		default:
			return "*"
		}
	}
	return "*"
}

// Variant identifiers accepted on the first trace line.
const (
	VariantChess      = "game=/lud/board/war/replacement/checkmate/chess/Chess.lud"
	VariantKriegspiel = "game=/lud/board/war/replacement/checkmate/chess/Kriegspiel (Chess).lud"
)

// ParseVariant reads the game identifier from the first line of the trace.
// Any identifier other than the two supported ones is a fatal
// errors.ErrUnsupportedVariant.
func ParseVariant(content string) (string, error) {
	firstLine := content
	if i := strings.IndexByte(content, '\n'); i >= 0 {
		firstLine = content[:i]
	}
	firstLine = strings.TrimSpace(firstLine)

	switch firstLine {
	case VariantChess, VariantKriegspiel:
		return firstLine, nil
	}
	return "", errors.Wrapf(errors.ErrUnsupportedVariant, "%q", firstLine)
}

// MoveRecords returns the move-tagged lines of the trace in order.
func MoveRecords(content string) []string {
	var records []string
	for _, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(line, MovePrefix) {
			records = append(records, line)
		}
	}
	return records
}

// extractNotes collects the bracketed note blocks of a record, grouping
// identical messages: a message sent to both players collapses to a single
// note with recipient Both. First-encounter order is preserved.
func extractNotes(line string) []Note {
	matches := noteRx.FindAllStringSubmatch(line, -1)
	if matches == nil {
		return nil
	}

	order := make([]string, 0, len(matches))
	recipients := make(map[string]map[Recipient]bool)
	for _, m := range matches {
		message := m[1]
		player, _ := strconv.Atoi(m[2])
		to := Player1
		if player == 2 {
			to = Player2
		}
		if recipients[message] == nil {
			recipients[message] = make(map[Recipient]bool)
			order = append(order, message)
		}
		recipients[message][to] = true
	}

	notes := make([]Note, 0, len(order))
	for _, message := range order {
		tos := recipients[message]
		switch {
		case len(tos) > 1:
			notes = append(notes, Note{Message: message, To: Both})
		case tos[Player1]:
			notes = append(notes, Note{Message: message, To: Player1})
		default:
			notes = append(notes, Note{Message: message, To: Player2})
		}
	}
	return notes
}

// matchInt applies a single-group pattern and converts the capture to int.
func matchInt(rx *regexp.Regexp, s string) (int, bool) {
	m := rx.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}
