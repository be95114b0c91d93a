// Package output serialises converted games as PGN text.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/trl2pgn/internal/convert"
)

// sevenTagRoster is the fixed header tag order.
var sevenTagRoster = []string{"Event", "Site", "Date", "White", "Black", "Variant", "Result"}

// GameWriter is the interface for writing converted games to output.
type GameWriter interface {
	// WriteGame writes a single game to the output.
	WriteGame(game *convert.Game) error
}

// PGNWriter writes games in PGN format: the seven tag roster, a blank
// line, one numbered line per full move, and the trailing result token.
type PGNWriter struct {
	w io.Writer
}

// NewPGNWriter creates a new PGN writer.
func NewPGNWriter(w io.Writer) *PGNWriter {
	return &PGNWriter{w: w}
}

// WriteGame writes a game in PGN format.
func (pw *PGNWriter) WriteGame(game *convert.Game) error {
	_, err := io.WriteString(pw.w, FormatGame(game))
	return err
}

// FormatGame renders a game as PGN text. Move texts are emitted verbatim:
// the orthodox pipeline builds them bare and the Kriegspiel pipeline keeps
// the bracketed umpire annotations inline.
func FormatGame(game *convert.Game) string {
	var sb strings.Builder

	for _, tag := range sevenTagRoster {
		value := game.GetTag(tag)
		if value == "" {
			value = "?"
		}
		fmt.Fprintf(&sb, "[%s \"%s\"]\n", tag, escapeTagValue(value))
	}
	sb.WriteByte('\n')

	for i := 0; i < game.MoveCount(); i++ {
		fmt.Fprintf(&sb, "%d. ", i+1)
		if i < len(game.White) {
			sb.WriteString(game.White[i])
			sb.WriteByte(' ')
		}
		if i < len(game.Black) {
			sb.WriteString(game.Black[i])
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}

	sb.WriteString(game.Result)
	sb.WriteByte('\n')
	return sb.String()
}

// escapeTagValue escapes special characters in tag values.
func escapeTagValue(s string) string {
	// Fast path: if no escaping needed, return original string
	if !strings.ContainsAny(s, "\\\"") {
		return s
	}
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' || s[i] == '"' {
			sb.WriteByte('\\')
		}
		sb.WriteByte(s[i])
	}
	return sb.String()
}
