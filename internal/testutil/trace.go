package testutil

import (
	"fmt"
	"strings"
)

// Variant identifier lines for building test traces.
const (
	ChessVariantLine      = "game=/lud/board/war/replacement/checkmate/chess/Chess.lud"
	KriegspielVariantLine = "game=/lud/board/war/replacement/checkmate/chess/Kriegspiel (Chess).lud"
)

// MoveLine builds a player move record. Extras are appended verbatim after
// the mandatory fields, e.g. "Remove:to=28" for a capture,
// "Promote:to=60,what=11" for a promotion, or a bracketed note block.
func MoveLine(mover, from, to int, extras ...string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Move=[Move:mover=%d,from=%d,to=%d", mover, from, to)
	for _, e := range extras {
		sb.WriteByte(',')
		sb.WriteString(e)
	}
	sb.WriteByte(']')
	return sb.String()
}

// SetupLine builds a system record placing piece code what on square to.
func SetupLine(to, what int) string {
	return fmt.Sprintf("Move=[Move:mover=0,from=%d,to=%d,what=%d]", to, to, what)
}

// IllegalLine builds a rejected move attempt record.
func IllegalLine(from, to int) string {
	return fmt.Sprintf("Move=[Illegal move:from=%d,to=%d]", from, to)
}

// NoteBlock builds one umpire note block for use as a MoveLine extra.
func NoteBlock(message string, to int) string {
	return fmt.Sprintf("[Note:message=%s,to=%d]", message, to)
}

// WinnerLine builds the trailing result record.
func WinnerLine(winner int) string {
	return fmt.Sprintf("winner=%d", winner)
}

// Trace joins a variant line and records into trial file content.
func Trace(variant string, lines ...string) string {
	all := append([]string{variant}, lines...)
	return strings.Join(all, "\n")
}

// canonicalSetupCodes lists the trace piece code for each of the 32
// occupied squares of the standard arrangement, keyed by square index.
var canonicalSetupCodes = map[int]int{
	// White back rank: R N B Q K B N R
	0: 3, 1: 9, 2: 7, 3: 11, 4: 5, 5: 7, 6: 9, 7: 3,
	// White pawns
	8: 1, 9: 1, 10: 1, 11: 1, 12: 1, 13: 1, 14: 1, 15: 1,
	// Black pawns
	48: 2, 49: 2, 50: 2, 51: 2, 52: 2, 53: 2, 54: 2, 55: 2,
	// Black back rank: R N B Q K B N R
	56: 4, 57: 10, 58: 8, 59: 12, 60: 6, 61: 8, 62: 10, 63: 4,
}

// CanonicalSetup returns the 32 setup records of the standard starting
// arrangement, in square index order.
func CanonicalSetup() []string {
	lines := make([]string, 0, len(canonicalSetupCodes))
	for i := 0; i < 64; i++ {
		if code, ok := canonicalSetupCodes[i]; ok {
			lines = append(lines, SetupLine(i, code))
		}
	}
	return lines
}
