// Package trial parses Ludii trial (.trl) trace records.
//
// A trial file carries one record per line: a game identifier on the first
// line, "Move=..." records for setup placements, moves and illegal move
// attempts, and a trailing "winner=" record. This package classifies one
// raw record at a time; assembling the records into a game is the job of
// the convert package.
package trial

import "github.com/lgbarn/trl2pgn/internal/chess"

// MovePrefix marks the trace lines that describe a ply or setup placement.
const MovePrefix = "Move="

// Kind discriminates the record variants a trace line can hold.
type Kind int

const (
	// Unparsable marks a move-tagged line missing mandatory fields.
	Unparsable Kind = iota

	// Setup marks a system record placing a piece before the game starts.
	Setup

	// Normal marks a successful ply by player 1 or 2.
	Normal

	// IllegalAttempt marks a rejected move attempt (Kriegspiel only).
	IllegalAttempt
)

// String returns the string representation of a record kind.
func (k Kind) String() string {
	names := []string{"Unparsable", "Setup", "Normal", "IllegalAttempt"}
	if int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Recipient identifies which player an umpire note was reported to.
type Recipient int

const (
	Player1 Recipient = iota + 1
	Player2
	Both
)

// String returns the string representation of a recipient.
func (r Recipient) String() string {
	switch r {
	case Player1:
		return "player 1"
	case Player2:
		return "player 2"
	case Both:
		return "player 1 & player 2"
	}
	return "unknown"
}

// Note is one umpire message attached to a move record. A message the
// umpire reported to both players with identical text appears once with
// recipient Both.
type Note struct {
	Message string
	To      Recipient
}

// Record is the structured form of one trace line.
type Record struct {
	Kind Kind

	// Raw is the original line, kept for diagnostics.
	Raw string

	// Mover is the trace player number. 1 and 2 are the players; any other
	// value marks a system record. Not extracted for IllegalAttempt.
	Mover int

	// From and To are the move squares. For IllegalAttempt these are the
	// only extracted fields.
	From chess.Square
	To   chess.Square

	// IsCapture reports whether the record carries a piece-removal marker.
	IsCapture bool

	// Promotion is the trace piece code following a promote marker,
	// 0 when the record promotes nothing.
	Promotion int

	// Placed is the trace piece code a Setup record puts on To,
	// 0 when not present.
	Placed int

	// Notes are the umpire messages, in encounter order.
	Notes []Note
}

// IsPlayerMove reports whether the record is a ply by player 1 or 2.
func (r *Record) IsPlayerMove() bool {
	return r.Kind == Normal
}
