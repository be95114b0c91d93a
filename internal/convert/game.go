// Package convert assembles classified trial records into a chess game,
// driving the board forward one ply at a time and rendering each move.
package convert

// Meta carries the header values supplied by the caller. The converter
// inserts them verbatim into the game tags without validation; defaulting
// is the caller's concern.
type Meta struct {
	Event string
	Site  string
	Date  string
	White string
	Black string
}

// Game is the assembled conversion result: the seven header tags and the
// per-side move texts. For Kriegspiel games the move texts carry their
// umpire annotations inline.
type Game struct {
	Tags   map[string]string
	White  []string
	Black  []string
	Result string
}

// NewGame creates an empty game.
func NewGame() *Game {
	return &Game{Tags: make(map[string]string)}
}

// SetTag sets a tag value.
func (g *Game) SetTag(name, value string) {
	g.Tags[name] = value
}

// GetTag returns a tag value, or empty string if not present.
func (g *Game) GetTag(name string) string {
	return g.Tags[name]
}

// MoveCount returns the number of full moves, counting a trailing
// unanswered white move as one.
func (g *Game) MoveCount() int {
	if len(g.White) >= len(g.Black) {
		return len(g.White)
	}
	return len(g.Black)
}

// appendMove adds a rendered ply to the mover's list.
func (g *Game) appendMove(mover int, text string) {
	if mover == 1 {
		g.White = append(g.White, text)
	} else {
		g.Black = append(g.Black, text)
	}
}
