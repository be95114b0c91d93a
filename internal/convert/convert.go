package convert

import (
	"strings"

	"github.com/lgbarn/trl2pgn/internal/chess"
	"github.com/lgbarn/trl2pgn/internal/diag"
	"github.com/lgbarn/trl2pgn/internal/errors"
	"github.com/lgbarn/trl2pgn/internal/notation"
	"github.com/lgbarn/trl2pgn/internal/trial"
)

// Variant tag values emitted for the supported game identifiers.
const (
	VariantTagChess      = "Chess"
	VariantTagKriegspiel = "Kriegspiel (chess)"
)

// Convert translates the full content of a trial file into a Game.
//
// The first trace line selects the variant; an unsupported identifier is
// the only fatal error and yields no game at all. Every other irregularity
// is recorded on log and conversion continues. Conversion is one-shot,
// sequential and deterministic.
func Convert(content string, meta Meta, log *diag.Log) (*Game, error) {
	variant, err := trial.ParseVariant(content)
	if err != nil {
		return nil, err
	}

	events := classifyAll(trial.MoveRecords(content), log)
	board := boardFromSetup(events, log)

	game := NewGame()
	switch variant {
	case trial.VariantChess:
		game.SetTag("Variant", VariantTagChess)
		assembleChess(game, events, board)
	case trial.VariantKriegspiel:
		game.SetTag("Variant", VariantTagKriegspiel)
		assembleKriegspiel(game, events, board, log)
	}

	game.Result = trial.ParseResult(content)
	game.SetTag("Event", meta.Event)
	game.SetTag("Site", meta.Site)
	game.SetTag("Date", meta.Date)
	game.SetTag("White", meta.White)
	game.SetTag("Black", meta.Black)
	game.SetTag("Result", game.Result)

	return game, nil
}

// classifyAll parses every move-tagged line, downgrading classification
// failures (coordinates off the board) to skipped unparsable records so
// the record sequence keeps its positions for the Kriegspiel cursor.
func classifyAll(lines []string, log *diag.Log) []*trial.Record {
	events := make([]*trial.Record, len(lines))
	for i, line := range lines {
		rec, err := trial.Classify(line)
		if err != nil {
			recErr := &errors.RecordError{Err: err, Line: i + 1, Record: line}
			log.Warnf("skipping malformed record: %v", recErr)
			rec = &trial.Record{Kind: trial.Unparsable, Raw: line}
		}
		events[i] = rec
	}
	return events
}

// boardFromSetup reconstructs the starting board from the setup records.
// A mismatch against the canonical arrangement is reported as a warning;
// conversion continues with whatever was actually parsed.
func boardFromSetup(events []*trial.Record, log *diag.Log) *chess.Board {
	board := chess.NewBoard()
	for _, rec := range events {
		if rec.Kind != trial.Setup || rec.Placed == 0 {
			continue
		}
		piece, err := chess.DecodePieceCode(rec.Placed)
		if err != nil {
			log.Warnf("setup record %q: %v", rec.Raw, err)
			continue
		}
		board.Place(rec.To, piece)
	}

	if !board.Equal(chess.InitialBoard()) {
		log.Warnf("initial board setup does not match the standard arrangement:\n%s", board)
	}
	return board
}

// assembleChess runs the orthodox pipeline: setup and unparsable records
// are skipped, every successful ply advances the board and is rendered
// without umpire annotation. Illegal-move buffering does not apply.
func assembleChess(game *Game, events []*trial.Record, board *chess.Board) {
	for _, rec := range events {
		if !rec.IsPlayerMove() {
			continue
		}
		rendered, next := notation.Render(board, rec, nil)
		game.appendMove(rec.Mover, rendered.Text)
		board = next
	}
}

// assembleKriegspiel runs the hidden-information pipeline. Rejected
// attempts are buffered, do not advance the board and do not count as a
// ply; they are attached to the next successful move of either side. A
// promotion continuation record (from == to == the previous destination)
// is merged into the move it completes.
func assembleKriegspiel(game *Game, events []*trial.Record, board *chess.Board, log *diag.Log) {
	var pending []string

	for i := 0; i < len(events); i++ {
		rec := events[i]
		switch rec.Kind {
		case trial.IllegalAttempt:
			if text, ok := notation.IllegalAttemptText(board, rec.From, rec.To); ok {
				pending = append(pending, text)
			} else {
				log.Warnf("dropping illegal attempt from empty square %s: %q", rec.From, rec.Raw)
			}

		case trial.Normal:
			mv := *rec
			if next := peekPromotion(events, i, rec.To); next != nil {
				mv.Promotion = next.Promotion
				i++
			}
			rendered, nextBoard := notation.Render(board, &mv, pending)
			game.appendMove(rec.Mover, rendered.Annotated())
			if len(rendered.TryMoves) > 0 {
				log.Warnf("pawn tries after %s: %s", rendered.Text, strings.Join(rendered.TryMoves, ", "))
			}
			pending = nil
			board = nextBoard
		}
	}
}

// peekPromotion returns the record following index i when it is a
// promotion continuation of a move that just landed on dest.
func peekPromotion(events []*trial.Record, i int, dest chess.Square) *trial.Record {
	if i+1 >= len(events) {
		return nil
	}
	next := events[i+1]
	if next.IsPlayerMove() && next.Promotion != 0 && next.From == dest && next.To == dest {
		return next
	}
	return nil
}
