package convert

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lgbarn/trl2pgn/internal/chess"
	"github.com/lgbarn/trl2pgn/internal/diag"
	"github.com/lgbarn/trl2pgn/internal/errors"
	"github.com/lgbarn/trl2pgn/internal/testutil"
	"github.com/lgbarn/trl2pgn/internal/trial"
)

var testMeta = Meta{
	Event: "test.trl",
	Site:  "Ludii",
	Date:  "2024.01.01",
	White: "Player 1",
	Black: "Player 2",
}

func chessTrace(lines ...string) string {
	all := append(testutil.CanonicalSetup(), lines...)
	return testutil.Trace(testutil.ChessVariantLine, all...)
}

func kriegspielTrace(lines ...string) string {
	all := append(testutil.CanonicalSetup(), lines...)
	return testutil.Trace(testutil.KriegspielVariantLine, all...)
}

func TestConvertOrthodoxGame(t *testing.T) {
	content := chessTrace(
		testutil.MoveLine(1, 12, 28), // e2-e4
		testutil.MoveLine(2, 52, 36), // e7-e5
		testutil.MoveLine(1, 6, 21),  // Ng1-f3
		testutil.WinnerLine(1),
	)

	log := diag.New()
	game, err := Convert(content, testMeta, log)
	require.NoError(t, err)

	assert.Equal(t, "Chess", game.GetTag("Variant"))
	assert.Equal(t, []string{"e4", "Nf3"}, game.White)
	assert.Equal(t, []string{"e5"}, game.Black)
	assert.Equal(t, "1-0", game.Result)
	assert.Equal(t, 0, log.Len())
}

func TestConvertHeaderTags(t *testing.T) {
	content := chessTrace(testutil.WinnerLine(0))

	game, err := Convert(content, testMeta, nil)
	require.NoError(t, err)

	assert.Equal(t, "test.trl", game.GetTag("Event"))
	assert.Equal(t, "Ludii", game.GetTag("Site"))
	assert.Equal(t, "2024.01.01", game.GetTag("Date"))
	assert.Equal(t, "Player 1", game.GetTag("White"))
	assert.Equal(t, "Player 2", game.GetTag("Black"))
	assert.Equal(t, "Chess", game.GetTag("Variant"))
	assert.Equal(t, "1/2-1/2", game.GetTag("Result"))
}

func TestConvertUnsupportedVariant(t *testing.T) {
	content := testutil.Trace("game=/lud/board/war/Shogi.lud",
		testutil.MoveLine(1, 12, 28))

	game, err := Convert(content, testMeta, diag.New())
	require.Error(t, err)
	assert.Nil(t, game)
	assert.ErrorIs(t, err, errors.ErrUnsupportedVariant)
}

func TestConvertNoWinnerRecord(t *testing.T) {
	content := chessTrace(testutil.MoveLine(1, 12, 28))

	game, err := Convert(content, testMeta, nil)
	require.NoError(t, err)
	assert.Equal(t, "*", game.Result)
}

func TestConvertOrthodoxSkipsIllegalRecords(t *testing.T) {
	// Orthodox traces should not carry rejections, but a stray one must
	// not become a ply.
	content := chessTrace(
		testutil.IllegalLine(12, 36),
		testutil.MoveLine(1, 12, 28),
		testutil.WinnerLine(2),
	)

	game, err := Convert(content, testMeta, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"e4"}, game.White)
	assert.Equal(t, "0-1", game.Result)
}

func TestConvertKriegspielAnnotations(t *testing.T) {
	content := kriegspielTrace(
		testutil.MoveLine(1, 12, 28), // e4
		testutil.IllegalLine(52, 36), // black tries e7-e5, rejected
		testutil.MoveLine(2, 51, 43), // d6, carries the rejection
		testutil.MoveLine(1, 28, 36), // e5, giving black the try d6xe5
		testutil.WinnerLine(1),
	)

	log := diag.New()
	game, err := Convert(content, testMeta, log)
	require.NoError(t, err)

	assert.Equal(t, "Kriegspiel (chess)", game.GetTag("Variant"))
	assert.Equal(t, []string{"e4 {}", "e5 {P1}"}, game.White)
	assert.Equal(t, []string{"d6 {:e7-e5}"}, game.Black)
	assert.Equal(t, "1-0", game.Result)
}

func TestConvertKriegspielIllegalBufferCleared(t *testing.T) {
	content := kriegspielTrace(
		testutil.IllegalLine(6, 13),  // Ng1-f2, rejected
		testutil.MoveLine(1, 6, 21),  // Nf3, carries it
		testutil.MoveLine(2, 52, 36), // e5, clean again
	)

	game, err := Convert(content, testMeta, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"Nf3 {:Ng1-f2}"}, game.White)
	assert.Equal(t, []string{"e5 {}"}, game.Black)
}

func TestConvertKriegspielCaptureAndCheck(t *testing.T) {
	content := kriegspielTrace(
		testutil.MoveLine(1, 12, 28), // e4
		testutil.MoveLine(2, 51, 35), // d5
		testutil.MoveLine(1, 28, 35, "Remove:to=35"), // exd5
		testutil.MoveLine(2, 59, 35, "Remove:to=35",
			testutil.NoteBlock("Long diagonal check", 1)), // Qxd5 with check
	)

	game, err := Convert(content, testMeta, nil)
	require.NoError(t, err)
	assert.Equal(t, "exd5 {Xd5}", game.White[1])
	assert.Equal(t, "Qxd5 {Xd5,CL}", game.Black[1])
}

func TestConvertKriegspielPawnTries(t *testing.T) {
	// After 1. e4 d5, black's pawn-try count for white is announced on
	// black's move.
	content := kriegspielTrace(
		testutil.MoveLine(1, 12, 28), // e4
		testutil.MoveLine(2, 51, 35), // d5: white pawn e4 can try exd5
	)

	log := diag.New()
	game, err := Convert(content, testMeta, log)
	require.NoError(t, err)

	assert.Equal(t, []string{"d5 {P1}"}, game.Black)
	require.Equal(t, 1, log.Len())
	assert.Contains(t, log.Entries()[0], "pawn tries after d5")
	assert.Contains(t, log.Entries()[0], "e4-d5")
}

func TestConvertKriegspielPromotionMerge(t *testing.T) {
	trace := testutil.Trace(testutil.KriegspielVariantLine,
		testutil.SetupLine(48, 1), // white pawn a7
		testutil.SetupLine(4, 5),  // white king e1
		testutil.SetupLine(60, 6), // black king e8
		testutil.MoveLine(1, 48, 56),
		testutil.MoveLine(1, 56, 56, "Promote:to=56,what=11"),
		testutil.WinnerLine(1),
	)

	log := diag.New()
	game, err := Convert(trace, testMeta, log)
	require.NoError(t, err)

	assert.Equal(t, []string{"a8=Q {}"}, game.White)
	assert.Equal(t, 1, game.MoveCount(), "the continuation record is not a separate ply")
}

func TestConvertSetupMismatchWarns(t *testing.T) {
	content := testutil.Trace(testutil.ChessVariantLine,
		testutil.SetupLine(4, 5),  // lone white king
		testutil.SetupLine(60, 6), // lone black king
		testutil.MoveLine(1, 4, 12),
	)

	log := diag.New()
	_, err := Convert(content, testMeta, log)
	require.NoError(t, err)

	require.NotZero(t, log.Len())
	assert.Contains(t, log.Entries()[0], "does not match")
}

func TestConvertMalformedRecordSkipped(t *testing.T) {
	content := chessTrace(
		testutil.MoveLine(1, 12, 28),
		testutil.MoveLine(2, 52, 999), // destination off the board
		testutil.MoveLine(1, 6, 21),
	)

	log := diag.New()
	game, err := Convert(content, testMeta, log)
	require.NoError(t, err)

	assert.Equal(t, []string{"e4", "Nf3"}, game.White)
	assert.Empty(t, game.Black)

	var found bool
	for _, e := range log.Entries() {
		if strings.Contains(e, "skipping malformed record") {
			found = true
		}
	}
	assert.True(t, found)
}

func TestConvertKriegspielDropsUnattributableAttempt(t *testing.T) {
	content := kriegspielTrace(
		testutil.IllegalLine(28, 36), // e4 is empty before any move
		testutil.MoveLine(1, 12, 28),
	)

	log := diag.New()
	game, err := Convert(content, testMeta, log)
	require.NoError(t, err)

	assert.Equal(t, []string{"e4 {}"}, game.White)
	require.NotZero(t, log.Len())
	assert.Contains(t, log.Entries()[0], "empty square e4")
}

func TestGameMoveCount(t *testing.T) {
	g := NewGame()
	assert.Equal(t, 0, g.MoveCount())
	g.appendMove(1, "e4")
	assert.Equal(t, 1, g.MoveCount())
	g.appendMove(2, "e5")
	assert.Equal(t, 1, g.MoveCount())
	g.appendMove(1, "Nf3")
	assert.Equal(t, 2, g.MoveCount())
}

func TestBoardFromCanonicalSetup(t *testing.T) {
	log := diag.New()
	events := classifyAll(testutil.CanonicalSetup(), log)
	board := boardFromSetup(events, log)

	assert.True(t, board.Equal(chess.InitialBoard()), "canonical setup records rebuild the standard arrangement")
	assert.Equal(t, 0, log.Len())
}

func TestClassifyAllKeepsPositions(t *testing.T) {
	lines := []string{
		testutil.MoveLine(1, 12, 28),
		testutil.MoveLine(2, 999, 36),
		testutil.MoveLine(1, 6, 21),
	}

	events := classifyAll(lines, nil)
	require.Len(t, events, 3)
	assert.Equal(t, trial.Normal, events[0].Kind)
	assert.Equal(t, trial.Unparsable, events[1].Kind)
	assert.Equal(t, trial.Normal, events[2].Kind)
}
