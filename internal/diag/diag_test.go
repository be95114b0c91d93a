package diag

import (
	"bytes"
	"testing"

	"github.com/lgbarn/trl2pgn/internal/testutil"
)

func TestLogWarnf(t *testing.T) {
	log := New()
	testutil.AssertEqual(t, log.Len(), 0)

	log.Warnf("first %d", 1)
	log.Warnf("second %s", "entry")

	testutil.AssertEqual(t, log.Len(), 2)
	testutil.AssertEqual(t, log.Entries(), []string{"first 1", "second entry"})
}

func TestNilLogDiscards(t *testing.T) {
	var log *Log
	log.Warnf("dropped")
	testutil.AssertEqual(t, log.Len(), 0)
	testutil.AssertTrue(t, log.Entries() == nil)
}

func TestLogWriteTo(t *testing.T) {
	log := New()
	log.Warnf("one")
	log.Warnf("two")

	var buf bytes.Buffer
	n, err := log.WriteTo(&buf)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, buf.String(), "one\ntwo\n")
	testutil.AssertEqual(t, int(n), len("one\ntwo\n"))
}
