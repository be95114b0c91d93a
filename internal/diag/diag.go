// Package diag provides a per-conversion diagnostics collector.
//
// Conversion irregularities (setup mismatches, skipped records, pawn-try
// details) are warnings, not errors: they never stop a conversion. Each
// conversion owns its own Log, so concurrent conversions never share
// mutable state.
package diag

import (
	"fmt"
	"io"
)

// Log accumulates diagnostic messages for a single conversion.
// A nil *Log is valid and discards everything.
type Log struct {
	entries []string
}

// New creates an empty diagnostics log.
func New() *Log {
	return &Log{}
}

// Warnf records a formatted diagnostic message.
func (l *Log) Warnf(format string, args ...interface{}) {
	if l == nil {
		return
	}
	l.entries = append(l.entries, fmt.Sprintf(format, args...))
}

// Entries returns the recorded messages in order.
func (l *Log) Entries() []string {
	if l == nil {
		return nil
	}
	return l.entries
}

// Len returns the number of recorded messages.
func (l *Log) Len() int {
	if l == nil {
		return 0
	}
	return len(l.entries)
}

// WriteTo writes each entry on its own line to w.
func (l *Log) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, e := range l.Entries() {
		n, err := fmt.Fprintln(w, e)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
