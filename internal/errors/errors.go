// Package errors provides sentinel errors and error types for the trl2pgn tool.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrUnsupportedVariant indicates a trace whose first line names a game
	// this converter cannot translate. It is the only fatal conversion error.
	ErrUnsupportedVariant = errors.New("unsupported game variant")

	// ErrInvalidCoordinate indicates a square index or label outside the board.
	ErrInvalidCoordinate = errors.New("invalid coordinate")

	// ErrMalformedRecord indicates a move record missing mandatory fields.
	ErrMalformedRecord = errors.New("malformed trace record")

	// ErrUnknownPiece indicates a piece code outside the recognised table.
	ErrUnknownPiece = errors.New("unknown piece code")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// RecordError wraps errors with trace context: the line number in the
// source file and the raw record text. It implements the error interface
// and supports unwrapping via errors.Is() and errors.As().
type RecordError struct {
	Err    error  // The underlying error
	Line   int    // 1-based line number in the trace (0 if not applicable)
	Record string // The raw record text (if applicable)
}

// Error returns a formatted error message including all available context.
func (e *RecordError) Error() string {
	var parts []string

	if e.Line > 0 {
		parts = append(parts, fmt.Sprintf("line %d", e.Line))
	}
	if e.Record != "" {
		parts = append(parts, fmt.Sprintf("record %q", e.Record))
	}

	context := strings.Join(parts, ", ")

	if e.Err != nil {
		if context != "" {
			return fmt.Sprintf("%s: %v", context, e.Err)
		}
		return e.Err.Error()
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the RecordError wrapper.
func (e *RecordError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
