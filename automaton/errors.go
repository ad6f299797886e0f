package automaton

import (
	"errors"
	"fmt"
)

// Sentinel causes for ParseError. Compile never returns these directly;
// they are always wrapped in a *ParseError that carries the offending
// position, per the "returned to the caller at compile time" propagation
// policy for query-registration failures.
var (
	ErrUnrecognizedSyntax           = errors.New("unrecognized syntax")
	ErrBoundedRepetitionUnsupported = errors.New("bounded repetition is not supported")
	ErrEmptyPath                    = errors.New("path is empty")
)

// ErrAlphabetMismatch is the value DFA.Accepts (the test-only acceptance
// helper) panics with when asked to step on a label no rule in the compiled query ever
// mentions. Unlike ParseError, this signals a programming error on the
// caller's part, not a malformed query: a correctly built driver never
// calls Accepts with a label outside the DFA's own alphabet.
var ErrAlphabetMismatch = errors.New("automaton: label outside compiled alphabet")

// ParseError reports a query compilation failure at a specific rune offset
// in the source query string.
type ParseError struct {
	Pos int
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("automaton: %s at position %d", e.Err, e.Pos)
}

func (e *ParseError) Unwrap() error { return e.Err }
