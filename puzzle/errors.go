package puzzle

import (
	"errors"
	"fmt"
)

// Error taxonomy shared by every day.
var (
	// ErrMalformedInput marks input that does not parse. Returned wrapped in
	// an *InputError when the offending line is known.
	ErrMalformedInput = errors.New("puzzle: malformed input")

	// ErrNoSolution marks a search that exhausted its space without an answer.
	ErrNoSolution = errors.New("puzzle: no solution")

	// ErrDegenerate marks input that parses but violates a structural
	// assumption the solution relies on (zero-length period, singular system).
	ErrDegenerate = errors.New("puzzle: degenerate input")

	// ErrDuplicateDay is returned when two solvers register the same day.
	ErrDuplicateDay = errors.New("puzzle: day already registered")

	// ErrUnknownDay is returned by Registry.Lookup for an unregistered day.
	ErrUnknownDay = errors.New("puzzle: day not implemented")
)

// InputError locates a parse failure. Line is 1-based; 0 means the input as
// a whole. It matches both ErrMalformedInput and its cause under errors.Is.
type InputError struct {
	Line int
	Text string
	Err  error
}

func (e *InputError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("puzzle: malformed input: %v", e.Err)
	}

	return fmt.Sprintf("puzzle: malformed input at line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *InputError) Unwrap() []error { return []error{ErrMalformedInput, e.Err} }

// Malformed builds an *InputError for line (1-based) with a formatted cause.
func Malformed(line int, text, format string, args ...any) error {
	return &InputError{Line: line, Text: text, Err: fmt.Errorf(format, args...)}
}
