// Package puzzle is the runtime shared by every day: the Solver contract,
// input loading and parsing helpers, the day registry, run configuration
// and the Runner that prints "Day N, Part K: ..." lines.
//
// Errors follow one taxonomy. ErrMalformedInput (usually inside an
// *InputError naming the line) for input that does not parse,
// ErrNoSolution when a search comes up empty, and ErrDegenerate when the
// input breaks an assumption the solution depends on.
package puzzle
