package puzzle

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/advent2023/gridgraph"
)

// Input is a day's puzzle text plus the run settings a solver may need.
type Input struct {
	Day     int
	Example bool
	Workers int
	text    string
}

// NewInput wraps raw text. CRLF line endings are normalised.
func NewInput(text string) *Input {
	return &Input{text: strings.ReplaceAll(text, "\r\n", "\n")}
}

// Text is the raw input with trailing newlines removed.
func (in *Input) Text() string { return strings.TrimRight(in.text, "\n") }

// Lines splits Text on newlines. Empty input yields no lines.
func (in *Input) Lines() []string {
	t := in.Text()
	if t == "" {
		return nil
	}

	return strings.Split(t, "\n")
}

// Blocks splits the input on blank lines; each block is its own line slice.
func (in *Input) Blocks() [][]string {
	var (
		out [][]string
		cur []string
	)
	for _, l := range in.Lines() {
		if strings.TrimSpace(l) == "" {
			if len(cur) > 0 {
				out = append(out, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, l)
	}
	if len(cur) > 0 {
		out = append(out, cur)
	}

	return out
}

// Grid parses the whole input as a character grid. Shape errors are
// reported as *InputError.
func (in *Input) Grid() (*gridgraph.Grid, error) {
	return ParseGrid(in.Lines())
}

// ParseGrid parses lines as a character grid, wrapping shape errors.
func ParseGrid(lines []string) (*gridgraph.Grid, error) {
	g, err := gridgraph.Parse(lines)
	if err != nil {
		return nil, &InputError{Err: err}
	}

	return g, nil
}

// ParseInt parses s (surrounding space ignored) as a base-10 int, reporting
// failures against line (1-based).
func ParseInt(line int, s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, &InputError{Line: line, Text: s, Err: err}
	}

	return v, nil
}

// Fields parses every whitespace- or comma-separated integer in s.
func Fields(line int, s string) ([]int, error) {
	parts := strings.FieldsFunc(s, func(r rune) bool { return r == ' ' || r == ',' || r == '\t' })
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil {
			return nil, &InputError{Line: line, Text: s, Err: err}
		}
		out = append(out, v)
	}

	return out, nil
}

// Cut splits s around the first sep, reporting a missing separator as an
// *InputError against line.
func Cut(line int, s, sep string) (string, string, error) {
	before, after, ok := strings.Cut(s, sep)
	if !ok {
		return "", "", Malformed(line, s, "missing %q", sep)
	}

	return before, after, nil
}
