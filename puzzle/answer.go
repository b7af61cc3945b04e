package puzzle

import (
	"context"
	"fmt"
	"strings"
)

// Answer is one printed result. Template carries a "{}" placeholder that
// String replaces with Value.
type Answer struct {
	Part     int
	Template string
	Value    any
}

// String renders the answer body without the "Day N, Part K:" prefix.
func (a Answer) String() string {
	return strings.Replace(a.Template, "{}", fmt.Sprint(a.Value), 1)
}

// Line renders the full output line for day.
func (a Answer) Line(day int) string {
	return fmt.Sprintf("Day %d, Part %d: %s", day, a.Part, a)
}

// Solver solves both parts of one day.
//
// Solve returns the answers it managed to compute in part order together
// with any error, so a failing part 2 does not hide a part 1 answer.
type Solver interface {
	Day() int
	Solve(ctx context.Context, in *Input) ([]Answer, error)
}
