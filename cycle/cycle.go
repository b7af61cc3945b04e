package cycle

import (
	"errors"
	"fmt"
)

var (
	// ErrZeroLength is returned for a cycle of length zero or an LCM over
	// nothing or over a zero period.
	ErrZeroLength = errors.New("cycle: zero-length period")

	// ErrNegativeTarget is returned when a projection target is negative.
	ErrNegativeTarget = errors.New("cycle: negative target")
)

// Cycle describes an eventually periodic sequence: states at indices
// Start and Start+Length are equal, and Start is the first index that repeats.
type Cycle struct {
	Start  int
	Length int
}

// Project maps an index of the infinite sequence to the equivalent index
// within [0, Start+Length).
func (c Cycle) Project(target int) (int, error) {
	if c.Length <= 0 {
		return 0, ErrZeroLength
	}
	if target < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNegativeTarget, target)
	}
	if target < c.Start {
		return target, nil
	}

	return c.Start + (target-c.Start)%c.Length, nil
}

// Detect iterates step from start and records every state until one whose
// key was already seen. It returns the cycle and the recorded prefix
// (states 0 .. Start+Length-1), so states[i] is the value after i steps.
//
// step must be deterministic: the same key always leads to the same next key.
// Detect does not terminate on a sequence that never repeats.
func Detect[S any, K comparable](start S, step func(S) S, key func(S) K) (Cycle, []S) {
	seen := make(map[K]int, 256)
	states := make([]S, 0, 256)
	cur := start
	for i := 0; ; i++ {
		k := key(cur)
		if first, ok := seen[k]; ok {
			return Cycle{Start: first, Length: i - first}, states
		}
		seen[k] = i
		states = append(states, cur)
		cur = step(cur)
	}
}

// Run returns the state after target steps. Short targets inside the
// recorded prefix are answered directly; larger ones are projected onto
// the cycle.
func Run[S any, K comparable](start S, step func(S) S, key func(S) K, target int) (S, error) {
	var zero S
	if target < 0 {
		return zero, fmt.Errorf("%w: %d", ErrNegativeTarget, target)
	}
	c, states := Detect(start, step, key)
	if target < len(states) {
		return states[target], nil
	}
	idx, err := c.Project(target)
	if err != nil {
		return zero, err
	}

	return states[idx], nil
}
