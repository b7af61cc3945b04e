package interval

import (
	"errors"
	"fmt"
	"slices"

	"golang.org/x/exp/constraints"
)

// ErrEmptyRange is returned when a constructor would produce a range with
// Hi < Lo.
var ErrEmptyRange = errors.New("interval: hi below lo")

// Range is the half-open integer interval [Lo, Hi). Lo == Hi is empty.
type Range[T constraints.Integer] struct {
	Lo, Hi T
}

// New returns [lo, hi). A reversed pair is ErrEmptyRange.
func New[T constraints.Integer](lo, hi T) (Range[T], error) {
	if hi < lo {
		return Range[T]{}, fmt.Errorf("%w: [%v, %v)", ErrEmptyRange, lo, hi)
	}

	return Range[T]{Lo: lo, Hi: hi}, nil
}

// FromLength returns [start, start+n). A negative n is ErrEmptyRange.
func FromLength[T constraints.Integer](start, n T) (Range[T], error) {
	return New(start, start+n)
}

// Len is the number of integers in r.
func (r Range[T]) Len() T {
	if r.Hi <= r.Lo {
		return 0
	}

	return r.Hi - r.Lo
}

// Empty reports whether r contains no integer.
func (r Range[T]) Empty() bool { return r.Hi <= r.Lo }

// Contains reports whether lo <= v < hi.
func (r Range[T]) Contains(v T) bool { return r.Lo <= v && v < r.Hi }

// Intersect returns the overlap of r and o and whether it is non-empty.
func (r Range[T]) Intersect(o Range[T]) (Range[T], bool) {
	out := Range[T]{Lo: max(r.Lo, o.Lo), Hi: min(r.Hi, o.Hi)}
	if out.Empty() {
		return Range[T]{}, false
	}

	return out, true
}

// Split cuts r at p into [Lo, p) and [p, Hi). Pieces that would be empty
// are omitted, so a point outside (Lo, Hi) returns r unchanged.
func (r Range[T]) Split(p T) []Range[T] {
	if r.Empty() {
		return nil
	}
	if p <= r.Lo || p >= r.Hi {
		return []Range[T]{r}
	}

	return []Range[T]{{Lo: r.Lo, Hi: p}, {Lo: p, Hi: r.Hi}}
}

// SplitAt cuts r at every point, in any order, and returns the non-empty
// pieces in ascending order. The pieces partition r exactly.
func (r Range[T]) SplitAt(points ...T) []Range[T] {
	if r.Empty() {
		return nil
	}
	cuts := slices.Clone(points)
	slices.Sort(cuts)
	out := make([]Range[T], 0, len(cuts)+1)
	lo := r.Lo
	for _, p := range cuts {
		if p <= lo || p >= r.Hi {
			continue
		}
		out = append(out, Range[T]{Lo: lo, Hi: p})
		lo = p
	}

	return append(out, Range[T]{Lo: lo, Hi: r.Hi})
}

// Shift translates r by delta.
func (r Range[T]) Shift(delta T) Range[T] {
	return Range[T]{Lo: r.Lo + delta, Hi: r.Hi + delta}
}

func (r Range[T]) String() string { return fmt.Sprintf("[%v, %v)", r.Lo, r.Hi) }

// Merge sorts rs and coalesces overlapping or touching ranges. Empty
// ranges are dropped. The input slice is not modified.
func Merge[T constraints.Integer](rs []Range[T]) []Range[T] {
	sorted := make([]Range[T], 0, len(rs))
	for _, r := range rs {
		if !r.Empty() {
			sorted = append(sorted, r)
		}
	}
	slices.SortFunc(sorted, func(a, b Range[T]) int {
		switch {
		case a.Lo < b.Lo:
			return -1
		case a.Lo > b.Lo:
			return 1
		}
		return 0
	})

	var out []Range[T]
	for _, r := range sorted {
		if n := len(out); n > 0 && r.Lo <= out[n-1].Hi {
			out[n-1].Hi = max(out[n-1].Hi, r.Hi)
			continue
		}
		out = append(out, r)
	}

	return out
}

// Total is the summed length of rs; overlaps count more than once.
func Total[T constraints.Integer](rs []Range[T]) T {
	var n T
	for _, r := range rs {
		n += r.Len()
	}

	return n
}
