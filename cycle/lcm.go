package cycle

import "golang.org/x/exp/constraints"

// GCD returns the greatest common divisor of |a| and |b|; GCD(0, 0) == 0.
func GCD[T constraints.Integer](a, b T) T {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// LCM returns the least common multiple of the given periods, the moment
// several independent cycles first line up.
func LCM[T constraints.Integer](periods ...T) (T, error) {
	if len(periods) == 0 {
		return 0, ErrZeroLength
	}
	out := T(1)
	for _, p := range periods {
		if p == 0 {
			return 0, ErrZeroLength
		}
		if p < 0 {
			p = -p
		}
		out = out / GCD(out, p) * p
	}

	return out, nil
}
