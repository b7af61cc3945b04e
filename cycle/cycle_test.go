package cycle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent2023/cycle"
)

func identity(x int) int { return x }

// rho builds x -> x+1 on a tail of length tail feeding a loop of length loop.
func rho(tail, loop int) func(int) int {
	return func(x int) int {
		if x+1 < tail+loop {
			return x + 1
		}
		return tail
	}
}

func TestDetect(t *testing.T) {
	c, states := cycle.Detect(0, rho(3, 4), identity)
	assert.Equal(t, cycle.Cycle{Start: 3, Length: 4}, c)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6}, states)

	c, _ = cycle.Detect(0, identity, identity)
	assert.Equal(t, cycle.Cycle{Start: 0, Length: 1}, c)
}

func TestProject(t *testing.T) {
	c := cycle.Cycle{Start: 3, Length: 4}
	for target, want := range map[int]int{0: 0, 2: 2, 3: 3, 6: 6, 7: 3, 10: 6, 1_000_000_000: 3 + (1_000_000_000-3)%4} {
		got, err := c.Project(target)
		require.NoError(t, err)
		assert.Equal(t, want, got, "target %d", target)
	}

	_, err := cycle.Cycle{Start: 1}.Project(5)
	require.ErrorIs(t, err, cycle.ErrZeroLength)
	_, err = c.Project(-1)
	require.ErrorIs(t, err, cycle.ErrNegativeTarget)
}

// TestRun_AgreesWithSimulation checks projection against brute force on
// several affine maps modulo m, which are eventually periodic.
func TestRun_AgreesWithSimulation(t *testing.T) {
	type affine struct{ a, b, m, seed int }
	for _, f := range []affine{{3, 1, 97, 5}, {2, 0, 96, 1}, {5, 7, 1000, 11}, {6, 4, 36, 2}, {1, 1, 13, 0}} {
		step := func(x int) int { return (f.a*x + f.b) % f.m }
		for _, n := range []int{0, 1, 7, 50, 333, 2500} {
			want := f.seed
			for i := 0; i < n; i++ {
				want = step(want)
			}
			got, err := cycle.Run(f.seed, step, identity, n)
			require.NoError(t, err)
			assert.Equal(t, want, got, "map %+v n=%d", f, n)
		}
	}

	_, err := cycle.Run(0, identity, identity, -3)
	require.ErrorIs(t, err, cycle.ErrNegativeTarget)
}

func TestRun_SliceStateByHash(t *testing.T) {
	// rotate a slice left; period equals its length
	rotate := func(s []int) []int { return append(append([]int{}, s[1:]...), s[0]) }
	key := func(s []int) [5]int { return [5]int(s) }
	got, err := cycle.Run([]int{1, 2, 3, 4, 5}, rotate, key, 1_000_000_002)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4, 5, 1, 2}, got)

	got, err = cycle.Run([]int{1, 2, 3, 4, 5}, rotate, func(s []int) any { return cycle.Hash(&s) }, 1_000_000_002)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4, 5, 1, 2}, got)
}

func TestHash(t *testing.T) {
	a := [][]byte{[]byte("O.#"), []byte("..O")}
	b := [][]byte{[]byte("O.#"), []byte("..O")}
	c := [][]byte{[]byte("O.#"), []byte(".O.")}
	assert.Equal(t, cycle.Hash(&a), cycle.Hash(&b))
	assert.NotEqual(t, cycle.Hash(&a), cycle.Hash(&c))
}

func TestGCDLCM(t *testing.T) {
	assert.Equal(t, 6, cycle.GCD(54, -24))
	assert.Equal(t, int64(0), cycle.GCD[int64](0, 0))

	l, err := cycle.LCM(2, 3, 4)
	require.NoError(t, err)
	assert.Equal(t, 12, l)

	big, err := cycle.LCM[int64](18_023, 19_637, 21_251, 16_409, 11_567, 14_257)
	require.NoError(t, err)
	assert.Equal(t, int64(14449445933179), big)

	_, err = cycle.LCM[int]()
	require.ErrorIs(t, err, cycle.ErrZeroLength)
	_, err = cycle.LCM(4, 0)
	require.ErrorIs(t, err, cycle.ErrZeroLength)
}
