package puzzles_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent2023/puzzles"
)

func TestRegistry(t *testing.T) {
	reg, err := puzzles.Registry()
	require.NoError(t, err)

	want := make([]int, puzzles.Days)
	for i := range want {
		want[i] = i + 1
	}
	if diff := cmp.Diff(want, reg.Days()); diff != "" {
		t.Errorf("registered days mismatch (-want +got):\n%s", diff)
	}
	for _, d := range want {
		s, err := reg.Lookup(d)
		require.NoError(t, err)
		require.Equal(t, d, s.Day())
	}
}
