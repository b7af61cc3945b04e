package workpool_test

import (
	"context"
	"errors"
	"strconv"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent2023/interval"
	"github.com/katalvlaran/advent2023/workpool"
)

func TestMapReduce_OrderedFold(t *testing.T) {
	items := make([]int, 100)
	for i := range items {
		items[i] = i
	}
	// concatenation is not commutative: order must match the input
	got, err := workpool.MapReduce(context.Background(), 7, items,
		func(_ context.Context, i int) (string, error) { return strconv.Itoa(i%10), nil },
		func(acc, next string) string { return acc + next },
		"")
	require.NoError(t, err)
	want := ""
	for i := 0; i < 100; i++ {
		want += strconv.Itoa(i % 10)
	}
	assert.Equal(t, want, got)
}

func TestMapReduce_Bounded(t *testing.T) {
	var inFlight, peak atomic.Int32
	items := make([]int, 50)
	_, err := workpool.MapReduce(context.Background(), 3, items,
		func(_ context.Context, _ int) (int, error) {
			n := inFlight.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			defer inFlight.Add(-1)
			return 1, nil
		},
		func(a, b int) int { return a + b }, 0)
	require.NoError(t, err)
	assert.LessOrEqual(t, peak.Load(), int32(3))
}

func TestMapReduce_Error(t *testing.T) {
	boom := errors.New("boom")
	got, err := workpool.MapReduce(context.Background(), 2, []int{1, 2, 3, 4},
		func(_ context.Context, i int) (int, error) {
			if i == 3 {
				return 0, boom
			}
			return i, nil
		},
		func(a, b int) int { return a + b }, -1)
	require.ErrorIs(t, err, boom)
	assert.Equal(t, -1, got)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = workpool.MapReduce(ctx, 2, []int{1, 2}, func(_ context.Context, i int) (int, error) { return i, nil },
		func(a, b int) int { return a + b }, 0)
	require.ErrorIs(t, err, context.Canceled)
}

func TestMap(t *testing.T) {
	got, err := workpool.Map(context.Background(), 0, []string{"a", "bb", "ccc"},
		func(_ context.Context, s string) (int, error) { return len(s), nil })
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestChunks(t *testing.T) {
	assert.Equal(t, []interval.Range[int64]{{Lo: 0, Hi: 4}, {Lo: 4, Hi: 8}, {Lo: 8, Hi: 10}}, workpool.Chunks[int64](10, 4))
	assert.Equal(t, []interval.Range[int]{{Lo: 0, Hi: 5}}, workpool.Chunks(5, 0))
	assert.Nil(t, workpool.Chunks(0, 3))
}
