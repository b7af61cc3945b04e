// Package day12 counts spring arrangements consistent with damaged records.
package day12

import (
	"context"
	"strings"

	"github.com/katalvlaran/advent2023/puzzle"
	"github.com/katalvlaran/advent2023/workpool"
)

// Record is one row: a condition pattern of '.', '#', '?' and the sizes of
// the contiguous damaged groups.
type Record struct {
	Pattern string
	Groups  []int
}

// Solver implements puzzle.Solver for day 12.
type Solver struct{}

// New returns the day 12 solver.
func New() *Solver { return &Solver{} }

func (*Solver) Day() int { return 12 }

func (*Solver) Solve(ctx context.Context, in *puzzle.Input) ([]puzzle.Answer, error) {
	records, err := Parse(in.Lines())
	if err != nil {
		return nil, err
	}
	const template = "number of arrangements: {}"
	sum := func(a, b int) int { return a + b }

	p1, err := workpool.MapReduce(ctx, in.Workers, records, func(_ context.Context, r Record) (int, error) {
		return r.Arrangements(), nil
	}, sum, 0)
	if err != nil {
		return nil, err
	}
	answers := []puzzle.Answer{{Part: 1, Template: template, Value: p1}}

	p2, err := workpool.MapReduce(ctx, in.Workers, records, func(_ context.Context, r Record) (int, error) {
		return r.Unfold(5).Arrangements(), nil
	}, sum, 0)
	if err != nil {
		return answers, err
	}

	return append(answers, puzzle.Answer{Part: 2, Template: template, Value: p2}), nil
}

// Unfold repeats the pattern n times joined by '?' and the groups n times.
func (r Record) Unfold(n int) Record {
	parts := make([]string, n)
	groups := make([]int, 0, len(r.Groups)*n)
	for i := range parts {
		parts[i] = r.Pattern
		groups = append(groups, r.Groups...)
	}

	return Record{Pattern: strings.Join(parts, "?"), Groups: groups}
}

// Arrangements counts the ways to resolve every '?' so that the damaged
// runs match Groups exactly.
//
// ways[i][j] counts completions of Pattern[i:] placing Groups[j:]; the
// table is filled from the end.
func (r Record) Arrangements() int {
	p, g := r.Pattern, r.Groups
	n, m := len(p), len(g)

	// run[i] is the length of the longest prefix of p[i:] that may be damaged
	run := make([]int, n+1)
	for i := n - 1; i >= 0; i-- {
		if p[i] != '.' {
			run[i] = run[i+1] + 1
		}
	}

	ways := make([][]int, n+2)
	for i := range ways {
		ways[i] = make([]int, m+1)
	}
	ways[n][m], ways[n+1][m] = 1, 1
	for i := n - 1; i >= 0; i-- {
		for j := m; j >= 0; j-- {
			total := 0
			if p[i] != '#' {
				total += ways[i+1][j]
			}
			if j < m && p[i] != '.' {
				end := i + g[j]
				if run[i] >= g[j] && (end == n || p[end] != '#') {
					total += ways[min(end+1, n+1)][j+1]
				}
			}
			ways[i][j] = total
		}
	}

	return ways[0][0]
}

// Parse reads "???.### 1,1,3" lines.
func Parse(lines []string) ([]Record, error) {
	out := make([]Record, 0, len(lines))
	for i, l := range lines {
		pattern, groups, err := puzzle.Cut(i+1, l, " ")
		if err != nil {
			return nil, err
		}
		if strings.Trim(pattern, ".#?") != "" {
			return nil, puzzle.Malformed(i+1, l, "bad condition pattern")
		}
		g, err := puzzle.Fields(i+1, groups)
		if err != nil {
			return nil, err
		}
		for _, n := range g {
			if n <= 0 {
				return nil, puzzle.Malformed(i+1, l, "group size %d", n)
			}
		}
		out = append(out, Record{Pattern: pattern, Groups: g})
	}

	return out, nil
}
