// Package day08 walks the desert map's left/right network.
package day08

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/exp/maps"

	"github.com/katalvlaran/advent2023/cycle"
	"github.com/katalvlaran/advent2023/puzzle"
)

// Network is the instruction string plus node → (left, right).
type Network struct {
	Steps string
	Nodes map[string][2]string
}

// Solver implements puzzle.Solver for day 8.
type Solver struct{}

// New returns the day 8 solver.
func New() *Solver { return &Solver{} }

func (*Solver) Day() int { return 8 }

// Solve answers each part independently, so an input prepared for only one
// part (the ghost example has no AAA) still yields that part.
func (*Solver) Solve(_ context.Context, in *puzzle.Input) ([]puzzle.Answer, error) {
	n, err := Parse(in.Lines())
	if err != nil {
		return nil, err
	}
	const template = "steps: {}"

	var (
		answers []puzzle.Answer
		errs    []error
	)
	if steps, err := n.Walk("AAA", func(s string) bool { return s == "ZZZ" }); err != nil {
		errs = append(errs, fmt.Errorf("part 1: %w", err))
	} else {
		answers = append(answers, puzzle.Answer{Part: 1, Template: template, Value: steps})
	}
	if steps, err := n.Ghosts(); err != nil {
		errs = append(errs, fmt.Errorf("part 2: %w", err))
	} else {
		answers = append(answers, puzzle.Answer{Part: 2, Template: template, Value: steps})
	}

	return answers, errors.Join(errs...)
}

// Walk follows the instructions from start until done holds and returns the
// step count. A walk longer than one full instruction pass per node cannot
// end and is ErrNoSolution.
func (n *Network) Walk(start string, done func(string) bool) (int, error) {
	if _, ok := n.Nodes[start]; !ok {
		return 0, fmt.Errorf("%w: no node %s", puzzle.ErrNoSolution, start)
	}
	limit := len(n.Steps) * len(n.Nodes)
	cur := start
	for i := 0; i <= limit; i++ {
		if done(cur) && i > 0 {
			return i, nil
		}
		next := n.Nodes[cur]
		if n.Steps[i%len(n.Steps)] == 'L' {
			cur = next[0]
		} else {
			cur = next[1]
		}
	}

	return 0, fmt.Errorf("%w: %s never reaches a goal", puzzle.ErrNoSolution, start)
}

// Ghosts walks every node ending in A at once. Each ghost's first arrival
// at a Z node repeats with the same period, so the answer is their LCM.
func (n *Network) Ghosts() (int, error) {
	starts := maps.Keys(n.Nodes)
	slices.Sort(starts)
	starts = slices.DeleteFunc(starts, func(s string) bool { return !strings.HasSuffix(s, "A") })
	if len(starts) == 0 {
		return 0, fmt.Errorf("%w: no ghost start nodes", puzzle.ErrNoSolution)
	}
	periods := make([]int, 0, len(starts))
	for _, s := range starts {
		p, err := n.Walk(s, func(s string) bool { return strings.HasSuffix(s, "Z") })
		if err != nil {
			return 0, err
		}
		periods = append(periods, p)
	}

	return cycle.LCM(periods...)
}

// Parse reads the instruction line, a blank line and "AAA = (BBB, CCC)" rows.
// Every referenced node must be defined.
func Parse(lines []string) (*Network, error) {
	if len(lines) < 3 {
		return nil, puzzle.Malformed(0, "", "want instructions and nodes")
	}
	n := &Network{Steps: strings.TrimSpace(lines[0]), Nodes: make(map[string][2]string, len(lines))}
	if n.Steps == "" || strings.Trim(n.Steps, "LR") != "" {
		return nil, puzzle.Malformed(1, lines[0], "instructions must be L or R")
	}
	for i, l := range lines[2:] {
		no := i + 3
		name, pair, err := puzzle.Cut(no, l, " = ")
		if err != nil {
			return nil, err
		}
		left, right, ok := strings.Cut(strings.Trim(pair, "()"), ", ")
		if !ok {
			return nil, puzzle.Malformed(no, l, "want (LEFT, RIGHT)")
		}
		n.Nodes[name] = [2]string{left, right}
	}
	for i, l := range lines[2:] {
		name, _, _ := strings.Cut(l, " = ")
		for _, ref := range n.Nodes[name] {
			if _, ok := n.Nodes[ref]; !ok {
				return nil, puzzle.Malformed(i+3, l, "undefined node %s", ref)
			}
		}
	}

	return n, nil
}
