// Package day19 sorts machine parts through workflows.
package day19

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/exp/maps"

	"github.com/katalvlaran/advent2023/interval"
	"github.com/katalvlaran/advent2023/puzzle"
)

// categories orders the ratings of a Part.
const categories = "xmas"

// Rule sends a part to Target when its Category rating compares with Value.
// A rule with Category < 0 always matches.
type Rule struct {
	Category int // index into categories, or -1
	Less     bool
	Value    int
	Target   string
}

// Part is an x, m, a, s rating quadruple.
type Part [4]int

// Box is a set of parts: one half-open rating range per category.
type Box [4]interval.Range[int]

// Count is the number of distinct parts in b.
func (b Box) Count() int {
	n := 1
	for _, r := range b {
		n *= r.Len()
	}

	return n
}

// System is the parsed workflow set.
type System struct {
	Workflows map[string][]Rule
}

// Solver implements puzzle.Solver for day 19.
type Solver struct{}

// New returns the day 19 solver.
func New() *Solver { return &Solver{} }

func (*Solver) Day() int { return 19 }

func (*Solver) Solve(_ context.Context, in *puzzle.Input) ([]puzzle.Answer, error) {
	sys, parts, err := Parse(in.Blocks())
	if err != nil {
		return nil, err
	}
	if err := sys.Validate(); err != nil {
		return nil, err
	}

	sum := 0
	for _, p := range parts {
		ok, err := sys.Accepts(p)
		if err != nil {
			return nil, err
		}
		if ok {
			sum += p[0] + p[1] + p[2] + p[3]
		}
	}
	answers := []puzzle.Answer{{Part: 1, Template: "Count accepted: {}", Value: sum}}

	full := interval.Range[int]{Lo: 1, Hi: 4001}
	total, err := sys.Combinations("in", Box{full, full, full, full})
	if err != nil {
		return answers, err
	}

	return append(answers, puzzle.Answer{Part: 2, Template: "All accepted: {}", Value: total}), nil
}

// Validate checks that "in" exists and every rule targets A, R or a known
// workflow. Workflows are checked in name order so the first error reported
// is stable.
func (s *System) Validate() error {
	if _, ok := s.Workflows["in"]; !ok {
		return fmt.Errorf("%w: no workflow \"in\"", puzzle.ErrMalformedInput)
	}
	names := maps.Keys(s.Workflows)
	slices.Sort(names)
	for _, name := range names {
		for _, r := range s.Workflows[name] {
			if _, ok := s.Workflows[r.Target]; !ok && r.Target != "A" && r.Target != "R" {
				return fmt.Errorf("%w: workflow %s sends to unknown %q", puzzle.ErrMalformedInput, name, r.Target)
			}
		}
	}

	return nil
}

// Accepts runs p from workflow "in" until it is accepted or rejected.
func (s *System) Accepts(p Part) (bool, error) {
	name := "in"
	for steps := 0; steps <= len(s.Workflows); steps++ {
		switch name {
		case "A":
			return true, nil
		case "R":
			return false, nil
		}
		rules, ok := s.Workflows[name]
		if !ok {
			return false, fmt.Errorf("%w: unknown workflow %q", puzzle.ErrMalformedInput, name)
		}
		for _, r := range rules {
			if r.Category < 0 || (r.Less && p[r.Category] < r.Value) || (!r.Less && p[r.Category] > r.Value) {
				name = r.Target
				break
			}
		}
	}

	return false, fmt.Errorf("%w: workflows loop", puzzle.ErrNoSolution)
}

// Combinations counts parts in box accepted starting at workflow name. Each
// rule splits the box at its threshold; the matching piece follows the
// rule's target and the rest falls through to the next rule.
func (s *System) Combinations(name string, box Box) (int, error) {
	return s.combinations(name, box, 0)
}

func (s *System) combinations(name string, box Box, depth int) (int, error) {
	switch name {
	case "A":
		return box.Count(), nil
	case "R":
		return 0, nil
	}
	if depth > len(s.Workflows) {
		return 0, fmt.Errorf("%w: workflows loop", puzzle.ErrNoSolution)
	}
	rules, ok := s.Workflows[name]
	if !ok {
		return 0, fmt.Errorf("%w: unknown workflow %q", puzzle.ErrMalformedInput, name)
	}

	total := 0
	for _, r := range rules {
		if box.Count() == 0 {
			break
		}
		if r.Category < 0 {
			n, err := s.combinations(r.Target, box, depth+1)
			return total + n, err
		}
		cut := r.Value
		if !r.Less {
			cut = r.Value + 1
		}
		match, rest := box, box
		match[r.Category], rest[r.Category] = interval.Range[int]{}, interval.Range[int]{}
		for _, piece := range box[r.Category].Split(cut) {
			if (r.Less && piece.Hi <= cut) || (!r.Less && piece.Lo >= cut) {
				match[r.Category] = piece
			} else {
				rest[r.Category] = piece
			}
		}
		n, err := s.combinations(r.Target, match, depth+1)
		if err != nil {
			return 0, err
		}
		total += n
		box = rest
	}

	return total, nil
}

// Parse reads the workflow block and the part block.
func Parse(blocks [][]string) (*System, []Part, error) {
	if len(blocks) != 2 {
		return nil, nil, puzzle.Malformed(0, "", "want workflows and parts, got %d blocks", len(blocks))
	}
	s := &System{Workflows: make(map[string][]Rule, len(blocks[0]))}
	for i, l := range blocks[0] {
		name, body, err := puzzle.Cut(i+1, strings.TrimSuffix(l, "}"), "{")
		if err != nil {
			return nil, nil, err
		}
		var rules []Rule
		for _, raw := range strings.Split(body, ",") {
			r, err := parseRule(raw)
			if err != nil {
				return nil, nil, &puzzle.InputError{Line: i + 1, Text: l, Err: err}
			}
			rules = append(rules, r)
		}
		s.Workflows[name] = rules
	}

	parts := make([]Part, 0, len(blocks[1]))
	base := len(blocks[0]) + 2
	for i, l := range blocks[1] {
		var p Part
		kvs := strings.Split(strings.Trim(l, "{}"), ",")
		if len(kvs) != len(categories) {
			return nil, nil, puzzle.Malformed(base+i, l, "want %d ratings, got %d", len(categories), len(kvs))
		}
		for j, kv := range kvs {
			k, v, err := puzzle.Cut(base+i, kv, "=")
			if err != nil {
				return nil, nil, err
			}
			if k != categories[j:j+1] {
				return nil, nil, puzzle.Malformed(base+i, l, "rating %d is %q, want %q", j+1, k, categories[j:j+1])
			}
			if p[j], err = puzzle.ParseInt(base+i, v); err != nil {
				return nil, nil, err
			}
		}
		parts = append(parts, p)
	}

	return s, parts, nil
}

func parseRule(raw string) (Rule, error) {
	cond, target, ok := strings.Cut(raw, ":")
	if !ok {
		return Rule{Category: -1, Target: raw}, nil
	}
	if len(cond) < 3 {
		return Rule{}, fmt.Errorf("short condition %q", cond)
	}
	cat := strings.IndexByte(categories, cond[0])
	if cat < 0 || (cond[1] != '<' && cond[1] != '>') {
		return Rule{}, fmt.Errorf("bad condition %q", cond)
	}
	var v int
	if _, err := fmt.Sscanf(cond[2:], "%d", &v); err != nil {
		return Rule{}, fmt.Errorf("bad threshold %q: %w", cond, err)
	}

	return Rule{Category: cat, Less: cond[1] == '<', Value: v, Target: target}, nil
}
