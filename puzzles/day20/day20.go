// Package day20 simulates the pulse propagation network.
package day20

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

// Kind is a module type.
type Kind uint8

const (
	Broadcast Kind = iota
	FlipFlop
	Conjunction
	Sink
)

// Module is one node of the network. Inputs is filled for every module so
// conjunctions know whom to remember.
type Module struct {
	Name    string
	Kind    Kind
	Outputs []int
	Inputs  []int
}

// Network is a parsed module configuration together with its mutable state.
type Network struct {
	Modules []Module
	index   map[string]int
	on      []bool
	memory  [][]bool // per conjunction, high flag per entry of Inputs
}

type pulse struct {
	from, to int
	high     bool
}

// Counts tallies pulses sent during one button press.
type Counts struct {
	Low, High int
}

// Solver implements puzzle.Solver for day 20.
type Solver struct {
	presses    int
	maxPresses int
}

// Option configures the solver.
type Option func(*Solver)

// WithPresses sets how many presses part 1 totals.
func WithPresses(n int) Option { return func(s *Solver) { s.presses = n } }

// WithMaxPresses bounds the part 2 search.
func WithMaxPresses(n int) Option { return func(s *Solver) { s.maxPresses = n } }

// New returns the day 20 solver.
func New(opts ...Option) *Solver {
	s := &Solver{presses: 1000, maxPresses: 1_000_000}
	for _, o := range opts {
		o(s)
	}

	return s
}

func (*Solver) Day() int { return 20 }

func (s *Solver) Solve(ctx context.Context, in *puzzle.Input) ([]puzzle.Answer, error) {
	n, err := Parse(in.Lines())
	if err != nil {
		return nil, err
	}
	var total Counts
	for i := 0; i < s.presses; i++ {
		c := n.Press(nil)
		total.Low += c.Low
		total.High += c.High
	}
	answers := []puzzle.Answer{{Part: 1, Template: "Pulse product: {}", Value: total.Low * total.High}}

	// sample networks have no rx; part 2 is only answered when it exists
	if _, ok := n.index["rx"]; !ok {
		return answers, nil
	}
	presses, err := n.PressesUntilLow(ctx, "rx", s.maxPresses)
	if err != nil {
		return answers, err
	}

	return append(answers, puzzle.Answer{Part: 2, Template: "Pulse product: {}", Value: presses}), nil
}

// Reset clears all flip-flops and conjunction memories.
func (n *Network) Reset() {
	clear(n.on)
	for _, m := range n.memory {
		clear(m)
	}
}

// Press pushes the button once and returns the pulses sent. watch, when
// non-nil, sees every pulse as it is delivered.
func (n *Network) Press(watch func(from, to string, high bool)) Counts {
	var c Counts
	start := n.index["broadcaster"]
	queue := []pulse{{from: -1, to: start}}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		if p.high {
			c.High++
		} else {
			c.Low++
		}
		if watch != nil && p.from >= 0 {
			watch(n.Modules[p.from].Name, n.Modules[p.to].Name, p.high)
		}

		m := &n.Modules[p.to]
		var out bool
		switch m.Kind {
		case Broadcast:
			out = p.high
		case FlipFlop:
			if p.high {
				continue
			}
			n.on[p.to] = !n.on[p.to]
			out = n.on[p.to]
		case Conjunction:
			mem := n.memory[p.to]
			mem[slices.Index(m.Inputs, p.from)] = p.high
			out = slices.Contains(mem, false)
		case Sink:
			continue
		}
		for _, o := range m.Outputs {
			queue = append(queue, pulse{from: p.to, to: o, high: out})
		}
	}

	return c
}

// PressesUntilLow returns the fewest presses after which target receives a
// low pulse. The target must be fed by a single conjunction whose inputs
// each fire high periodically; the answer is the LCM of their first firing
// press. The network is reset first.
func (n *Network) PressesUntilLow(ctx context.Context, target string, limit int) (int, error) {
	t, ok := n.index[target]
	if !ok {
		return 0, fmt.Errorf("%w: no module %q", puzzle.ErrNoSolution, target)
	}
	feeders := n.Modules[t].Inputs
	if len(feeders) != 1 || n.Modules[feeders[0]].Kind != Conjunction {
		return 0, fmt.Errorf("%w: %q is not fed by a single conjunction", puzzle.ErrDegenerate, target)
	}
	hub := n.Modules[feeders[0]]
	first := make(map[string]int, len(hub.Inputs))

	n.Reset()
	for press := 1; press <= limit; press++ {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		n.Press(func(from, to string, high bool) {
			if high && to == hub.Name {
				if _, seen := first[from]; !seen {
					first[from] = press
				}
			}
		})
		if len(first) == len(hub.Inputs) {
			periods := make([]int, 0, len(first))
			names := maps.Keys(first)
			slices.Sort(names)
			for _, name := range names {
				periods = append(periods, first[name])
			}

			return cycle.LCM(periods...)
		}
	}

	return 0, fmt.Errorf("%w: %s inputs silent after %d presses", puzzle.ErrNoSolution, hub.Name, limit)
}

// Parse reads "%a -> b, c" lines. Destinations that are never declared
// become sinks.
func Parse(lines []string) (*Network, error) {
	n := &Network{index: make(map[string]int, len(lines))}
	add := func(name string, k Kind) int {
		if i, ok := n.index[name]; ok {
			return i
		}
		n.index[name] = len(n.Modules)
		n.Modules = append(n.Modules, Module{Name: name, Kind: k})

		return len(n.Modules) - 1
	}

	outs := make([][]string, 0, len(lines))
	for i, l := range lines {
		src, dst, err := puzzle.Cut(i+1, l, " -> ")
		if err != nil {
			return nil, err
		}
		kind := Broadcast
		switch {
		case strings.HasPrefix(src, "%"):
			kind, src = FlipFlop, src[1:]
		case strings.HasPrefix(src, "&"):
			kind, src = Conjunction, src[1:]
		case src != "broadcaster":
			return nil, puzzle.Malformed(i+1, l, "unknown module %q", src)
		}
		if (src == "broadcaster") != (kind == Broadcast) {
			return nil, puzzle.Malformed(i+1, l, "broadcaster cannot be a flip-flop or conjunction")
		}
		if j, ok := n.index[src]; ok && n.Modules[j].Kind != Sink {
			return nil, puzzle.Malformed(i+1, l, "module %q declared twice", src)
		} else if ok {
			n.Modules[j].Kind = kind
		} else {
			add(src, kind)
		}
		for _, d := range strings.Split(dst, ",") {
			add(strings.TrimSpace(d), Sink)
		}
		outs = append(outs, append([]string{src}, strings.Split(dst, ",")...))
	}
	if b, ok := n.index["broadcaster"]; !ok || n.Modules[b].Kind != Broadcast {
		return nil, errors.Join(puzzle.ErrMalformedInput, errors.New("no broadcaster"))
	}

	for _, o := range outs {
		from := n.index[o[0]]
		for _, d := range o[1:] {
			to := n.index[strings.TrimSpace(d)]
			n.Modules[from].Outputs = append(n.Modules[from].Outputs, to)
			n.Modules[to].Inputs = append(n.Modules[to].Inputs, from)
		}
	}
	n.on = make([]bool, len(n.Modules))
	n.memory = make([][]bool, len(n.Modules))
	for i, m := range n.Modules {
		if m.Kind == Conjunction {
			n.memory[i] = make([]bool, len(m.Inputs))
		}
	}

	return n, nil
}
