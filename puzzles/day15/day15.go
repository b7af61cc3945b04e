// Package day15 runs the HASHMAP lens initialization sequence.
package day15

import (
	"context"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/advent2023/puzzle"
)

// Hash is the HASH algorithm: for each byte, add it, multiply by 17, mod 256.
func Hash(s string) int {
	h := 0
	for i := 0; i < len(s); i++ {
		h = (h + int(s[i])) * 17 % 256
	}

	return h
}

// Lens is a labelled lens in a box.
type Lens struct {
	Label string
	Focal int
}

// Boxes is the 256-box lens arrangement.
type Boxes [256][]Lens

// Apply performs one step: "label-" removes a lens, "label=N" inserts or
// replaces one.
func (b *Boxes) Apply(step string) error {
	if label, ok := strings.CutSuffix(step, "-"); ok {
		box := &b[Hash(label)]
		*box = slices.DeleteFunc(*box, func(l Lens) bool { return l.Label == label })
		return nil
	}
	label, focal, ok := strings.Cut(step, "=")
	if !ok {
		return puzzle.Malformed(1, step, "step needs '-' or '='")
	}
	f, err := strconv.Atoi(focal)
	if err != nil || f < 1 || f > 9 {
		return puzzle.Malformed(1, step, "focal length %q", focal)
	}
	box := &b[Hash(label)]
	if i := slices.IndexFunc(*box, func(l Lens) bool { return l.Label == label }); i >= 0 {
		(*box)[i].Focal = f
		return nil
	}
	*box = append(*box, Lens{Label: label, Focal: f})

	return nil
}

// Power sums (box+1) * (slot+1) * focal over every lens.
func (b *Boxes) Power() int {
	total := 0
	for i, box := range b {
		for j, l := range box {
			total += (i + 1) * (j + 1) * l.Focal
		}
	}

	return total
}

// Solver implements puzzle.Solver for day 15.
type Solver struct{}

// New returns the day 15 solver.
func New() *Solver { return &Solver{} }

func (*Solver) Day() int { return 15 }

func (*Solver) Solve(_ context.Context, in *puzzle.Input) ([]puzzle.Answer, error) {
	steps := strings.Split(strings.ReplaceAll(in.Text(), "\n", ""), ",")
	sum := 0
	for _, s := range steps {
		sum += Hash(s)
	}
	answers := []puzzle.Answer{{Part: 1, Template: "checksum:  {}", Value: sum}}

	var boxes Boxes
	for _, s := range steps {
		if err := boxes.Apply(s); err != nil {
			return answers, err
		}
	}

	return append(answers, puzzle.Answer{Part: 2, Template: "power:  {}", Value: boxes.Power()}), nil
}
