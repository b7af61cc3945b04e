package puzzle

import (
	"fmt"
	"slices"
	"sync"

	"golang.org/x/exp/maps"
)

// Registry maps day numbers to solvers. Safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	solvers map[int]Solver
}

// NewRegistry returns a registry holding solvers.
func NewRegistry(solvers ...Solver) (*Registry, error) {
	r := &Registry{solvers: make(map[int]Solver, len(solvers))}
	for _, s := range solvers {
		if err := r.Register(s); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Register adds s under s.Day(). A second solver for the same day is
// ErrDuplicateDay.
func (r *Registry) Register(s Solver) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.solvers == nil {
		r.solvers = make(map[int]Solver)
	}
	if _, dup := r.solvers[s.Day()]; dup {
		return fmt.Errorf("%w: %d", ErrDuplicateDay, s.Day())
	}
	r.solvers[s.Day()] = s

	return nil
}

// Lookup returns the solver for day, or ErrUnknownDay.
func (r *Registry) Lookup(day int) (Solver, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.solvers[day]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownDay, day)
	}

	return s, nil
}

// Days lists registered days in ascending order.
func (r *Registry) Days() []int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	days := maps.Keys(r.solvers)
	slices.Sort(days)

	return days
}
