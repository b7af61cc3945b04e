package puzzle

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// Runner loads inputs, dispatches days to their solvers and prints answers.
type Runner struct {
	reg    *Registry
	cfg    Config
	loader Loader
	log    *logrus.Logger
	out    io.Writer
}

// NewRunner builds a runner over reg. Inputs are read from cfg.InputDir
// unless WithFS supplies a filesystem.
func NewRunner(reg *Registry, cfg Config) *Runner {
	if cfg.Logger == nil {
		cfg.Logger = logrus.New()
	}
	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}

	return &Runner{
		reg:    reg,
		cfg:    cfg,
		loader: Loader{FS: os.DirFS(cfg.InputDir), Example: cfg.Example},
		log:    cfg.Logger,
		out:    cfg.Output,
	}
}

// WithFS swaps the input filesystem, mostly for tests.
func (r *Runner) WithFS(fsys fs.FS) *Runner {
	r.loader.FS = fsys
	return r
}

// Run solves each day in order. A day with no solver prints
// "Day N not yet implemented" and is not an error. Failures are logged,
// do not stop later days, and are returned joined.
//
// When more than one day is requested a blank line follows each day.
func (r *Runner) Run(ctx context.Context, days []int) error {
	var errs []error
	for _, day := range days {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		if err := r.runDay(ctx, day); err != nil {
			r.log.WithField("day", day).WithError(err).Error("puzzle failed")
			errs = append(errs, fmt.Errorf("day %d: %w", day, err))
		}
		if len(days) > 1 {
			fmt.Fprintln(r.out)
		}
	}

	return errors.Join(errs...)
}

func (r *Runner) runDay(ctx context.Context, day int) error {
	start := time.Now()
	s, err := r.reg.Lookup(day)
	if errors.Is(err, ErrUnknownDay) {
		fmt.Fprintf(r.out, "Day %d not yet implemented\n", day)
		r.printTime(time.Since(start))
		return nil
	} else if err != nil {
		return err
	}

	in, err := r.loader.Load(day)
	if err != nil {
		return err
	}
	in.Workers = r.cfg.Workers

	answers, err := s.Solve(ctx, in)
	for _, a := range answers {
		fmt.Fprintln(r.out, a.Line(day))
	}
	elapsed := time.Since(start)
	r.log.WithFields(logrus.Fields{"day": day, "elapsed": elapsed, "example": in.Example}).Debug("day finished")
	r.printTime(elapsed)

	return err
}

func (r *Runner) printTime(d time.Duration) {
	if !r.cfg.Timing {
		return
	}
	if d < 3*time.Millisecond {
		fmt.Fprintf(r.out, "Time: %d μs\n", d.Microseconds())
		return
	}
	fmt.Fprintf(r.out, "Time: %d ms\n", d.Milliseconds())
}
