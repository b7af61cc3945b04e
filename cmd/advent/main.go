// Command advent runs the Advent of Code 2023 solvers.
//
// Usage:
//
//	advent [flags] <day>
//
// day is 1..25, or 0 / "all" for every day in order. Answers are printed as
// "Day N, Part K: ..." on stdout; logs go to stderr.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/advent2023/puzzle"
	"github.com/katalvlaran/advent2023/puzzles"
)

var log = logrus.New()

const (
	exitOK    = 0
	exitFail  = 1
	exitUsage = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run is main without the process exit, returning the exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("advent", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: advent [flags] <day|all>")
		fs.PrintDefaults()
	}
	var (
		example  = fs.Bool("test", false, "use the example input day<N>.test.txt")
		timing   = fs.Bool("time", false, "print the time taken by each day")
		inputDir = fs.String("input", "resources", "directory holding the input files")
		workers  = fs.Int("workers", runtime.GOMAXPROCS(0), "goroutines a solver may use")
		cfgPath  = fs.String("config", "", "YAML config file; flags override it")
		verbose  = fs.Bool("v", false, "enable debug logging")
	)
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return exitUsage
	}
	days, err := parseDays(fs.Arg(0))
	if err != nil {
		fmt.Fprintln(stderr, err)
		fs.Usage()
		return exitUsage
	}

	log.SetOutput(stderr)
	opts := []puzzle.Option{puzzle.WithLogger(log), puzzle.WithOutput(stdout)}
	if *cfgPath != "" {
		fileOpts, err := puzzle.LoadConfigFile(*cfgPath)
		if err != nil {
			log.WithError(err).Error("config")
			return exitUsage
		}
		opts = append(opts, fileOpts...)
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "test":
			opts = append(opts, puzzle.WithExample(*example))
		case "time":
			opts = append(opts, puzzle.WithTiming(*timing))
		case "input":
			opts = append(opts, puzzle.WithInputDir(*inputDir))
		case "workers":
			opts = append(opts, puzzle.WithWorkers(*workers))
		case "v":
			opts = append(opts, puzzle.WithVerbose(*verbose))
		}
	})
	cfg := puzzle.NewConfig(opts...)

	reg, err := puzzles.Registry()
	if err != nil {
		log.WithError(err).Error("registry")
		return exitFail
	}
	log.WithFields(logrus.Fields{"days": len(days), "input": cfg.InputDir, "example": cfg.Example}).Debug("starting")
	if err := puzzle.NewRunner(reg, cfg).Run(ctx, days); err != nil {
		return exitFail
	}

	return exitOK
}

// parseDays turns the positional argument into the days to run.
func parseDays(arg string) ([]int, error) {
	if arg == "all" {
		arg = "0"
	}
	n, err := strconv.Atoi(arg)
	if err != nil || n < 0 {
		return nil, fmt.Errorf("advent: bad day %q", arg)
	}
	if n > 0 {
		return []int{n}, nil
	}
	days := make([]int, puzzles.Days)
	for i := range days {
		days[i] = i + 1
	}

	return days, nil
}
