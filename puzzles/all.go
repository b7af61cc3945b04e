// Package puzzles lists every day's solver.
package puzzles

import (
	"github.com/katalvlaran/advent2023/puzzle"
	"github.com/katalvlaran/advent2023/puzzles/day01"
	"github.com/katalvlaran/advent2023/puzzles/day02"
	"github.com/katalvlaran/advent2023/puzzles/day03"
	"github.com/katalvlaran/advent2023/puzzles/day04"
	"github.com/katalvlaran/advent2023/puzzles/day05"
	"github.com/katalvlaran/advent2023/puzzles/day06"
	"github.com/katalvlaran/advent2023/puzzles/day07"
	"github.com/katalvlaran/advent2023/puzzles/day08"
	"github.com/katalvlaran/advent2023/puzzles/day09"
	"github.com/katalvlaran/advent2023/puzzles/day10"
	"github.com/katalvlaran/advent2023/puzzles/day11"
	"github.com/katalvlaran/advent2023/puzzles/day12"
	"github.com/katalvlaran/advent2023/puzzles/day13"
	"github.com/katalvlaran/advent2023/puzzles/day14"
	"github.com/katalvlaran/advent2023/puzzles/day15"
	"github.com/katalvlaran/advent2023/puzzles/day16"
	"github.com/katalvlaran/advent2023/puzzles/day17"
	"github.com/katalvlaran/advent2023/puzzles/day18"
	"github.com/katalvlaran/advent2023/puzzles/day19"
	"github.com/katalvlaran/advent2023/puzzles/day20"
	"github.com/katalvlaran/advent2023/puzzles/day21"
	"github.com/katalvlaran/advent2023/puzzles/day22"
	"github.com/katalvlaran/advent2023/puzzles/day23"
	"github.com/katalvlaran/advent2023/puzzles/day24"
	"github.com/katalvlaran/advent2023/puzzles/day25"
)

// Days is the highest day number.
const Days = 25

// All returns a fresh solver for every implemented day with its published
// defaults.
func All() []puzzle.Solver {
	return []puzzle.Solver{
		day01.New(), day02.New(), day03.New(), day04.New(), day05.New(),
		day06.New(), day07.New(), day08.New(), day09.New(), day10.New(),
		day11.New(), day12.New(), day13.New(), day14.New(), day15.New(),
		day16.New(), day17.New(), day18.New(), day19.New(), day20.New(),
		day21.New(), day22.New(), day23.New(), day24.New(), day25.New(),
	}
}

// Registry returns a registry holding All.
func Registry() (*puzzle.Registry, error) {
	return puzzle.NewRegistry(All()...)
}
