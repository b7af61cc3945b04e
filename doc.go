// Package advent2023 solves the Advent of Code 2023 puzzles on top of a small
// set of reusable graph and search packages.
//
// Layout:
//
//	core/      - thread-safe string-keyed graph store
//	gridgraph/ - character grids, directions, successors, junction compression
//	bfs/       - breadth-first reachability over explicit and implicit graphs
//	dfs/       - topological sort and longest simple path
//	dijkstra/  - uniform-cost search over graphs and state spaces
//	flow/      - Edmonds-Karp max flow and min cut
//	cycle/     - cycle detection with projection, GCD/LCM
//	interval/  - half-open integer ranges and splitting
//	matrix/    - exact rational linear solve
//	workpool/  - bounded parallel map/reduce
//	puzzle/    - input loading, answers, registry, runner, config
//	puzzles/   - one package per day
//	cmd/advent - command-line entry point
//
// Quick start:
//
//	go run ./cmd/advent -time all
//	go run ./cmd/advent -test 17
package advent2023
