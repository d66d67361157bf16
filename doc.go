// Package astar finds lowest-cost paths on bounded rectangular grids with
// impassable cells, using A* under an octile cost model (orthogonal step 10,
// diagonal step 14 by default).
//
// It exposes three entry points:
//
//   - Solve / Search: run the algorithm to completion and get a Result.
//   - Stepper: iterate the search one expansion at a time to drive UIs or debugging tools.
//   - SolveAll: solve many independent boards with a bounded worker pool.
//
// A single search is synchronous and owns all of its state. Grids are
// read-only once built and may be shared between searches.
package astar
