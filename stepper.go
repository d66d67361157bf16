package astar

import (
	"context"
	"fmt"

	"github.com/pdrpinto/gridastar/internal"
)

// Snapshot exposes the per-iteration state of the search.
type Snapshot struct {
	Current Node
	G       int
	F       int
	Open    []Node
	Closed  []Node
	Done    bool
	Found   bool
	Path    []Node
	Step    int
}

// Stepper advances a search one expansion at a time. It owns all search
// state; nothing is shared with other Steppers or with the Grid.
type Stepper struct {
	grid    *Grid
	start   Node
	end     Node
	options Options

	frontier *Frontier
	visited  *Visited
	cameFrom map[Node]Node
	gScore   map[Node]int
	fScore   map[Node]int

	current Node
	steps   int
	done    bool
	found   bool
	path    []Node
}

// NewStepper validates the endpoints and seeds the frontier with start.
func NewStepper(grid *Grid, start, end Node, options ...Option) (*Stepper, error) {
	if grid == nil {
		return nil, invalidGrid("nil grid")
	}
	switch {
	case !grid.InBounds(start):
		return nil, invalidGrid(fmt.Sprintf("start %v out of bounds", start))
	case !grid.InBounds(end):
		return nil, invalidGrid(fmt.Sprintf("end %v out of bounds", end))
	case !grid.Traversable(start):
		return nil, invalidGrid(fmt.Sprintf("start %v is blocked", start))
	case !grid.Traversable(end):
		return nil, invalidGrid(fmt.Sprintf("end %v is blocked", end))
	case start == end:
		return nil, invalidGrid(fmt.Sprintf("start and end are both %v", start))
	}

	s := &Stepper{
		grid:     grid,
		start:    start,
		end:      end,
		options:  buildOptions(options),
		frontier: NewFrontier(),
		visited:  NewVisited(),
		cameFrom: make(map[Node]Node),
		gScore:   map[Node]int{start: 0},
		fScore:   make(map[Node]int),
		current:  start,
	}
	s.fScore[start] = s.heuristic(start)
	s.frontier.PushIfBetter(start, s.fScore[start])
	return s, nil
}

// Done reports whether the search reached a terminal state.
func (s *Stepper) Done() bool { return s.done }

// GScore returns the best known cost from start to n.
func (s *Stepper) GScore(n Node) (int, bool) {
	g, ok := s.gScore[n]
	return g, ok
}

// FScore returns g(n) + h(n) as last recorded for n.
func (s *Stepper) FScore(n Node) (int, bool) {
	f, ok := s.fScore[n]
	return f, ok
}

// Result returns the outcome so far. It is only meaningful once Done.
func (s *Stepper) Result() Result {
	result := Result{
		Expanded: s.steps,
		Found:    s.found,
	}
	if s.found {
		result.Path = append([]Node(nil), s.path...)
		result.Cost = s.gScore[s.end]
	}
	return result
}

// Step advances the search by one node expansion and returns a snapshot.
// Once the search is done, Step keeps returning the final snapshot.
func (s *Stepper) Step(ctx context.Context) (Snapshot, error) {
	if _, err := s.advance(ctx); err != nil {
		return Snapshot{Step: s.steps, Done: s.done}, err
	}
	return s.snapshot(), nil
}

// advance performs one iteration of the A* loop and reports whether a node
// was taken from the frontier.
func (s *Stepper) advance(ctx context.Context) (bool, error) {
	if s.done {
		return false, nil
	}
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if s.options.MaxExpansions > 0 && s.steps >= s.options.MaxExpansions {
		return false, fmt.Errorf("%w after %d expansions", ErrExpansionLimit, s.steps)
	}

	current, _, ok := s.frontier.PopMin()
	if !ok {
		s.done = true
		return false, nil
	}
	s.steps++
	s.current = current

	if current == s.end {
		path, ok := internal.ReconstructPath(s.cameFrom, s.start, s.end)
		if !ok {
			panic(fmt.Sprintf("astar: predecessor chain from %v does not reach %v", s.end, s.start))
		}
		s.path = path
		s.done = true
		s.found = true
		s.notify()
		return true, nil
	}

	s.visited.Insert(current)
	currentG := s.gScore[current]
	for _, neighbor := range s.grid.Neighbors(current) {
		if s.visited.Contains(neighbor) {
			continue
		}
		tentativeG := currentG + s.stepCost(current, neighbor)
		if previousG, seen := s.gScore[neighbor]; seen && tentativeG >= previousG {
			continue
		}
		s.cameFrom[neighbor] = current
		s.gScore[neighbor] = tentativeG
		s.fScore[neighbor] = tentativeG + s.heuristic(neighbor)
		s.frontier.PushIfBetter(neighbor, s.fScore[neighbor])
	}

	if s.options.Verbose {
		s.options.Logger.Debug("expanded node",
			"step", s.steps, "node", current, "g", currentG, "f", s.fScore[current],
			"open", s.frontier.Len(), "closed", s.visited.Len())
	}
	s.notify()
	return true, nil
}

func (s *Stepper) notify() {
	if s.options.Observer != nil {
		s.options.Observer(s.snapshot())
	}
}

func (s *Stepper) snapshot() Snapshot {
	snap := Snapshot{
		Current: s.current,
		G:       s.gScore[s.current],
		F:       s.fScore[s.current],
		Open:    s.frontier.Nodes(),
		Closed:  s.visited.Nodes(),
		Done:    s.done,
		Found:   s.found,
		Step:    s.steps,
	}
	if s.found {
		snap.Path = append([]Node(nil), s.path...)
	}
	return snap
}

func (s *Stepper) heuristic(n Node) int {
	return s.options.CostModel.Heuristic(n, s.end)
}

func (s *Stepper) stepCost(from, to Node) int {
	if s.options.StepCost == StepUnit {
		return 1
	}
	return s.options.CostModel.Cost(from, to)
}
