package astar

import (
	"fmt"
	"strings"
)

// offsets lists the eight neighbor directions in row-major order.
var offsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Grid is a fixed-size rectangular board. It is never mutated after
// construction, so a single Grid may back any number of searches.
type Grid struct {
	height int
	width  int
	cells  []CellState
	starts []Node
	ends   []Node
}

// NewGrid builds a grid from rows of cells. The rows are copied.
func NewGrid(rows [][]CellState) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, invalidGrid("zero dimensions")
	}
	g := &Grid{
		height: len(rows),
		width:  len(rows[0]),
	}
	g.cells = make([]CellState, 0, g.height*g.width)
	for x, row := range rows {
		if len(row) != g.width {
			return nil, invalidGrid(fmt.Sprintf("row %d has %d cells, want %d", x, len(row), g.width))
		}
		for y, state := range row {
			switch state {
			case Start:
				g.starts = append(g.starts, Node{X: x, Y: y})
			case End:
				g.ends = append(g.ends, Node{X: x, Y: y})
			case Free, Blocked:
			default:
				return nil, invalidGrid(fmt.Sprintf("cell %v holds %v", Node{X: x, Y: y}, state))
			}
			g.cells = append(g.cells, state)
		}
	}
	return g, nil
}

// ParseGrid reads the text board format: one line per row, blank lines and
// surrounding whitespace ignored.
func ParseGrid(text string) (*Grid, error) {
	var rows [][]CellState
	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		row := make([]CellState, 0, len(line))
		for _, r := range line {
			if r == ' ' || r == '\t' {
				continue
			}
			state, err := ParseCellState(r)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", i+1, err)
			}
			row = append(row, state)
		}
		rows = append(rows, row)
	}
	return NewGrid(rows)
}

// Dimensions returns the number of rows and columns.
func (g *Grid) Dimensions() (height, width int) {
	return g.height, g.width
}

// InBounds reports whether n lies on the grid.
func (g *Grid) InBounds(n Node) bool {
	return n.X >= 0 && n.X < g.height && n.Y >= 0 && n.Y < g.width
}

// Cell returns the state at n. ok is false when n is out of bounds.
func (g *Grid) Cell(n Node) (state CellState, ok bool) {
	if !g.InBounds(n) {
		return Free, false
	}
	return g.cells[n.X*g.width+n.Y], true
}

// Traversable reports whether a path may pass through n. Out-of-bounds
// nodes are never traversable.
func (g *Grid) Traversable(n Node) bool {
	state, ok := g.Cell(n)
	return ok && state != Blocked
}

// Start returns the unique Start cell.
func (g *Grid) Start() (Node, error) {
	if err := g.Validate(); err != nil {
		return Node{}, err
	}
	return g.starts[0], nil
}

// End returns the unique End cell.
func (g *Grid) End() (Node, error) {
	if err := g.Validate(); err != nil {
		return Node{}, err
	}
	return g.ends[0], nil
}

// Validate checks that the grid carries exactly one Start and one End.
func (g *Grid) Validate() error {
	switch {
	case len(g.starts) == 0:
		return invalidGrid("no start cell")
	case len(g.starts) > 1:
		return invalidGrid(fmt.Sprintf("%d start cells", len(g.starts)))
	case len(g.ends) == 0:
		return invalidGrid("no end cell")
	case len(g.ends) > 1:
		return invalidGrid(fmt.Sprintf("%d end cells", len(g.ends)))
	}
	return nil
}

// Candidates returns the in-bounds cells around n, excluding n itself,
// regardless of whether they are blocked.
func (g *Grid) Candidates(n Node) []Node {
	out := make([]Node, 0, len(offsets))
	for _, d := range offsets {
		if next := n.Add(d[0], d[1]); g.InBounds(next) {
			out = append(out, next)
		}
	}
	return out
}

// Neighbors returns the traversable cells around n.
func (g *Grid) Neighbors(n Node) []Node {
	out := make([]Node, 0, len(offsets))
	for _, d := range offsets {
		if next := n.Add(d[0], d[1]); g.Traversable(next) {
			out = append(out, next)
		}
	}
	return out
}

// String renders the grid in the text board format.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.width + 1) * g.height)
	for x := 0; x < g.height; x++ {
		for y := 0; y < g.width; y++ {
			b.WriteRune(g.cells[x*g.width+y].Rune())
		}
		b.WriteByte('\n')
	}
	return b.String()
}
