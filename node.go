package astar

import "fmt"

// Node identifies a grid cell. X is the row, Y is the column.
type Node struct {
	X int
	Y int
}

// Add returns the node offset by (dx, dy).
func (n Node) Add(dx, dy int) Node {
	return Node{X: n.X + dx, Y: n.Y + dy}
}

func (n Node) String() string {
	return fmt.Sprintf("(%d,%d)", n.X, n.Y)
}

// CellState is the content of a single grid cell.
type CellState uint8

const (
	Free CellState = iota
	Blocked
	Start
	End
)

func (s CellState) String() string {
	switch s {
	case Free:
		return "free"
	case Blocked:
		return "blocked"
	case Start:
		return "start"
	case End:
		return "end"
	}
	return fmt.Sprintf("CellState(%d)", uint8(s))
}

// Rune returns the character used for the cell in the text board format.
func (s CellState) Rune() rune {
	switch s {
	case Blocked:
		return '#'
	case Start:
		return 'S'
	case End:
		return 'E'
	}
	return '.'
}

// ParseCellState accepts the text board format ('.', '#', 'S', 'E') as well
// as the numeric encoding 0 (free), 1 (blocked), 8 (start) and 9 (end).
func ParseCellState(r rune) (CellState, error) {
	switch r {
	case '.', '0':
		return Free, nil
	case '#', '1':
		return Blocked, nil
	case 'S', 's', '8':
		return Start, nil
	case 'E', 'e', '9':
		return End, nil
	}
	return Free, fmt.Errorf("unknown cell %q", r)
}
