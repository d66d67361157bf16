// Package render draws boards and search progress: as plain or ANSI-colored
// text, on a tcell screen, or as a PNG image.
package render

import (
	"fmt"
	"strings"

	astar "github.com/pdrpinto/gridastar"
)

// ANSI color codes for text output.
const (
	ColorRed    = "\033[1;31m"
	ColorGreen  = "\033[1;32m"
	ColorYellow = "\033[1;33m"
	ColorBlue   = "\033[1;94m"
	ColorCyan   = "\033[36m"
	ColorGray   = "\033[90m"
	ColorReset  = "\033[0m"
)

// Mark classifies a cell for highlighting. Higher marks win.
type Mark uint8

const (
	MarkNone Mark = iota
	MarkClosed
	MarkOpen
	MarkPath
	MarkCurrent
)

// Overlay collects the highlighted cells of one frame.
type Overlay map[astar.Node]Mark

// NewOverlay builds an overlay from a search snapshot.
func NewOverlay(snap astar.Snapshot) Overlay {
	o := Overlay{}
	o.Add(MarkClosed, snap.Closed...)
	o.Add(MarkOpen, snap.Open...)
	o.Add(MarkPath, snap.Path...)
	if snap.Step > 0 {
		o.Add(MarkCurrent, snap.Current)
	}
	return o
}

// PathOverlay highlights a finished path only.
func PathOverlay(path []astar.Node) Overlay {
	o := Overlay{}
	o.Add(MarkPath, path...)
	return o
}

// Add marks nodes, keeping the strongest mark per node.
func (o Overlay) Add(mark Mark, nodes ...astar.Node) {
	for _, n := range nodes {
		if mark > o[n] {
			o[n] = mark
		}
	}
}

// TextOptions controls Text output.
type TextOptions struct {
	Color   bool
	Overlay Overlay
}

// Text draws the board with row and column indices:
//
//	     0 1 2
//	0  [ S . # ]
//	1  [ . * E ]
//
// Path cells are drawn as '*', open cells as 'o' and closed cells as 'x'.
// Start and End keep their letters.
func Text(g *astar.Grid, opts TextOptions) string {
	height, width := g.Dimensions()
	var b strings.Builder

	b.WriteString("     ")
	for y := 0; y < width; y++ {
		fmt.Fprintf(&b, "%d ", y%10)
	}
	b.WriteByte('\n')

	for x := 0; x < height; x++ {
		fmt.Fprintf(&b, "%-3d[ ", x)
		for y := 0; y < width; y++ {
			n := astar.Node{X: x, Y: y}
			state, _ := g.Cell(n)
			r, color := glyph(state, opts.Overlay[n])
			if opts.Color && color != "" {
				b.WriteString(color)
				b.WriteRune(r)
				b.WriteString(ColorReset)
			} else {
				b.WriteRune(r)
			}
			b.WriteByte(' ')
		}
		b.WriteString("]\n")
	}
	return b.String()
}

// Legend returns the key for the colored output.
func Legend(color bool) string {
	if !color {
		return "S start  E end  # blocked  * path  o open  x closed"
	}
	return ColorGreen + "start" + ColorReset + " " +
		ColorRed + "end" + ColorReset + " " +
		ColorBlue + "blocked" + ColorReset + " " +
		ColorYellow + "path" + ColorReset + " " +
		ColorCyan + "open" + ColorReset + " " +
		ColorGray + "closed" + ColorReset
}

func glyph(state astar.CellState, mark Mark) (rune, string) {
	switch state {
	case astar.Start:
		return 'S', ColorGreen
	case astar.End:
		return 'E', ColorRed
	case astar.Blocked:
		return '#', ColorBlue
	}
	switch mark {
	case MarkPath, MarkCurrent:
		return '*', ColorYellow
	case MarkOpen:
		return 'o', ColorCyan
	case MarkClosed:
		return 'x', ColorGray
	}
	return '.', ""
}
