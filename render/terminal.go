package render

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	astar "github.com/pdrpinto/gridastar"
)

// Styles holds the tcell style per cell kind.
type Styles struct {
	Free    tcell.Style
	Blocked tcell.Style
	Start   tcell.Style
	End     tcell.Style
	Path    tcell.Style
	Open    tcell.Style
	Closed  tcell.Style
	Current tcell.Style
	Status  tcell.Style
}

// DefaultStyles mirrors the ANSI text colors.
func DefaultStyles() Styles {
	return Styles{
		Free:    tcell.StyleDefault,
		Blocked: tcell.StyleDefault.Foreground(tcell.ColorBlue).Bold(true),
		Start:   tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true),
		End:     tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true),
		Path:    tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true),
		Open:    tcell.StyleDefault.Foreground(tcell.ColorTeal),
		Closed:  tcell.StyleDefault.Foreground(tcell.ColorGray),
		Current: tcell.StyleDefault.Foreground(tcell.ColorYellow).Reverse(true),
		Status:  tcell.StyleDefault.Foreground(tcell.ColorWhite),
	}
}

// Terminal draws boards on a tcell screen. Each cell takes two columns.
type Terminal struct {
	screen tcell.Screen
	styles Styles
}

// NewTerminal wraps an initialized screen.
func NewTerminal(screen tcell.Screen) *Terminal {
	return &Terminal{screen: screen, styles: DefaultStyles()}
}

// Draw renders g with overlay and a status line under the board.
func (t *Terminal) Draw(g *astar.Grid, overlay Overlay, status string) {
	t.screen.Clear()
	height, width := g.Dimensions()
	for x := 0; x < height; x++ {
		for y := 0; y < width; y++ {
			n := astar.Node{X: x, Y: y}
			state, _ := g.Cell(n)
			r, style := t.cell(state, overlay[n])
			t.screen.SetContent(y*2, x, r, nil, style)
		}
	}
	t.drawText(0, height+1, status, t.styles.Status)
	t.screen.Show()
}

// DrawSnapshot renders one search step.
func (t *Terminal) DrawSnapshot(g *astar.Grid, snap astar.Snapshot) {
	t.Draw(g, NewOverlay(snap), snapshotStatus(snap))
}

// Animate steps the search until it finishes, drawing every expansion and
// waiting delay between frames. Cancelling ctx stops the animation.
func (t *Terminal) Animate(ctx context.Context, g *astar.Grid, stepper *astar.Stepper, delay time.Duration) (astar.Result, error) {
	ticker := time.NewTicker(max(delay, time.Millisecond))
	defer ticker.Stop()

	for !stepper.Done() {
		snap, err := stepper.Step(ctx)
		if err != nil {
			return astar.Result{}, err
		}
		t.DrawSnapshot(g, snap)
		select {
		case <-ctx.Done():
			return astar.Result{}, ctx.Err()
		case <-ticker.C:
		}
	}
	return stepper.Result(), nil
}

// WatchQuit polls screen events until Escape, 'q' or Ctrl-C, then calls
// cancel. It returns when the screen is finalized.
func WatchQuit(screen tcell.Screen, cancel context.CancelFunc) {
	for {
		ev := screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			return
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
				(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
				cancel()
				return
			}
		case *tcell.EventResize:
			screen.Sync()
		}
	}
}

func (t *Terminal) cell(state astar.CellState, mark Mark) (rune, tcell.Style) {
	switch state {
	case astar.Start:
		return 'S', t.styles.Start
	case astar.End:
		return 'E', t.styles.End
	case astar.Blocked:
		return '#', t.styles.Blocked
	}
	switch mark {
	case MarkCurrent:
		return '*', t.styles.Current
	case MarkPath:
		return '*', t.styles.Path
	case MarkOpen:
		return 'o', t.styles.Open
	case MarkClosed:
		return 'x', t.styles.Closed
	}
	return '.', t.styles.Free
}

func (t *Terminal) drawText(x, y int, text string, style tcell.Style) {
	for _, r := range text {
		t.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func snapshotStatus(snap astar.Snapshot) string {
	switch {
	case snap.Found:
		return fmt.Sprintf("step %d: path found, %d nodes, cost %d", snap.Step, len(snap.Path), snap.G)
	case snap.Done:
		return fmt.Sprintf("step %d: no path", snap.Step)
	}
	return fmt.Sprintf("step %d: %v g=%d f=%d open=%d closed=%d",
		snap.Step, snap.Current, snap.G, snap.F, len(snap.Open), len(snap.Closed))
}
