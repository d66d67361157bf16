// Package board generates random boards for the solver. Every generated
// grid holds exactly one Start and one End on distinct, unblocked cells.
package board

import (
	"fmt"
	"math/rand"
	"time"

	astar "github.com/pdrpinto/gridastar"
)

const (
	// DefaultBlockadeRatio is the chance that a cell is blocked.
	DefaultBlockadeRatio = 1.0 / 7
	// MinHeight and MinWidth are the smallest random dimensions.
	MinHeight = 3
	MinWidth  = 5
	// MaxSize bounds random dimensions (exclusive).
	MaxSize = 13
)

// Layout picks how blocked cells are placed.
type Layout int

const (
	// Scatter blocks each cell independently with probability BlockadeRatio.
	Scatter Layout = iota
	// Clusters grows blocked regions from random walks.
	Clusters
)

// Config describes a board. Zero dimensions are drawn at random within
// [MinHeight, MaxSize) and [MinWidth, MaxSize).
type Config struct {
	Height, Width int
	// BlockadeRatio is the per-cell blocking chance for Scatter and the
	// per-step wall chance along each walk for Clusters.
	BlockadeRatio float64
	Layout        Layout

	// Clusters layout only.
	ClusterCount int
	ClusterSteps int

	Start *astar.Node // Optional (nil = random)
	End   *astar.Node // Optional (nil = random)
	Seed  int64       // Optional (0 = time based)
}

// Board is a generated grid together with its endpoints.
type Board struct {
	Grid       *astar.Grid
	Start, End astar.Node
	Seed       int64
}

// New generates a board from cfg.
func New(cfg Config) (Board, error) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	height, width := cfg.Height, cfg.Width
	if height == 0 || width == 0 {
		randomHeight, randomWidth := RandomDimensions(rng)
		if height == 0 {
			height = randomHeight
		}
		if width == 0 {
			width = randomWidth
		}
	}

	var (
		grid *astar.Grid
		err  error
	)
	switch cfg.Layout {
	case Scatter:
		grid, err = generate(rng, height, width, cfg.Start, cfg.End, func(cells [][]astar.CellState) {
			scatter(rng, cells, cfg.BlockadeRatio)
		})
	case Clusters:
		grid, err = generate(rng, height, width, cfg.Start, cfg.End, func(cells [][]astar.CellState) {
			clusters(rng, cells, cfg.ClusterCount, cfg.ClusterSteps, cfg.BlockadeRatio)
		})
	default:
		err = fmt.Errorf("unknown layout %d", cfg.Layout)
	}
	if err != nil {
		return Board{}, err
	}
	start, _ := grid.Start()
	end, _ := grid.End()
	return Board{Grid: grid, Start: start, End: end, Seed: seed}, nil
}

// Generate builds a height x width board with independently blocked cells.
func Generate(rng *rand.Rand, height, width int, blockadeRatio float64) (*astar.Grid, error) {
	return generate(rng, height, width, nil, nil, func(cells [][]astar.CellState) {
		scatter(rng, cells, blockadeRatio)
	})
}

// RandomDimensions draws a board height in [MinHeight, MaxSize) and width in
// [MinWidth, MaxSize).
func RandomDimensions(rng *rand.Rand) (height, width int) {
	return MinHeight + rng.Intn(MaxSize-MinHeight), MinWidth + rng.Intn(MaxSize-MinWidth)
}

// RandomPosition returns a uniformly chosen cell.
func RandomPosition(rng *rand.Rand, height, width int) astar.Node {
	return astar.Node{X: rng.Intn(height), Y: rng.Intn(width)}
}

func generate(
	rng *rand.Rand,
	height, width int,
	start, end *astar.Node,
	block func([][]astar.CellState),
) (*astar.Grid, error) {
	if height <= 0 || width <= 0 {
		return nil, fmt.Errorf("board must be at least 1x1, got %dx%d", height, width)
	}
	if height*width < 2 {
		return nil, fmt.Errorf("board %dx%d has no room for distinct start and end", height, width)
	}
	inBounds := func(n astar.Node) bool {
		return n.X >= 0 && n.X < height && n.Y >= 0 && n.Y < width
	}

	var startPos, endPos astar.Node
	if start != nil {
		if !inBounds(*start) {
			return nil, fmt.Errorf("start %v outside %dx%d board", *start, height, width)
		}
		startPos = *start
	} else {
		startPos = RandomPosition(rng, height, width)
		for end != nil && startPos == *end {
			startPos = RandomPosition(rng, height, width)
		}
	}
	if end != nil {
		if !inBounds(*end) {
			return nil, fmt.Errorf("end %v outside %dx%d board", *end, height, width)
		}
		endPos = *end
	} else {
		endPos = RandomPosition(rng, height, width)
		for endPos == startPos {
			endPos = RandomPosition(rng, height, width)
		}
	}
	if startPos == endPos {
		return nil, fmt.Errorf("start and end are both %v", startPos)
	}

	cells := make([][]astar.CellState, height)
	for x := range cells {
		cells[x] = make([]astar.CellState, width)
	}
	block(cells)
	cells[startPos.X][startPos.Y] = astar.Start
	cells[endPos.X][endPos.Y] = astar.End

	grid, err := astar.NewGrid(cells)
	if err != nil {
		return nil, fmt.Errorf("build grid: %w", err)
	}
	return grid, nil
}

func scatter(rng *rand.Rand, cells [][]astar.CellState, ratio float64) {
	for x := range cells {
		for y := range cells[x] {
			if rng.Float64() < ratio {
				cells[x][y] = astar.Blocked
			}
		}
	}
}

// clusters lays walls along random walks, so blocked cells form blobs
// rather than noise.
func clusters(rng *rand.Rand, cells [][]astar.CellState, count, steps int, density float64) {
	height, width := len(cells), len(cells[0])
	if count <= 0 {
		count = max(1, height*width/60)
	}
	if steps <= 0 {
		steps = max(4, height*width/8)
	}
	dirs := [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	for c := 0; c < count; c++ {
		p := RandomPosition(rng, height, width)
		for s := 0; s < steps; s++ {
			if rng.Float64() < density {
				cells[p.X][p.Y] = astar.Blocked
			}
			d := dirs[rng.Intn(len(dirs))]
			if next := p.Add(d[0], d[1]); next.X >= 0 && next.X < height && next.Y >= 0 && next.Y < width {
				p = next
			}
		}
	}
}
