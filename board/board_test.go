package board

import (
	"context"
	"math/rand"
	"testing"

	astar "github.com/pdrpinto/gridastar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countCells(g *astar.Grid) map[astar.CellState]int {
	counts := map[astar.CellState]int{}
	h, w := g.Dimensions()
	for x := 0; x < h; x++ {
		for y := 0; y < w; y++ {
			state, _ := g.Cell(astar.Node{X: x, Y: y})
			counts[state]++
		}
	}
	return counts
}

func TestGenerateKeepsInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		h, w := RandomDimensions(rng)
		assert.GreaterOrEqual(t, h, MinHeight)
		assert.Less(t, h, MaxSize)
		assert.GreaterOrEqual(t, w, MinWidth)
		assert.Less(t, w, MaxSize)

		g, err := Generate(rng, h, w, DefaultBlockadeRatio)
		require.NoError(t, err)
		require.NoError(t, g.Validate())

		counts := countCells(g)
		assert.Equal(t, 1, counts[astar.Start])
		assert.Equal(t, 1, counts[astar.End])

		start, _ := g.Start()
		end, _ := g.End()
		assert.NotEqual(t, start, end)
		assert.True(t, g.Traversable(start))
		assert.True(t, g.Traversable(end))

		// every generated board is solvable or provably not, never an error
		_, err = astar.Solve(context.Background(), g)
		assert.NoError(t, err)
	}
}

func TestGenerateRatios(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	open, err := Generate(rng, 10, 10, 0)
	require.NoError(t, err)
	assert.Zero(t, countCells(open)[astar.Blocked])

	full, err := Generate(rng, 10, 10, 1)
	require.NoError(t, err)
	assert.Equal(t, 98, countCells(full)[astar.Blocked])
	result, err := astar.Solve(context.Background(), full)
	require.NoError(t, err)
	start, _ := full.Start()
	end, _ := full.End()
	adjacent := max(abs(start.X-end.X), abs(start.Y-end.Y)) == 1
	assert.Equal(t, adjacent, result.Found)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func TestGenerateRejectsTinyBoards(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	_, err := Generate(rng, 1, 1, 0)
	assert.Error(t, err)
	_, err = Generate(rng, 0, 5, 0)
	assert.Error(t, err)

	g, err := Generate(rng, 1, 2, 0)
	require.NoError(t, err)
	assert.NoError(t, g.Validate())
}

func TestNewIsDeterministicForSeed(t *testing.T) {
	cfg := Config{Height: 12, Width: 20, BlockadeRatio: 0.3, Seed: 42}
	a, err := New(cfg)
	require.NoError(t, err)
	b, err := New(cfg)
	require.NoError(t, err)
	assert.Equal(t, a.Grid.String(), b.Grid.String())
	assert.Equal(t, int64(42), a.Seed)

	cfg.Seed = 43
	c, err := New(cfg)
	require.NoError(t, err)
	assert.NotEqual(t, a.Grid.String(), c.Grid.String())
}

func TestNewFixedEndpoints(t *testing.T) {
	start, end := astar.Node{X: 0, Y: 0}, astar.Node{X: 4, Y: 9}
	b, err := New(Config{Height: 5, Width: 10, BlockadeRatio: 0.5, Start: &start, End: &end, Seed: 3})
	require.NoError(t, err)
	assert.Equal(t, start, b.Start)
	assert.Equal(t, end, b.End)

	outside := astar.Node{X: 9, Y: 9}
	_, err = New(Config{Height: 5, Width: 10, Start: &outside, Seed: 3})
	assert.Error(t, err)

	_, err = New(Config{Height: 5, Width: 10, Start: &start, End: &start, Seed: 3})
	assert.Error(t, err)
}

func TestNewRandomDimensions(t *testing.T) {
	b, err := New(Config{Seed: 9, BlockadeRatio: DefaultBlockadeRatio})
	require.NoError(t, err)
	h, w := b.Grid.Dimensions()
	assert.GreaterOrEqual(t, h, MinHeight)
	assert.GreaterOrEqual(t, w, MinWidth)
}

func TestNewClusters(t *testing.T) {
	b, err := New(Config{
		Height: 24, Width: 40, Layout: Clusters,
		BlockadeRatio: 0.25, ClusterCount: 8, ClusterSteps: 200, Seed: 5,
	})
	require.NoError(t, err)
	require.NoError(t, b.Grid.Validate())
	assert.Positive(t, countCells(b.Grid)[astar.Blocked])

	_, err = New(Config{Height: 5, Width: 5, Layout: Layout(9), Seed: 1})
	assert.Error(t, err)
}

func TestNewRandomStartAvoidsFixedEnd(t *testing.T) {
	end := astar.Node{X: 0, Y: 0}
	for seed := int64(1); seed <= 400; seed++ {
		b, err := New(Config{Height: 2, Width: 2, End: &end, Seed: seed})
		require.NoError(t, err, "seed %d", seed)
		assert.Equal(t, end, b.End)
		assert.NotEqual(t, end, b.Start, "seed %d", seed)
	}

	start := astar.Node{X: 1, Y: 1}
	for seed := int64(1); seed <= 400; seed++ {
		b, err := New(Config{Height: 2, Width: 2, Start: &start, Seed: seed})
		require.NoError(t, err, "seed %d", seed)
		assert.NotEqual(t, start, b.End, "seed %d", seed)
	}
}
