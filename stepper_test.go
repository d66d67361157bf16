package astar

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepperWalksToGoal(t *testing.T) {
	g := mustParse(t, `
		S.#..
		..#..
		..#.E
		.....
	`)
	start, end := Node{0, 0}, Node{2, 4}
	stepper, err := NewStepper(g, start, end)
	require.NoError(t, err)
	ctx := context.Background()

	var last Snapshot
	closedBefore := 0
	for !stepper.Done() {
		last, err = stepper.Step(ctx)
		require.NoError(t, err)
		if !last.Done {
			assert.Equal(t, closedBefore+1, len(last.Closed))
			closedBefore = len(last.Closed)
		}
	}
	assert.True(t, last.Found)
	assert.Equal(t, end, last.Current)
	assertValidPath(t, g, last.Path, start, end)

	result := stepper.Result()
	assert.Equal(t, last.Path, result.Path)
	assert.Equal(t, last.Step, result.Expanded)

	// terminal state is sticky
	again, err := stepper.Step(ctx)
	require.NoError(t, err)
	assert.True(t, again.Done)
	assert.True(t, again.Found)
	assert.Equal(t, last.Step, again.Step)
}

func TestStepperScores(t *testing.T) {
	g := mustParse(t, `
		S...#...
		.##.#.#.
		.#....#E
	`)
	start, end := Node{0, 0}, Node{2, 7}
	stepper, err := NewStepper(g, start, end)
	require.NoError(t, err)
	for !stepper.Done() {
		_, err := stepper.Step(context.Background())
		require.NoError(t, err)
	}
	require.True(t, stepper.Result().Found)

	model := DefaultCostModel()
	gStart, ok := stepper.GScore(start)
	require.True(t, ok)
	assert.Zero(t, gStart)

	h, w := g.Dimensions()
	for x := 0; x < h; x++ {
		for y := 0; y < w; y++ {
			n := Node{x, y}
			gScore, hasG := stepper.GScore(n)
			fScore, hasF := stepper.FScore(n)
			assert.Equal(t, hasG, hasF, "%v", n)
			if hasG {
				assert.Equal(t, gScore+model.Heuristic(n, end), fScore, "%v", n)
			}
		}
	}

	_, ok = stepper.GScore(Node{1, 1})
	assert.False(t, ok)
	gEnd, _ := stepper.GScore(end)
	assert.Equal(t, stepper.Result().Cost, gEnd)
}

func TestStepperExhausts(t *testing.T) {
	g := mustParse(t, "S#.\n##.\n..E")
	stepper, err := NewStepper(g, Node{0, 0}, Node{2, 2})
	require.NoError(t, err)

	first, err := stepper.Step(context.Background())
	require.NoError(t, err)
	assert.False(t, first.Done)
	assert.Empty(t, first.Open)
	assert.Equal(t, []Node{{0, 0}}, first.Closed)

	second, err := stepper.Step(context.Background())
	require.NoError(t, err)
	assert.True(t, second.Done)
	assert.False(t, second.Found)
	assert.Nil(t, second.Path)
	assert.False(t, stepper.Result().Found)
}

func TestStepperCancelled(t *testing.T) {
	stepper, err := NewStepper(mustParse(t, "S..\n..E"), Node{0, 0}, Node{1, 2})
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = stepper.Step(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, stepper.Done())
}
