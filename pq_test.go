package astar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func popAll(t *testing.T, f *Frontier) []Node {
	t.Helper()
	var out []Node
	for !f.IsEmpty() {
		n, _, ok := f.PopMin()
		require.True(t, ok)
		out = append(out, n)
	}
	return out
}

func TestFrontierOrdering(t *testing.T) {
	f := NewFrontier()
	assert.True(t, f.IsEmpty())

	a, b, c, d := Node{0, 0}, Node{0, 1}, Node{0, 2}, Node{0, 3}
	f.PushIfBetter(a, 50)
	f.PushIfBetter(b, 50)
	f.PushIfBetter(c, 30)
	f.PushIfBetter(d, 50)

	assert.Equal(t, 4, f.Len())
	assert.Equal(t, []Node{a, b, c, d}, f.Nodes())
	assert.Equal(t, []Node{c, a, b, d}, popAll(t, f))

	_, _, ok := f.PopMin()
	assert.False(t, ok)
}

func TestFrontierDecreaseKey(t *testing.T) {
	f := NewFrontier()
	a, b := Node{1, 1}, Node{2, 2}

	assert.True(t, f.PushIfBetter(a, 40))
	assert.True(t, f.PushIfBetter(b, 30))
	assert.False(t, f.PushIfBetter(a, 40))
	assert.False(t, f.PushIfBetter(a, 45))
	assert.True(t, f.PushIfBetter(a, 20))
	assert.Equal(t, 2, f.Len())
	assert.True(t, f.Contains(a))

	n, fCost, ok := f.PopMin()
	require.True(t, ok)
	assert.Equal(t, a, n)
	assert.Equal(t, 20, fCost)
	assert.False(t, f.Contains(a))
	assert.True(t, f.Contains(b))
}

func TestFrontierDecreaseKeyKeepsInsertionOrder(t *testing.T) {
	f := NewFrontier()
	a, b := Node{0, 0}, Node{0, 1}
	f.PushIfBetter(a, 30)
	f.PushIfBetter(b, 20)
	f.PushIfBetter(a, 20)
	assert.Equal(t, []Node{a, b}, popAll(t, f))
}

func TestVisited(t *testing.T) {
	v := NewVisited()
	a, b := Node{3, 4}, Node{4, 3}
	assert.False(t, v.Contains(a))

	v.Insert(a)
	v.Insert(b)
	v.Insert(a)
	assert.True(t, v.Contains(a))
	assert.True(t, v.Contains(b))
	assert.Equal(t, 2, v.Len())
	assert.Equal(t, []Node{a, b}, v.Nodes())

	nodes := v.Nodes()
	nodes[0] = Node{9, 9}
	assert.Equal(t, a, v.Nodes()[0])
}
