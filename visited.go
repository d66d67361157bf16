package astar

// Visited is the closed set. Nodes are never removed once inserted.
type Visited struct {
	seen  map[Node]struct{}
	order []Node
}

// NewVisited returns an empty closed set.
func NewVisited() *Visited {
	return &Visited{seen: make(map[Node]struct{})}
}

// Insert marks n as expanded. Repeated inserts are ignored.
func (v *Visited) Insert(n Node) {
	if _, ok := v.seen[n]; ok {
		return
	}
	v.seen[n] = struct{}{}
	v.order = append(v.order, n)
}

// Contains reports whether n has been expanded.
func (v *Visited) Contains(n Node) bool {
	_, ok := v.seen[n]
	return ok
}

// Len returns the number of expanded nodes.
func (v *Visited) Len() int { return len(v.order) }

// Nodes returns the expanded nodes in expansion order.
func (v *Visited) Nodes() []Node {
	out := make([]Node, len(v.order))
	copy(out, v.order)
	return out
}
