package internal

// ReconstructPath walks cameFrom backwards from end until it reaches start
// and returns the nodes in start-to-end order. ok is false when the chain
// breaks or loops before reaching start.
func ReconstructPath[NodeType comparable](
	cameFrom map[NodeType]NodeType,
	start NodeType,
	end NodeType,
) (path []NodeType, ok bool) {
	path = []NodeType{end}
	current := end
	for current != start {
		// a well-formed chain visits each predecessor once
		if len(path) > len(cameFrom)+1 {
			return nil, false
		}
		previousNode, exists := cameFrom[current]
		if !exists {
			return nil, false
		}
		path = append(path, previousNode)
		current = previousNode
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, true
}
