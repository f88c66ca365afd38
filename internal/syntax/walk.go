package syntax

// Visitor is called for each node during Walk.
// If it returns false, the children of the node are not visited.
type Visitor func(n *Node) bool

// Walk traverses an AST in depth-first order.
// If visitor returns false, children are not visited.
func Walk(n *Node, v Visitor) {
	if n == nil || !v(n) {
		return
	}
	for _, c := range n.Children {
		Walk(c, v)
	}
}

// Find returns the first node in depth-first order for which match
// returns true, or nil.
func Find(n *Node, match func(*Node) bool) *Node {
	var found *Node
	Walk(n, func(c *Node) bool {
		if found != nil {
			return false
		}
		if match(c) {
			found = c
			return false
		}
		return true
	})
	return found
}

// Count returns the number of nodes of the given kind in the tree rooted at n.
func Count(n *Node, kind Kind) int {
	count := 0
	Walk(n, func(c *Node) bool {
		if c.Kind == kind {
			count++
		}
		return true
	})
	return count
}
