package syntax

// ----------------------------------------------------------------------------
// Nodes
//
// The AST is homogeneous: every node is a *Node tagged with a Kind. Leaves
// built from tokens carry the token's text and start position. Imaginary
// nodes (structural kinds) have no text and only group their children.
// Children are owned by their parent and only ever appended.

// Node is a node of the abstract syntax tree.
type Node struct {
	Kind     Kind
	Text     string  // token text, empty for imaginary nodes
	Pos      Pos     // start of the token, zero for imaginary nodes
	Children []*Node // ordered, append-only
}

// NewNode creates an imaginary node of the given kind with the given children.
func NewNode(kind Kind, children ...*Node) *Node {
	n := &Node{Kind: kind}
	n.Add(children...)
	return n
}

// NewLeaf creates a leaf node from a token.
func NewLeaf(tok Token) *Node {
	return &Node{Kind: tok.Kind, Text: tok.Text, Pos: tok.Pos()}
}

// Add appends children to n.
func (n *Node) Add(children ...*Node) {
	n.Children = append(n.Children, children...)
}

// AddTokens appends a leaf for each token.
func (n *Node) AddTokens(toks ...Token) {
	for _, tok := range toks {
		n.Add(NewLeaf(tok))
	}
}

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// IsImaginary reports whether n has no source text.
func (n *Node) IsImaginary() bool {
	return n.Text == ""
}

// Len returns the number of children.
func (n *Node) Len() int {
	return len(n.Children)
}

// Child returns the i-th child, or nil if there is none.
func (n *Node) Child(i int) *Node {
	if i < 0 || i >= len(n.Children) {
		return nil
	}
	return n.Children[i]
}

// Last returns the last child, or nil for a leaf.
func (n *Node) Last() *Node {
	return n.Child(len(n.Children) - 1)
}

// String returns the parenthesized tree form of n.
func (n *Node) String() string {
	return Sprint(n)
}

// Equal reports whether a and b have the same shape, kinds and texts.
// Positions are ignored.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind != b.Kind || a.Text != b.Text || len(a.Children) != len(b.Children) {
		return false
	}
	for i := range a.Children {
		if !Equal(a.Children[i], b.Children[i]) {
			return false
		}
	}
	return true
}
