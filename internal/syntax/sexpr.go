package syntax

import (
	"fmt"
	"strings"
)

// ReadTree parses the parenthesized form produced by Sprint back into a tree.
//
// A parenthesized group starts with a kind name and holds the children, so
// (KIND) is an imaginary leaf. Any other token is a leaf of the token's kind,
// even when its text spells a kind name. Several top-level items are wrapped
// in a Nil node. Comment leaves extend to the end of the line, so trees
// holding comment text cannot be read back.
func ReadTree(s string) (*Node, error) {
	toks, err := ScanAll("", strings.NewReader(s))
	if err != nil {
		return nil, err
	}

	r := &treeReader{toks: toks}
	var items []*Node
	for r.peek().Kind != EOF {
		n, err := r.item()
		if err != nil {
			return nil, err
		}
		items = append(items, n)
	}

	switch len(items) {
	case 0:
		return nil, fmt.Errorf("empty tree")
	case 1:
		return items[0], nil
	}
	return NewNode(Nil, items...), nil
}

type treeReader struct {
	toks []Token
	i    int
}

func (r *treeReader) peek() Token {
	return r.toks[r.i]
}

func (r *treeReader) next() Token {
	tok := r.toks[r.i]
	if tok.Kind != EOF {
		r.i++
	}
	return tok
}

func (r *treeReader) item() (*Node, error) {
	tok := r.next()
	switch tok.Kind {
	case LeftParen:
		head := r.next()
		kind, ok := LookupKind(head.Text)
		if head.Kind != Name || !ok {
			return nil, fmt.Errorf("%s: expected node kind, found %s", head.Pos(), describe(head))
		}
		n := NewNode(kind)
		for r.peek().Kind != RightParen {
			if r.peek().Kind == EOF {
				return nil, fmt.Errorf("%s: missing ')'", r.peek().Pos())
			}
			c, err := r.item()
			if err != nil {
				return nil, err
			}
			n.Add(c)
		}
		r.next()
		return n, nil

	case RightParen, EOF, NewLine:
		return nil, fmt.Errorf("%s: unexpected %s", tok.Pos(), describe(tok))
	}
	return NewLeaf(tok), nil
}
