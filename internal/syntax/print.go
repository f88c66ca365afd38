package syntax

import (
	"fmt"
	"io"
	"strings"
)

// Sprint returns the parenthesized tree form of n:
//
//	(KIND child child ...)
//
// Leaves print as their text. A leaf without text prints as (KIND), so it
// never reads back as a name. Nil nodes print their children without being
// wrapped.
func Sprint(n *Node) string {
	var b strings.Builder
	writeTree(&b, n)
	return b.String()
}

func writeTree(b *strings.Builder, n *Node) {
	if n == nil {
		return
	}
	if n.IsLeaf() && !n.IsImaginary() {
		b.WriteString(n.Text)
		return
	}

	wrap := n.Kind != Nil || n.IsLeaf()
	if wrap {
		b.WriteByte('(')
		b.WriteString(label(n))
		if !n.IsLeaf() {
			b.WriteByte(' ')
		}
	}
	for i, c := range n.Children {
		if i > 0 {
			b.WriteByte(' ')
		}
		writeTree(b, c)
	}
	if wrap {
		b.WriteByte(')')
	}
}

func label(n *Node) string {
	if n.Text == "" {
		return n.Kind.String()
	}
	return n.Text
}

// Fprint writes an indented, one node per line representation of the AST to w.
func Fprint(w io.Writer, n *Node) error {
	p := &printer{w: w}
	p.print(n)
	return p.err
}

type printer struct {
	w      io.Writer
	indent int
	err    error
}

func (p *printer) printf(format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, "%s%s", strings.Repeat("  ", p.indent), fmt.Sprintf(format, args...))
}

func (p *printer) print(n *Node) {
	if n == nil {
		return
	}

	if n.IsImaginary() {
		p.printf("%s\n", n.Kind)
	} else {
		p.printf("%s %q %s\n", n.Kind, n.Text, n.Pos)
	}

	p.indent++
	for _, c := range n.Children {
		p.print(c)
	}
	p.indent--
}
