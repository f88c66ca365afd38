package syntax

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"
)

// encodedNode is the serialized form of a Node shared by the JSON and YAML printers.
type encodedNode struct {
	Kind     string         `json:"kind" yaml:"kind"`
	Text     string         `json:"text,omitempty" yaml:"text,omitempty"`
	Pos      string         `json:"pos,omitempty" yaml:"pos,omitempty"`
	Children []*encodedNode `json:"children,omitempty" yaml:"children,omitempty"`
}

// FprintJSON writes a JSON representation of the AST to w.
func FprintJSON(w io.Writer, n *Node) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(encode(n))
}

// FprintYAML writes a YAML representation of the AST to w.
func FprintYAML(w io.Writer, n *Node) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(encode(n)); err != nil {
		return err
	}
	return enc.Close()
}

func encode(n *Node) *encodedNode {
	if n == nil {
		return nil
	}

	e := &encodedNode{
		Kind: n.Kind.String(),
		Text: n.Text,
	}
	if n.Pos.IsValid() {
		e.Pos = n.Pos.String()
	}
	for _, c := range n.Children {
		e.Children = append(e.Children, encode(c))
	}
	return e
}
