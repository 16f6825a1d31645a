package newick

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// Tree corresponds to any value representable in a Newick format. Each
// tree value corresponds to a single node.
type Tree struct {
	// All children of this node, which may be empty.
	Children []*Tree

	// The label of this node. If it's empty, then this node does
	// not have a name.
	Label string

	// The branch length of this node corresponding to the distance between
	// it and its parent node. If it's `nil`, then no distance exists.
	Length *float64
}

// String recursively converts a tree to a string, with whitespace indenting
// to indicate depth.
func (tree *Tree) String() string {
	buf := new(bytes.Buffer)

	var out func(t *Tree, depth int)
	out = func(t *Tree, depth int) {
		name, length := t.Label, ""
		if len(name) == 0 {
			name = "N/A"
		}
		if t.Length != nil {
			length = fmt.Sprintf(" (%f)", *t.Length)
		}
		fmt.Fprintf(buf, "%s%s%s\n", strings.Repeat("  ", depth), name, length)
		for _, child := range t.Children {
			out(child, depth+1)
		}
	}
	out(tree, 0)
	return buf.String()
}

// Newick converts the tree to its Newick representation, terminated by the
// usual ';'.
func (tree *Tree) Newick() string {
	buf := new(bytes.Buffer)
	tree.write(buf)
	buf.WriteByte(';')
	return buf.String()
}

// Write writes the Newick representation of the tree to `w`, followed by a
// new line.
func Write(w io.Writer, tree *Tree) error {
	_, err := fmt.Fprintf(w, "%s\n", tree.Newick())
	return err
}

func (tree *Tree) write(buf *bytes.Buffer) {
	if len(tree.Children) > 0 {
		buf.WriteByte('(')
		for i, child := range tree.Children {
			if i > 0 {
				buf.WriteByte(',')
			}
			child.write(buf)
		}
		buf.WriteByte(')')
	}
	buf.WriteString(tree.Label)
	if tree.Length != nil {
		fmt.Fprintf(buf, ":%g", *tree.Length)
	}
}
