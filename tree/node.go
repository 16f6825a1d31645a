package tree

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/TuftsBCB/splits/split"
)

// A Node is one vertex of a reconstructed tree.
type Node struct {
	// Local holds the leaves currently attributed directly to this node,
	// in insertion order, pending delegation to a more specific child.
	// After a complete reconstruction every node retains at most one.
	Local []string

	// Children holds the subtrees attached below this node, in attachment
	// order. A child has exactly one parent.
	Children []*Node

	// full holds every leaf belonging to this node or any descendant. It
	// is fixed when the node's side of a split is formed; Insert never
	// touches it.
	full split.LabelSet
}

func newNode() *Node {
	return &Node{full: make(split.LabelSet)}
}

// AddLeaf attributes `label` to this node. It is used only while a split's
// two sides are being formed, before the node enters a tree.
func (n *Node) AddLeaf(label string) {
	n.Local = append(n.Local, label)
	n.full.Add(label)
}

// IsSupersetOf returns true if this node's full membership contains every
// leaf that `c` still holds locally.
func (n *Node) IsSupersetOf(c *Node) bool {
	return n.full.ContainsAll(c.Local)
}

// Insert attaches `candidate` at the deepest node in this subtree whose
// full membership covers candidate's local leaves. The caller must have
// established `n.IsSupersetOf(candidate)`.
//
// The receiver's children are scanned in order; if one covers the
// candidate, the insertion is delegated to it. Otherwise the candidate
// becomes a new direct child. Either way the candidate's local leaves are
// removed from the receiver's local membership afterwards; the removal is
// idempotent, so re-walking a path that already delegated those leaves is
// harmless. Inserting a node that is already a child is a no-op.
func (n *Node) Insert(candidate *Node) {
	for _, child := range n.Children {
		if child == candidate {
			n.dropLocal(candidate.Local)
			return
		}
		if child.IsSupersetOf(candidate) {
			child.Insert(candidate)
			n.dropLocal(candidate.Local)
			return
		}
	}
	n.Children = append(n.Children, candidate)
	n.dropLocal(candidate.Local)
}

// dropLocal removes each of the given labels from the node's local
// membership, preserving the order of the rest.
func (n *Node) dropLocal(labels []string) {
	if len(labels) == 0 || len(n.Local) == 0 {
		return
	}
	drop := split.NewLabelSet(labels...)
	kept := n.Local[:0]
	for _, label := range n.Local {
		if !drop.Contains(label) {
			kept = append(kept, label)
		}
	}
	n.Local = kept
}

// Leaves returns the node's full membership in sorted order.
func (n *Node) Leaves() []string {
	return n.full.Labels()
}

// String recursively converts the subtree to a string, with whitespace
// indenting to indicate depth.
func (n *Node) String() string {
	buf := new(bytes.Buffer)

	var out func(n *Node, depth int)
	out = func(n *Node, depth int) {
		name := strings.Join(n.Local, ",")
		if len(name) == 0 {
			name = "N/A"
		}
		fmt.Fprintf(buf, "%s%s\n", strings.Repeat("  ", depth), name)
		for _, child := range n.Children {
			out(child, depth+1)
		}
	}
	out(n, 0)
	return buf.String()
}
