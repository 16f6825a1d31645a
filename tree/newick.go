package tree

import "github.com/TuftsBCB/splits/newick"

// Newick joins the two root branches of a reconstructed tree under an
// unnamed root and returns the result as a newick tree, ready for
// serialization with newick.Write.
func Newick(rootA, rootB *Node) *newick.Tree {
	return &newick.Tree{
		Children: []*newick.Tree{rootA.newick(), rootB.newick()},
	}
}

// newick converts one branch. A node's sole remaining local leaf becomes
// its label; if a node retains several local leaves (a build from an
// incomplete split set), they become leaf children instead.
func (n *Node) newick() *newick.Tree {
	t := &newick.Tree{}
	locals := n.Local
	if len(locals) == 1 {
		t.Label = locals[0]
		locals = nil
	}
	for _, child := range n.Children {
		t.Children = append(t.Children, child.newick())
	}
	for _, label := range locals {
		t.Children = append(t.Children, &newick.Tree{Label: label})
	}
	return t
}
