package tree

import "github.com/TuftsBCB/splits/split"

// A Split is one bipartition of the leaf universe, represented as the pair
// of nodes created for its two sides. The sides are disjoint and, for a
// well-formed input, jointly cover the universe. Ownership of the nodes
// transfers into the growing tree during Build.
type Split struct {
	A *Node
	B *Node
}

// NewSplit creates a split from a raw record, one fresh node per side.
func NewSplit(rec split.Record) *Split {
	s := &Split{A: newNode(), B: newNode()}
	for _, label := range rec.SideA {
		s.A.AddLeaf(label)
	}
	for _, label := range rec.SideB {
		s.B.AddLeaf(label)
	}
	return s
}

// NewSplits creates one split per record, preserving order.
func NewSplits(recs []split.Record) []*Split {
	ss := make([]*Split, len(recs))
	for i, rec := range recs {
		ss[i] = NewSplit(rec)
	}
	return ss
}

// minoritySize is the size of the split's smaller side, the sort key for
// ordering splits before insertion.
func (s *Split) minoritySize() int {
	if len(s.A.Local) < len(s.B.Local) {
		return len(s.A.Local)
	}
	return len(s.B.Local)
}

// minority returns the split's smaller side. Equal sizes prefer side B;
// the tie-break is arbitrary but fixed, so output is reproducible.
func (s *Split) minority() *Node {
	if len(s.B.Local) <= len(s.A.Local) {
		return s.B
	}
	return s.A
}
