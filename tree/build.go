package tree

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrEmptyInput is returned by Build when it is called with no splits;
// there is no split to root the tree at.
var ErrEmptyInput = errors.New("no splits to build a tree from")

// An InconsistentSplitError describes a split whose minority side was
// contained in neither root branch: the input splits cannot all have been
// induced by one common tree. The offending split is skipped and the rest
// of the build proceeds without it.
type InconsistentSplitError struct {
	// Candidate holds the local leaves of the minority side that could
	// not be placed.
	Candidate []string

	// SideA and SideB hold the local leaves of the split's two sides.
	SideA []string
	SideB []string
}

func (e *InconsistentSplitError) Error() string {
	return fmt.Sprintf("split '%s/%s' is inconsistent with the root split: "+
		"side {%s} nests in neither root branch",
		strings.Join(e.SideA, ","), strings.Join(e.SideB, ","),
		strings.Join(e.Candidate, ","))
}

// Build reconstructs a tree from the given splits and returns its two root
// branches, conceptually joined by the root split's edge.
//
// The splits are stable-sorted ascending by minority size, so ties keep
// their input order. The last split after sorting, the most evenly
// balanced one, becomes the root split and its two nodes the permanent
// root branches. Every other split is then processed in descending
// minority-size order: its minority side is inserted into whichever root
// branch covers it. Processing larger minorities first guarantees that
// each insertion's target already exists in the tree.
//
// Errors do not abort the build. A split covered by neither branch is
// recorded as an *InconsistentSplitError and skipped, and the partial tree
// built from the remaining splits is returned alongside all recorded
// errors. An empty input yields nil branches and ErrEmptyInput.
func Build(splits []*Split) (rootA, rootB *Node, errs []error) {
	if len(splits) == 0 {
		return nil, nil, []error{ErrEmptyInput}
	}

	ordered := make([]*Split, len(splits))
	copy(ordered, splits)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].minoritySize() < ordered[j].minoritySize()
	})

	root := ordered[len(ordered)-1]
	rootA, rootB = root.A, root.B

	for i := len(ordered) - 2; i >= 0; i-- {
		s := ordered[i]
		candidate := s.minority()
		switch {
		case rootA.IsSupersetOf(candidate):
			rootA.Insert(candidate)
		case rootB.IsSupersetOf(candidate):
			rootB.Insert(candidate)
		default:
			errs = append(errs, &InconsistentSplitError{
				Candidate: append([]string(nil), candidate.Local...),
				SideA:     append([]string(nil), s.A.Local...),
				SideB:     append([]string(nil), s.B.Local...),
			})
		}
	}
	return rootA, rootB, errs
}
