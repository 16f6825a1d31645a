package newick

import (
	"fmt"
	"strings"

	"github.com/TuftsBCB/splits/split"
)

// Splits decomposes the tree into its edge-induced bipartitions, one record
// per edge below the root, in depth-first order. A record's first side
// holds the leaves of the subtree under the edge and its second side the
// rest of the leaf universe. The two edges meeting at the root of a binary
// tree induce the same bipartition; duplicates are emitted once.
//
// Every leaf must carry a unique, non-empty label, and the tree must have
// at least two leaves.
func (tree *Tree) Splits() ([]split.Record, error) {
	universe := make(split.LabelSet)
	if err := tree.leafLabels(universe); err != nil {
		return nil, err
	}
	if len(universe) < 2 {
		return nil, fmt.Errorf("Cannot decompose a tree with fewer than "+
			"two leaves (found %d).", len(universe))
	}

	var records []split.Record
	seen := make(map[string]bool)

	var walk func(t *Tree, isRoot bool) []string
	walk = func(t *Tree, isRoot bool) []string {
		if len(t.Children) == 0 {
			under := []string{t.Label}
			if !isRoot {
				records = appendRecord(records, seen, under, universe)
			}
			return under
		}
		var under []string
		for _, child := range t.Children {
			under = append(under, walk(child, false)...)
		}
		if !isRoot {
			records = appendRecord(records, seen, under, universe)
		}
		return under
	}
	walk(tree, true)
	return records, nil
}

// appendRecord adds the bipartition (under | universe-under) unless one
// side is empty or the same bipartition was already recorded.
func appendRecord(records []split.Record, seen map[string]bool,
	under []string, universe split.LabelSet) []split.Record {

	rest := make(split.LabelSet)
	in := split.NewLabelSet(under...)
	for label := range universe {
		if !in.Contains(label) {
			rest.Add(label)
		}
	}
	if len(rest) == 0 {
		return records
	}

	keyA := strings.Join(in.Labels(), ",")
	keyB := strings.Join(rest.Labels(), ",")
	key := keyA + "/" + keyB
	if keyB < keyA {
		key = keyB + "/" + keyA
	}
	if seen[key] {
		return records
	}
	seen[key] = true

	return append(records, split.Record{
		SideA: append([]string(nil), under...),
		SideB: rest.Labels(),
	})
}

// leafLabels collects the labels of the tree's leaves into `into`.
func (tree *Tree) leafLabels(into split.LabelSet) error {
	if len(tree.Children) == 0 {
		if len(tree.Label) == 0 {
			return fmt.Errorf("Cannot decompose a tree with an unlabeled " +
				"leaf.")
		}
		if into.Contains(tree.Label) {
			return fmt.Errorf("Cannot decompose a tree with a duplicate "+
				"leaf label '%s'.", tree.Label)
		}
		into.Add(tree.Label)
		return nil
	}
	for _, child := range tree.Children {
		if err := child.leafLabels(into); err != nil {
			return err
		}
	}
	return nil
}
