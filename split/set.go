package split

import "sort"

// A LabelSet is a set of leaf labels with O(1) membership testing.
type LabelSet map[string]bool

// NewLabelSet returns a set containing each of the given labels.
func NewLabelSet(labels ...string) LabelSet {
	s := make(LabelSet, len(labels))
	for _, label := range labels {
		s[label] = true
	}
	return s
}

// Add puts `label` into the set.
func (s LabelSet) Add(label string) {
	s[label] = true
}

// Contains returns true if `label` is in the set.
func (s LabelSet) Contains(label string) bool {
	return s[label]
}

// ContainsAll returns true if every one of the given labels is in the set.
func (s LabelSet) ContainsAll(labels []string) bool {
	for _, label := range labels {
		if !s[label] {
			return false
		}
	}
	return true
}

// Equal returns true if both sets contain exactly the same labels.
func (s LabelSet) Equal(other LabelSet) bool {
	if len(s) != len(other) {
		return false
	}
	for label := range s {
		if !other[label] {
			return false
		}
	}
	return true
}

// Labels returns the labels in the set in sorted order.
func (s LabelSet) Labels() []string {
	labels := make([]string, 0, len(s))
	for label := range s {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}
