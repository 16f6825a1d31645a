/*
Package tree reconstructs the topology of an unrooted leaf-labeled tree
from the complete collection of its edge-induced bipartitions.

Each bipartition becomes a Split holding one Node per side. Build orders
the splits by the size of their smaller side, roots the tree at the most
evenly balanced split, and nests the smaller side of every other split
into the branch that covers it. Correctness rests on the laminar property
of tree splits: any two sides are either disjoint or nested, so each side
has a unique deepest attachment point in the growing tree.
*/
package tree
