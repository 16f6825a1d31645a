/*
Package newick provides facilities for reading and writing trees in the
Newick format, and for decomposing a tree into the edge-induced
bipartitions consumed by the tree package. The format used is roughly
equivalent to the conventions established here:
http://evolution.genetics.washington.edu/phylip/newick_doc.html. Although,
comments and quoted labels are not (yet) implemented.

An informal description of the Newick format can be found here:
http://evolution.genetics.washington.edu/phylip/newicktree.html.
*/
package newick
