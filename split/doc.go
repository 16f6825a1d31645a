/*
Package split provides facilities for reading edge-induced bipartitions
(splits) of a leaf-labeled tree from a simple textual format.

Each record occupies one line and names the two sides of one bipartition,
separated by a '/'. A side containing commas is read as a comma separated
list of labels; otherwise every character of the side is a single label.
So "b/acde" and "b/a,c,d,e" both describe the bipartition {b} | {a,c,d,e}.

Blank lines and lines starting with '#' are ignored.
*/
package split
