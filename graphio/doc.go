// Package graphio reads and writes the plain-text graph formats used by
// the command-line runner.
//
// The edge-list format is one edge per line, whitespace-separated:
//
//	# comment lines start with '#', blank lines are skipped
//	0 1
//	1 2 0.5
//
// Two fields give an unweighted edge (weight 1), three add a float
// weight. Vertex ids are non-negative integers; the vertex count is
// inferred as the largest id plus one.
package graphio
