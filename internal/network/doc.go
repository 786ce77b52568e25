// Package network models a barter network as an undirected weighted graph.
//
// Nodes are item/owner identifiers; an edge between A and B means the owner
// of A wants B. The graph stores at most one edge per unordered pair, so
// repeated insertions overwrite the weight rather than accumulate it.
package network
