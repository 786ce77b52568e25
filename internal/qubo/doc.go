// Package qubo turns a trade network into a weighted max-cut QUBO.
//
// The encoding follows the standard max-cut formulation: Q(i,i) is the
// negated weighted degree of node i and Q(i,j) = 2w for each edge (i,j)
// with i < j. Minimizing the resulting objective maximizes the total
// weight of edges crossing between the two groups.
package qubo
