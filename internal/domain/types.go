package domain

import "sort"

// Pair is an unordered pair of node identifiers in canonical form: I <= J
// under lexicographic string comparison. A diagonal pair has I == J.
type Pair struct {
	I string
	J string
}

// OrderedPair canonicalises (u, v) so that the smaller identifier comes first.
func OrderedPair(u, v string) Pair {
	if v < u {
		u, v = v, u
	}
	return Pair{I: u, J: v}
}

// Diagonal returns the degenerate pair (i, i).
func Diagonal(i string) Pair { return Pair{I: i, J: i} }

// IsDiagonal reports whether p is a degenerate (i, i) pair.
func (p Pair) IsDiagonal() bool { return p.I == p.J }

// QUBO maps canonical node pairs to coefficients of a quadratic unconstrained
// binary optimization problem. Diagonal pairs carry the linear terms; absent
// off-diagonal pairs are implicitly zero.
type QUBO map[Pair]float64

// Variables returns the sorted set of node identifiers appearing in q.
func (q QUBO) Variables() []string {
	seen := make(map[string]struct{}, len(q))
	for p := range q {
		seen[p.I] = struct{}{}
		seen[p.J] = struct{}{}
	}
	vars := make([]string, 0, len(seen))
	for v := range seen {
		vars = append(vars, v)
	}
	sort.Strings(vars)
	return vars
}

// Edge is an undirected weighted edge between two nodes, canonicalised so
// that U precedes V lexicographically.
type Edge struct {
	U      string
	V      string
	Weight float64
}

// Sample is one assignment returned by the annealing service.
type Sample struct {
	Assignment  map[string]int
	Energy      float64
	Occurrences int
}

// SampleSet is a collection of samples ordered ascending by energy, so the
// first element is the best solution found.
type SampleSet []Sample

// First returns the lowest-energy sample. ok is false for an empty set.
func (s SampleSet) First() (Sample, bool) {
	if len(s) == 0 {
		return Sample{}, false
	}
	return s[0], true
}

// Solution is the interpreted best sample: each node mapped to a binary
// group (1 = Trade, 0 = Keep) plus the raw energy of the assignment.
type Solution struct {
	Groups map[string]int
	Energy float64
}

// Group labels as rendered in reports and visualizations.
const (
	GroupKeep  = 0
	GroupTrade = 1
)

// Label returns the human-readable group label for the node id.
func (s Solution) Label(id string) string {
	if s.Groups[id] == GroupTrade {
		return "Trade"
	}
	return "Keep"
}
