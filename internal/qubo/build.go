package qubo

import (
	"tradecut/internal/domain"
	"tradecut/internal/network"
)

// Build maps the current network state to a QUBO coefficient map. It is a
// pure function of the graph: calling it twice on an unchanged network
// yields identical maps.
//
// Every node gets a diagonal entry, so isolated nodes appear with
// coefficient 0 and no quadratic terms. Each unordered pair (i, j) with an
// edge is emitted exactly once, under lexicographic order i < j; pairs
// without an edge get no entry.
func Build(net *network.Network) domain.QUBO {
	q := make(domain.QUBO, net.NodeCount()+net.EdgeCount())
	for _, i := range net.Nodes() {
		degree := 0.0
		for j, w := range net.Neighbors(i) {
			degree += w
			if i < j {
				q[domain.OrderedPair(i, j)] = 2 * w
			}
		}
		q[domain.Diagonal(i)] = -degree
	}
	return q
}
