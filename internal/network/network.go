package network

import (
	"sort"

	"tradecut/internal/domain"
)

// Network is an undirected weighted graph of trade desires, backed by an
// adjacency map. Nodes exist implicitly through their edges.
type Network struct {
	adj map[string]map[string]float64
}

// New returns an empty trade network.
func New() *Network {
	return &Network{adj: make(map[string]map[string]float64)}
}

// AddDesire records that the owner of ownerHas wants ownerWants, as an
// undirected edge of weight 1. Re-adding the same pair overwrites the weight.
func (n *Network) AddDesire(ownerHas, ownerWants string) {
	n.AddDesireWeight(ownerHas, ownerWants, 1)
}

// AddDesireWeight is AddDesire with an explicit weight. The weight replaces
// any previous weight for the pair.
func (n *Network) AddDesireWeight(ownerHas, ownerWants string, weight float64) {
	n.set(ownerHas, ownerWants, weight)
	n.set(ownerWants, ownerHas, weight)
}

// AddItem ensures id exists as a node even if no desire mentions it yet.
// Isolated items are "don't care" under the max-cut objective but still show
// up in reports and renderings.
func (n *Network) AddItem(id string) {
	if _, ok := n.adj[id]; !ok {
		n.adj[id] = make(map[string]float64)
	}
}

func (n *Network) set(u, v string, w float64) {
	nbrs, ok := n.adj[u]
	if !ok {
		nbrs = make(map[string]float64)
		n.adj[u] = nbrs
	}
	nbrs[v] = w
}

// Nodes returns all node identifiers in lexicographic order.
func (n *Network) Nodes() []string {
	ids := make([]string, 0, len(n.adj))
	for id := range n.adj {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Neighbors returns a copy of id's neighbor set with edge weights. The
// result is nil for an unknown node.
func (n *Network) Neighbors(id string) map[string]float64 {
	nbrs, ok := n.adj[id]
	if !ok {
		return nil
	}
	out := make(map[string]float64, len(nbrs))
	for v, w := range nbrs {
		out[v] = w
	}
	return out
}

// Edges returns every undirected edge exactly once in canonical (U < V)
// form, sorted by U then V.
func (n *Network) Edges() []domain.Edge {
	edges := make([]domain.Edge, 0, n.EdgeCount())
	for u, nbrs := range n.adj {
		for v, w := range nbrs {
			if u < v {
				edges = append(edges, domain.Edge{U: u, V: v, Weight: w})
			}
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].U != edges[j].U {
			return edges[i].U < edges[j].U
		}
		return edges[i].V < edges[j].V
	})
	return edges
}

// HasEdge reports whether an edge exists between u and v.
func (n *Network) HasEdge(u, v string) bool {
	_, ok := n.adj[u][v]
	return ok
}

// Weight returns the weight of the edge between u and v, or 0 if absent.
func (n *Network) Weight(u, v string) float64 {
	return n.adj[u][v]
}

// NodeCount returns the number of nodes.
func (n *Network) NodeCount() int { return len(n.adj) }

// EdgeCount returns the number of undirected edges. A self-loop counts as
// one edge.
func (n *Network) EdgeCount() int {
	total := 0
	for u, nbrs := range n.adj {
		for v := range nbrs {
			if u == v {
				total += 2
			} else {
				total++
			}
		}
	}
	return total / 2
}

// Example returns the demonstration network from the original barter
// scenario: a four-party trade cycle.
func Example() *Network {
	n := New()
	n.AddDesire("Alice_Bike", "Bob_Laptop")
	n.AddDesire("Bob_Laptop", "Charlie_Guitar")
	n.AddDesire("Charlie_Guitar", "David_Camera")
	n.AddDesire("David_Camera", "Alice_Bike")
	return n
}
