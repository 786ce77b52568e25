package solution

import (
	"fmt"
	"io"

	"tradecut/internal/domain"
)

// Interpret maps a sample to a Solution. The energy passes through
// unmodified; group lookup is literal (1 = Trade, 0 = Keep).
func Interpret(s domain.Sample) domain.Solution {
	groups := make(map[string]int, len(s.Assignment))
	for id, bit := range s.Assignment {
		groups[id] = bit
	}
	return domain.Solution{Groups: groups, Energy: s.Energy}
}

// WriteReport prints each node's group label in the given node order,
// followed by the solution energy.
func WriteReport(w io.Writer, nodes []string, sol domain.Solution) {
	fmt.Fprintln(w, "Solution found:")
	fmt.Fprintln(w, "--------------")
	for _, id := range nodes {
		fmt.Fprintf(w, "%s: %s\n", id, sol.Label(id))
	}
	fmt.Fprintf(w, "\nSolution energy: %g\n", sol.Energy)
}
