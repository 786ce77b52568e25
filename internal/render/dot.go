package render

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"tradecut/internal/domain"
)

// Fill colors for the two trading groups.
const (
	colorTrade = "lightcoral"
	colorKeep  = "lightblue"
)

// DOT renders the network and solution as undirected graphviz source. Nodes
// are emitted in lexicographic order and edges in canonical order, so the
// output is deterministic for a given input.
func DOT(edges []domain.Edge, sol domain.Solution) []byte {
	nodes := make(map[string]struct{}, len(sol.Groups))
	for id := range sol.Groups {
		nodes[id] = struct{}{}
	}
	for _, e := range edges {
		nodes[e.U] = struct{}{}
		nodes[e.V] = struct{}{}
	}
	ids := make([]string, 0, len(nodes))
	for id := range nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var buf bytes.Buffer
	buf.WriteString("graph trade {\n")
	buf.WriteString("  label=\"Trade Network Solution\\nRed and blue indicate different trading groups\";\n")
	for _, id := range ids {
		color := colorKeep
		if sol.Groups[id] == domain.GroupTrade {
			color = colorTrade
		}
		fmt.Fprintf(&buf, "  %s [style=filled, fillcolor=%s];\n", quote(id), color)
	}
	for _, e := range edges {
		fmt.Fprintf(&buf, "  %s -- %s;\n", quote(e.U), quote(e.V))
	}
	buf.WriteString("}\n")
	return buf.Bytes()
}

func quote(id string) string {
	return `"` + strings.ReplaceAll(id, `"`, `\"`) + `"`
}
