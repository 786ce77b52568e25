package qubo

import (
	"encoding/json"
	"os"
	"sort"

	"tradecut/internal/domain"
)

// Document is the stable JSON form of a QUBO, suitable for inspection or
// offline submission. Terms are sorted by (I, J) so output is deterministic.
type Document struct {
	Variables []string `json:"variables"`
	Terms     []Term   `json:"terms"`
}

// Term is one QUBO coefficient. I == J marks a linear (diagonal) term.
type Term struct {
	I    string  `json:"i"`
	J    string  `json:"j"`
	Bias float64 `json:"bias"`
}

// NewDocument converts q to its exportable form.
func NewDocument(q domain.QUBO) Document {
	terms := make([]Term, 0, len(q))
	for p, bias := range q {
		terms = append(terms, Term{I: p.I, J: p.J, Bias: bias})
	}
	sort.Slice(terms, func(a, b int) bool {
		if terms[a].I != terms[b].I {
			return terms[a].I < terms[b].I
		}
		return terms[a].J < terms[b].J
	})
	return Document{Variables: q.Variables(), Terms: terms}
}

// Marshal renders q as indented deterministic JSON.
func Marshal(q domain.QUBO) ([]byte, error) {
	return json.MarshalIndent(NewDocument(q), "", "  ")
}

// WriteFile writes the JSON document via a temp file then rename.
func WriteFile(path string, q domain.QUBO) error {
	b, err := Marshal(q)
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, append(b, '\n'), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
