package render

import (
	"context"
	"fmt"
	"os"

	"github.com/goccy/go-graphviz"

	"tradecut/internal/domain"
)

// PNG lays out the solved network with graphviz and writes a PNG artifact.
type PNG struct {
	// Layout engine; neato gives a force-directed placement similar to a
	// spring layout. Empty means neato.
	Layout graphviz.Layout
}

// NewPNG returns a neato-based PNG renderer.
func NewPNG() *PNG {
	return &PNG{Layout: graphviz.NEATO}
}

var _ domain.Renderer = (*PNG)(nil)

// Render writes the network/solution image to path.
func (r *PNG) Render(edges []domain.Edge, sol domain.Solution, path string) error {
	ctx := context.Background()
	graph, err := graphviz.ParseBytes(DOT(edges, sol))
	if err != nil {
		return fmt.Errorf("render: parse dot: %w", err)
	}
	g, err := graphviz.New(ctx)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	defer func() {
		_ = graph.Close()
		_ = g.Close()
	}()

	layout := r.Layout
	if layout == "" {
		layout = graphviz.NEATO
	}
	g.SetLayout(layout)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	defer f.Close()
	if err := g.Render(ctx, graph, graphviz.PNG, f); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}
