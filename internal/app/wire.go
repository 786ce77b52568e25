package app

import (
	"tradecut/internal/render"
	"tradecut/internal/sapi"
	"tradecut/internal/services/solver"
)

// Wire constructs the dependency graph from cfg: the service client is built
// here and injected into the solve pipeline, never held as package state.
func Wire(cfg Config) *App {
	client := sapi.NewClient(cfg.Endpoint, cfg.Token, cfg.Solver)
	return &App{
		Client:   client,
		Solver:   solver.New(client),
		Renderer: render.NewPNG(),
	}
}
