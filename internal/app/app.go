package app

import (
	"tradecut/internal/domain"
	"tradecut/internal/sapi"
	"tradecut/internal/services/solver"
)

// App bundles the wired collaborators used by the commands.
type App struct {
	Client   *sapi.Client
	Solver   *solver.Service
	Renderer domain.Renderer
}
