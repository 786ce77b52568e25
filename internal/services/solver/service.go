package solver

import (
	"context"

	"tradecut/internal/domain"
	"tradecut/internal/network"
	"tradecut/internal/qubo"
	"tradecut/internal/solution"
)

// DefaultNumReads is the sample count used when the caller passes 0.
const DefaultNumReads = 1000

// Service solves trade networks through an annealing sampler.
type Service struct {
	sampler domain.Sampler
}

func New(sampler domain.Sampler) *Service {
	return &Service{sampler: sampler}
}

// Solve builds the QUBO for net, samples it numReads times, and returns the
// lowest-energy assignment as a Solution. The QUBO is rebuilt fresh on every
// call.
func (s *Service) Solve(ctx context.Context, net *network.Network, numReads int) (domain.Solution, error) {
	if numReads <= 0 {
		numReads = DefaultNumReads
	}

	q := qubo.Build(net)
	set, err := s.sampler.SampleQUBO(ctx, q, numReads)
	if err != nil {
		return domain.Solution{}, err
	}

	best, ok := set.First()
	if !ok {
		return domain.Solution{}, &domain.ServiceError{Op: "solve", Message: "empty sample set"}
	}
	return solution.Interpret(best), nil
}
