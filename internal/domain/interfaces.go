package domain

import "context"

// Sampler submits a QUBO to an annealing service and returns the sampled
// assignments, ordered ascending by energy. The call blocks until the
// service answers or ctx is cancelled.
type Sampler interface {
	SampleQUBO(ctx context.Context, q QUBO, numReads int) (SampleSet, error)
}

// Renderer draws the solved network to an image artifact at path.
type Renderer interface {
	Render(edges []Edge, sol Solution, path string) error
}
