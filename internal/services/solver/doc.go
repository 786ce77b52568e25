// Package solver runs the solve pipeline: build the max-cut QUBO for a
// trade network, submit it to the injected sampler, and interpret the best
// returned sample.
package solver
