// Package app loads configuration and assembles the dependency graph for
// the CLI: the annealing service client, the solve pipeline, and the
// renderer.
package app
