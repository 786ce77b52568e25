// Package commands wires the tradecut CLI: solve a barter network on a
// remote annealer, export its QUBO, or list the available solvers.
package commands
