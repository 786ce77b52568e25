// Package solution interprets the annealing service's best sample as a
// trading plan and writes the human-readable report.
package solution
