// Package render draws the solved trade network: DOT source generation plus
// a graphviz-backed PNG renderer implementing domain.Renderer. Nodes are
// filled by trading group so the two sides of the cut are visible at a
// glance.
package render
