// Package report renders topologies and their metrics as text.
//
// Matrices are printed with 1-based row and column headers inside a
// box-drawing frame; metrics as "label: value" lines; edge lists and sweep
// tables as aligned columns; sweeps additionally as CSV for external
// plotting tools.
package report
