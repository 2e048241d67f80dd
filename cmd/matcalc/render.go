// SPDX-License-Identifier: MIT

package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/linal/dyn"
)

var (
	// frameStyle draws the outer box around a rendered matrix.
	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)

	// cellStyle right-aligns each cell; the width is set per matrix.
	cellStyle = lipgloss.NewStyle().Align(lipgloss.Right)
)

// renderGrid lays the matrix out as a framed, column-aligned grid.
// Cells are padded to the widest rendering across the whole matrix.
func renderGrid(m *dyn.Matrix[float64]) string {
	rows, cols := m.Size()
	if rows == 0 || cols == 0 {
		return frameStyle.Render("empty")
	}
	grid := m.StringsGrid()

	width := 0
	for c := range grid {
		for r := range grid[c] {
			if len(grid[c][r]) > width {
				width = len(grid[c][r])
			}
		}
	}
	cell := cellStyle.Width(width)

	lines := make([]string, rows)
	var r, c int
	for r = 0; r < rows; r++ {
		cells := make([]string, cols)
		for c = 0; c < cols; c++ {
			cells[c] = cell.Render(grid[c][r])
		}
		lines[r] = strings.Join(cells, "  ")
	}

	return frameStyle.Render(strings.Join(lines, "\n"))
}
