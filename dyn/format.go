// SPDX-License-Identifier: MIT

// Package dyn: display formatting. Rendering is a display-only convenience:
// the sole contract is that every element appears, in row-major visual order,
// one line per matrix row. Widths are padded to the widest cell so columns
// line up — measured over all cells, not a sampled one, so alignment holds
// for any content.
package dyn

import (
	"fmt"
	"strings"
)

// StringsGrid converts every element to its string form, preserving the
// column-major shape: out[c][r] is the rendering of the element at (r,c).
// Used by String and by external renderers (the matcalc CLI).
// Complexity: O(rows*cols).
func (m *Matrix[T]) StringsGrid() [][]string {
	out := make([][]string, m.cols)
	for c := range m.data {
		col := make([]string, m.rows)
		for r := range m.data[c] {
			col[r] = fmt.Sprintf("%v", m.data[c][r])
		}
		out[c] = col
	}

	return out
}

// String renders the matrix as bracketed rows with right-aligned cells:
//
//	| 4  2|
//	| 3  2|
//	| 2 -1|
//
// The cell width is the maximum string length across all cells. The empty
// matrix renders as "||".
// Complexity: O(rows*cols).
func (m *Matrix[T]) String() string {
	if m.rows == 0 || m.cols == 0 {
		return "||"
	}
	grid := m.StringsGrid()

	// Widest cell across the whole grid decides the column width.
	width := 0
	for c := range grid {
		for r := range grid[c] {
			if len(grid[c][r]) > width {
				width = len(grid[c][r])
			}
		}
	}

	var sb strings.Builder
	var r, c int
	for r = 0; r < m.rows; r++ {
		sb.WriteByte('|')
		for c = 0; c < m.cols; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%*s", width, grid[c][r])
		}
		sb.WriteString("|\n")
	}

	return sb.String()
}
