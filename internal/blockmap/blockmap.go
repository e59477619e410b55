// Package blockmap lays out the first four periods of the periodic table on an
// 18-column grid, coloured by block.
package blockmap

import "underground/internal/orbital"

// Columns is the width of the grid.
const Columns = 18

// Cell is one element's position on the grid.
type Cell struct {
	Z      int
	Row    int
	Column int
	Block  orbital.Letter
}

// Period returns the grid row (period) for z.
func Period(z int) int {
	switch {
	case z > 18:
		return 4
	case z > 10:
		return 3
	case z > 2:
		return 2
	default:
		return 1
	}
}

// Column returns the 1-based grid column for z.
func Column(z int) int {
	switch {
	case z == 1:
		return 1
	case z == 2:
		return 18
	case z >= 3 && z <= 4:
		return z - 2
	case z >= 5 && z <= 10:
		return z + 8
	case z >= 11 && z <= 12:
		return z - 10
	case z >= 13 && z <= 18:
		return z
	case z >= 19 && z <= 30:
		return z - 18
	}
	return 1
}

// Layout returns the cells for Z = 1..maxZ in ascending order. maxZ is capped
// at orbital.MaxAtomicNumber; the grid has no positions past Zn.
func Layout(maxZ int) []Cell {
	maxZ = min(max(maxZ, 0), orbital.MaxAtomicNumber)
	cells := make([]Cell, 0, maxZ)
	for z := 1; z <= maxZ; z++ {
		cells = append(cells, Cell{
			Z:      z,
			Row:    Period(z),
			Column: Column(z),
			Block:  orbital.BlockOf(z),
		})
	}
	return cells
}

// Grid arranges Layout(maxZ) into rows; empty positions are nil.
func Grid(maxZ int) [][]*Cell {
	cells := Layout(maxZ)
	rows := 0
	for _, c := range cells {
		rows = max(rows, c.Row)
	}
	grid := make([][]*Cell, rows)
	for i := range grid {
		grid[i] = make([]*Cell, Columns)
	}
	for i := range cells {
		c := &cells[i]
		grid[c.Row-1][c.Column-1] = c
	}
	return grid
}

// Blurb is the caption shown under the map for the selected element's block.
func Blurb(block orbital.Letter) string {
	switch block {
	case orbital.LetterD:
		return "Transition metals (d-block) are high energy rebels!"
	case orbital.LetterP:
		return "p-block elements bring the variety."
	default:
		return "s-block elements are building the foundation."
	}
}
