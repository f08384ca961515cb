package pdftables

import (
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Grid is a raw cell grid: ordered rows of raw text cells, top-to-bottom
// and left-to-right as laid out on the page. Cells may be empty or contain
// glued-together values; cleanup is the line normalizer's job.
type Grid [][]string

// CellCount returns the number of cells, the size measure used when a page
// yields several candidate tables and the largest one wins.
func (g Grid) CellCount() int {
	n := 0
	for _, row := range g {
		n += len(row)
	}
	return n
}

// LargestGrid returns the grid with the most cells, or nil for no grids.
// Ties keep the earlier grid, so the choice is deterministic.
func LargestGrid(grids []Grid) Grid {
	var best Grid
	for _, g := range grids {
		if best == nil || g.CellCount() > best.CellCount() {
			best = g
		}
	}
	return best
}

// Gap thresholds, in multiples of the row's dominant font size. Fragment
// gaps below wordGapFactor glue onto the current token, below
// cellGapFactor join the current cell with a space, and anything wider
// starts a new cell.
const (
	wordGapFactor = 0.35
	cellGapFactor = 1.6
)

// rowBreakFactor splits row sequences into separate candidate tables when
// the vertical gap between adjacent rows exceeds this multiple of the
// median row spacing on the page.
const rowBreakFactor = 2.5

// buildGrids converts positioned text rows into candidate cell grids.
func buildGrids(rows pdf.Rows) []Grid {
	if len(rows) == 0 {
		return nil
	}

	cellRows := make([][]string, 0, len(rows))
	positions := make([]int64, 0, len(rows))
	for _, row := range rows {
		cells := clusterRow(row.Content)
		if len(cells) == 0 {
			continue
		}
		cellRows = append(cellRows, cells)
		positions = append(positions, row.Position)
	}
	if len(cellRows) == 0 {
		return nil
	}

	breakGap := rowBreakGap(positions)

	var grids []Grid
	current := Grid{cellRows[0]}
	for i := 1; i < len(cellRows); i++ {
		// Rows are ordered top-to-bottom, so Position decreases.
		if float64(positions[i-1]-positions[i]) > breakGap {
			grids = append(grids, current)
			current = Grid{}
		}
		current = append(current, cellRows[i])
	}
	return append(grids, current)
}

// clusterRow groups a row's X-sorted text fragments into cells.
func clusterRow(frags []pdf.Text) []string {
	var cells []string
	var cell strings.Builder

	size := dominantFontSize(frags)
	prevEnd := 0.0
	for i, frag := range frags {
		if frag.S == "" {
			continue
		}
		if i > 0 {
			gap := frag.X - prevEnd
			switch {
			case gap > cellGapFactor*size:
				if s := strings.TrimSpace(cell.String()); s != "" {
					cells = append(cells, s)
				}
				cell.Reset()
			case gap > wordGapFactor*size:
				cell.WriteByte(' ')
			}
		}
		cell.WriteString(frag.S)
		prevEnd = frag.X + frag.W
	}
	if s := strings.TrimSpace(cell.String()); s != "" {
		cells = append(cells, s)
	}
	return cells
}

// dominantFontSize picks a representative font size for gap thresholds.
// Falls back to a typical body size when fragments carry no size.
func dominantFontSize(frags []pdf.Text) float64 {
	for _, f := range frags {
		if f.FontSize > 0 {
			return f.FontSize
		}
	}
	return 10
}

// rowBreakGap derives the vertical gap, in text-space units, beyond which
// two adjacent rows belong to different tables.
func rowBreakGap(positions []int64) float64 {
	if len(positions) < 2 {
		return 1 << 30
	}
	gaps := make([]float64, 0, len(positions)-1)
	for i := 1; i < len(positions); i++ {
		if g := float64(positions[i-1] - positions[i]); g > 0 {
			gaps = append(gaps, g)
		}
	}
	if len(gaps) == 0 {
		return 1 << 30
	}
	sort.Float64s(gaps)
	median := gaps[len(gaps)/2]
	return median * rowBreakFactor
}
