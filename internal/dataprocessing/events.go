package dataprocessing

import (
	"fmt"
	"regexp"
	"strings"

	"gymcli/internal/config"
	"gymcli/pkg/contracts/domain"
)

var (
	rankHeaderRe = regexp.MustCompile(`\bRank\b`)
	nameHeaderRe = regexp.MustCompile(`\bName\b`)
)

// FindHeaderRow locates the header row of an event-finals table: the first
// row among the leading rows that mentions both Rank and Name. Falls back
// to row 0 when no such row exists, so cleaning still proceeds.
func FindHeaderRow(grid [][]string) int {
	limit := len(grid)
	if limit > config.HeaderSearchRows {
		limit = config.HeaderSearchRows
	}
	for i := 0; i < limit; i++ {
		joined := strings.Join(grid[i], " ")
		if rankHeaderRe.MatchString(joined) && nameHeaderRe.MatchString(joined) {
			return i
		}
	}
	return 0
}

// MakeUniqueColumns trims column names, replaces empty ones with
// "Unnamed", and suffixes duplicates with _2, _3, ... so every column name
// is unique.
func MakeUniqueColumns(cols []string) []string {
	seen := make(map[string]int, len(cols))
	out := make([]string, 0, len(cols))
	for _, c := range cols {
		c = strings.TrimSpace(c)
		if c == "" {
			c = "Unnamed"
		}
		seen[c]++
		if seen[c] == 1 {
			out = append(out, c)
		} else {
			out = append(out, fmt.Sprintf("%s_%d", c, seen[c]))
		}
	}
	return out
}

// CleanEventTable turns one raw candidate grid into a text table: empty
// columns dropped, header row discovered and lifted into column names
// (made unique), cells trimmed, fully-empty rows dropped, and the "Pen."
// header variant renamed to "Pen". Returns an empty table when nothing
// survives cleaning.
func CleanEventTable(grid [][]string) *domain.Table {
	grid = dropEmptyColumns(grid)
	if len(grid) == 0 {
		return domain.NewTable(nil)
	}

	hdrIdx := FindHeaderRow(grid)
	headers := MakeUniqueColumns(padRow(grid[hdrIdx], rowWidth(grid)))
	for i, h := range headers {
		headers[i] = strings.ReplaceAll(h, "Pen.", "Pen")
	}

	table := domain.NewTable(headers)
	for _, row := range grid[hdrIdx+1:] {
		cells := padRow(row, len(headers))
		empty := true
		values := make([]domain.Value, len(cells))
		for j, cell := range cells {
			cell = strings.TrimSpace(cell)
			if cell == "" {
				values[j] = domain.Unknown()
				continue
			}
			values[j] = domain.Text(cell)
			empty = false
		}
		if !empty {
			table.AppendRow(values)
		}
	}
	return table
}

// AttachEvent prepends the page's classified event label as the leading
// column of every row.
func AttachEvent(table *domain.Table, event string) *domain.Table {
	out := domain.NewTable(append([]string{"Event"}, table.Columns...))
	for _, row := range table.Rows {
		out.AppendRow(append([]domain.Value{domain.Text(event)}, row...))
	}
	return out
}

// rowWidth returns the widest row of a ragged grid.
func rowWidth(grid [][]string) int {
	w := 0
	for _, row := range grid {
		if len(row) > w {
			w = len(row)
		}
	}
	return w
}

// padRow extends a ragged row with empty cells to the target width.
func padRow(row []string, width int) []string {
	if len(row) >= width {
		return row[:width]
	}
	out := make([]string, width)
	copy(out, row)
	return out
}

// dropEmptyColumns removes column positions that are empty in every row.
func dropEmptyColumns(grid [][]string) [][]string {
	width := rowWidth(grid)
	if width == 0 {
		return nil
	}
	keep := make([]bool, width)
	for _, row := range grid {
		for j, cell := range row {
			if strings.TrimSpace(cell) != "" {
				keep[j] = true
			}
		}
	}

	out := make([][]string, 0, len(grid))
	for _, row := range grid {
		padded := padRow(row, width)
		cells := make([]string, 0, width)
		for j, cell := range padded {
			if keep[j] {
				cells = append(cells, cell)
			}
		}
		out = append(out, cells)
	}
	return out
}
