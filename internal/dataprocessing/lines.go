package dataprocessing

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"

	"gymcli/internal/config"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// NormalizeText collapses runs of whitespace to single spaces, trims, and
// applies Unicode NFC normalization (athlete names arrive with combining
// accents from some extractors).
func NormalizeText(s string) string {
	return norm.NFC.String(strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " ")))
}

// CollapseRow joins the surviving cells of one raw row into a single
// normalized line. Cells whose trimmed text is empty or a known extractor
// placeholder are dropped.
func CollapseRow(cells []string) string {
	parts := make([]string, 0, len(cells))
	for _, cell := range cells {
		if isPlaceholder(cell) {
			continue
		}
		parts = append(parts, cell)
	}
	return NormalizeText(strings.Join(parts, " "))
}

// NormalizeLines converts a raw cell grid into the ordered line sequence
// consumed by the assemblers. Rows that collapse to nothing are dropped,
// which shifts indices: adjacency downstream refers to positions in the
// returned slice, not source row numbers.
func NormalizeLines(grid [][]string) []string {
	lines := make([]string, 0, len(grid))
	for _, row := range grid {
		if line := CollapseRow(row); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func isPlaceholder(cell string) bool {
	trimmed := strings.TrimSpace(cell)
	for _, p := range config.CellPlaceholders {
		if trimmed == p {
			return true
		}
	}
	return false
}
