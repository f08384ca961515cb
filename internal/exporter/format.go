package exporter

import (
	"gymcli/pkg/contracts/domain"
)

// formatCell renders one value for CSV output. Unknown values become the
// empty field; numbers print with their shortest exact representation.
func formatCell(v domain.Value) string {
	return v.String()
}

// formatRow renders one table row.
func formatRow(row []domain.Value) []string {
	out := make([]string, len(row))
	for i, v := range row {
		out[i] = formatCell(v)
	}
	return out
}
