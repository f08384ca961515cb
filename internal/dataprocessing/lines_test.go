package dataprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "collapses runs", input: "SMITH   Jane\t USA", want: "SMITH Jane USA"},
		{name: "trims edges", input: "  13.233  ", want: "13.233"},
		{name: "already clean", input: "1 101 SMITH Jane USA D E", want: "1 101 SMITH Jane USA D E"},
		{name: "empty", input: "   ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeText(tt.input))
		})
	}
}

func TestCollapseRow(t *testing.T) {
	tests := []struct {
		name  string
		cells []string
		want  string
	}{
		{
			name:  "drops placeholders and joins",
			cells: []string{"", "12", "  SMITH   Jane ", "USA", "None"},
			want:  "12 SMITH Jane USA",
		},
		{
			name:  "nan placeholder",
			cells: []string{"nan", "6.400", "15.766"},
			want:  "6.400 15.766",
		},
		{
			name:  "all placeholders",
			cells: []string{"", "None", "  "},
			want:  "",
		},
		{
			name:  "nil row",
			cells: nil,
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CollapseRow(tt.cells))
		})
	}
}

func TestNormalizeLines(t *testing.T) {
	grid := [][]string{
		{"6.400", "15.766 (1)"},
		{"", "None"},
		{"1", "101", "SMITH Jane", "USA", "D E"},
		{"9.366", "", "8.700"},
	}

	got := NormalizeLines(grid)

	// The empty row is dropped, so the identity line sits directly after
	// the difficulty line in the output.
	assert.Equal(t, []string{
		"6.400 15.766 (1)",
		"1 101 SMITH Jane USA D E",
		"9.366 8.700",
	}, got)
}
