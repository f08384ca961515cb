package dataprocessing

import (
	"gymcli/pkg/contracts/domain"
)

// CoercionMode selects how the schema normalizer applies numeric coercion.
type CoercionMode int

const (
	// CoerceCellwise converts each cell independently; a cell that fails
	// to parse becomes the unknown marker. Used by the all-around
	// pipelines, whose columns are typed by construction.
	CoerceCellwise CoercionMode = iota

	// CoerceColumnwise converts a column only if every non-empty cell in
	// it parses as numeric; otherwise the whole column stays text. Used
	// by the event-finals pipeline, whose columns come straight from PDF
	// headers.
	CoerceColumnwise
)

// NormalizeOptions configures the schema normalizer.
type NormalizeOptions struct {
	// IdentityColumns are never coerced; they stay text (names, country
	// codes, event labels).
	IdentityColumns []string
	Mode            CoercionMode
}

// NormalizeSchema aligns heterogeneous blocks onto one canonical table:
// the column set is the union of all blocks' columns in first-seen order
// (never the intersection - a column contributed by a single block is
// kept), every block is reindexed to that union with unknown markers in
// the holes, rows are concatenated in source order, and numeric coercion
// runs per the options. Coercion is idempotent: normalizing an already
// normalized table yields equal values.
func NormalizeSchema(blocks []*domain.Table, opts NormalizeOptions) *domain.Table {
	columns := unionColumns(blocks)
	out := domain.NewTable(columns)

	for _, block := range blocks {
		// Map union position -> block position once per block.
		idx := make([]int, len(columns))
		for c, name := range columns {
			idx[c] = block.ColumnIndex(name)
		}
		for _, row := range block.Rows {
			cells := make([]domain.Value, len(columns))
			for c := range columns {
				if idx[c] >= 0 && idx[c] < len(row) {
					cells[c] = row[idx[c]]
				} else {
					cells[c] = domain.Unknown()
				}
			}
			out.AppendRow(cells)
		}
	}

	coerce(out, opts)
	return out
}

// unionColumns computes the first-seen-wins column union.
func unionColumns(blocks []*domain.Table) []string {
	var columns []string
	seen := make(map[string]bool)
	for _, block := range blocks {
		for _, c := range block.Columns {
			if !seen[c] {
				seen[c] = true
				columns = append(columns, c)
			}
		}
	}
	return columns
}

func coerce(t *domain.Table, opts NormalizeOptions) {
	identity := make(map[string]bool, len(opts.IdentityColumns))
	for _, c := range opts.IdentityColumns {
		identity[c] = true
	}

	for c, name := range t.Columns {
		if identity[name] {
			continue
		}
		switch opts.Mode {
		case CoerceColumnwise:
			if !columnFullyNumeric(t, c) {
				continue
			}
			fallthrough
		default:
			for _, row := range t.Rows {
				v := row[c].Coerce()
				if v.Kind == domain.KindText {
					// Cellwise coercion failure yields the unknown
					// marker, never an error.
					v = domain.Unknown()
				}
				row[c] = v
			}
		}
	}
}

// columnFullyNumeric reports whether every non-unknown cell of the column
// coerces to a number.
func columnFullyNumeric(t *domain.Table, c int) bool {
	for _, row := range t.Rows {
		v := row[c]
		if v.IsUnknown() {
			continue
		}
		if v.Coerce().Kind != domain.KindNumeric {
			return false
		}
	}
	return true
}
