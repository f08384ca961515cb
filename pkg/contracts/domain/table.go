package domain

// Table is an ordered set of rows sharing one column order. Blocks produced
// per page or per team are Tables; the schema normalizer merges them into a
// single Table over the union of their columns.
type Table struct {
	Columns []string  `json:"columns"`
	Rows    [][]Value `json:"rows"`
}

// NewTable creates an empty table with the given column order.
func NewTable(columns []string) *Table {
	return &Table{Columns: append([]string(nil), columns...)}
}

// AppendRow adds one row. Short rows are padded with the unknown marker so
// every stored row has exactly len(Columns) cells; extra cells are dropped.
func (t *Table) AppendRow(row []Value) {
	fixed := make([]Value, len(t.Columns))
	for i := range fixed {
		if i < len(row) {
			fixed[i] = row[i]
		} else {
			fixed[i] = Unknown()
		}
	}
	t.Rows = append(t.Rows, fixed)
}

// ColumnIndex returns the position of the named column, or -1.
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// IsEmpty reports whether the table has no rows.
func (t *Table) IsEmpty() bool {
	return len(t.Rows) == 0
}
