package dataprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gymcli/pkg/contracts/domain"
)

func textRow(cells ...string) []domain.Value {
	row := make([]domain.Value, len(cells))
	for i, c := range cells {
		if c == "" {
			row[i] = domain.Unknown()
		} else {
			row[i] = domain.Text(c)
		}
	}
	return row
}

func TestNormalizeSchema_ColumnUnion(t *testing.T) {
	a := domain.NewTable([]string{"Event", "Rank", "Score"})
	a.AppendRow(textRow("Vault", "1", "15.766"))

	b := domain.NewTable([]string{"Event", "Rank", "Pen", "Score"})
	b.AppendRow(textRow("Floor", "1", "-0.1", "14.800"))

	out := NormalizeSchema([]*domain.Table{a, b}, NormalizeOptions{
		IdentityColumns: []string{"Event"},
		Mode:            CoerceColumnwise,
	})

	// First-seen order: a's columns, then b's new Pen column.
	assert.Equal(t, []string{"Event", "Rank", "Score", "Pen"}, out.Columns)
	require.Len(t, out.Rows, 2)

	// a's row has no Pen value; the hole is the unknown marker.
	assert.True(t, out.Rows[0][3].IsUnknown())
	assert.Equal(t, domain.Number(-0.1), out.Rows[1][3])

	// Identity column stays text even though "1" would coerce.
	assert.Equal(t, domain.Text("Vault"), out.Rows[0][0])
	assert.Equal(t, domain.Number(1), out.Rows[0][1])
}

func TestNormalizeSchema_ColumnwiseKeepsMixedColumnsText(t *testing.T) {
	a := domain.NewTable([]string{"Rank", "Note"})
	a.AppendRow(textRow("1", "DNS"))
	a.AppendRow(textRow("2", "8.1"))

	out := NormalizeSchema([]*domain.Table{a}, NormalizeOptions{Mode: CoerceColumnwise})

	// "DNS" blocks coercion of the whole Note column; "8.1" stays text.
	assert.Equal(t, domain.Text("DNS"), out.Rows[0][1])
	assert.Equal(t, domain.Text("8.1"), out.Rows[1][1])
	assert.Equal(t, domain.Number(1), out.Rows[0][0])
}

func TestNormalizeSchema_CellwisePerCell(t *testing.T) {
	a := domain.NewTable([]string{"Rank", "Note"})
	a.AppendRow(textRow("1", "DNS"))
	a.AppendRow(textRow("2", "8.1"))

	out := NormalizeSchema([]*domain.Table{a}, NormalizeOptions{Mode: CoerceCellwise})

	// Cellwise: parseable cells become numbers, the rest unknown.
	assert.True(t, out.Rows[0][1].IsUnknown())
	assert.Equal(t, domain.Number(8.1), out.Rows[1][1])
}

func TestNormalizeSchema_Idempotent(t *testing.T) {
	a := domain.NewTable([]string{"Event", "Score"})
	a.AppendRow(textRow("Vault", "15.766"))
	a.AppendRow(textRow("Vault", ""))

	opts := NormalizeOptions{IdentityColumns: []string{"Event"}, Mode: CoerceCellwise}
	once := NormalizeSchema([]*domain.Table{a}, opts)
	twice := NormalizeSchema([]*domain.Table{once}, opts)

	assert.Equal(t, once.Columns, twice.Columns)
	assert.Equal(t, once.Rows, twice.Rows)
}

func TestNormalizeSchema_EmptyInput(t *testing.T) {
	out := NormalizeSchema(nil, NormalizeOptions{})
	assert.True(t, out.IsEmpty())
	assert.Empty(t, out.Columns)
}
