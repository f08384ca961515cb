package dataprocessing

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "gymcli/internal/errors"
	"gymcli/internal/pdftables"
	"gymcli/pkg/contracts/domain"
)

// pageText places one string at page coordinates (x, y).
type pageText struct {
	x, y int
	s    string
}

func escapePDFString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "(", `\(`)
	s = strings.ReplaceAll(s, ")", `\)`)
	return s
}

// writeResultsPDF builds a minimal single-page uncompressed PDF with the
// given positioned strings and writes it to a temp file.
func writeResultsPDF(t *testing.T, texts []pageText) string {
	t.Helper()

	var stream strings.Builder
	for _, txt := range texts {
		stream.WriteString("BT /F1 12 Tf 1 0 0 1 ")
		stream.WriteString(strconv.Itoa(txt.x))
		stream.WriteString(" ")
		stream.WriteString(strconv.Itoa(txt.y))
		stream.WriteString(" Tm (")
		stream.WriteString(escapePDFString(txt.s))
		stream.WriteString(") Tj ET\n")
	}

	var b strings.Builder
	b.WriteString("%PDF-1.4\n")
	offsets := map[int]int{}

	offsets[1] = b.Len()
	b.WriteString("1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n")

	offsets[2] = b.Len()
	b.WriteString("2 0 obj\n<< /Type /Pages /Kids [3 0 R] /Count 1 >>\nendobj\n")

	offsets[3] = b.Len()
	b.WriteString("3 0 obj\n")
	b.WriteString("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Contents 4 0 R /Resources << /Font << /F1 5 0 R >> >> >>\n")
	b.WriteString("endobj\n")

	content := stream.String()
	offsets[4] = b.Len()
	b.WriteString("4 0 obj\n<< /Length ")
	b.WriteString(strconv.Itoa(len(content)))
	b.WriteString(" >>\nstream\n")
	b.WriteString(content)
	b.WriteString("endstream\nendobj\n")

	offsets[5] = b.Len()
	b.WriteString("5 0 obj\n<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>\nendobj\n")

	xrefStart := b.Len()
	b.WriteString("xref\n0 6\n")
	b.WriteString("0000000000 65535 f \n")
	for i := 1; i <= 5; i++ {
		off := strconv.Itoa(offsets[i])
		b.WriteString(strings.Repeat("0", 10-len(off)) + off)
		b.WriteString(" 00000 n \n")
	}
	b.WriteString("trailer\n<< /Root 1 0 R /Size 6 >>\nstartxref\n")
	b.WriteString(strconv.Itoa(xrefStart))
	b.WriteString("\n%%EOF\n")

	path := filepath.Join(t.TempDir(), "results.pdf")
	require.NoError(t, os.WriteFile(path, []byte(b.String()), 0644))
	return path
}

func openResultsPDF(t *testing.T, texts []pageText) *pdftables.Document {
	t.Helper()
	doc, err := pdftables.Open(writeResultsPDF(t, texts), nil)
	require.NoError(t, err)
	t.Cleanup(func() { doc.Close() })
	return doc
}

func TestProcessorRunIndividual(t *testing.T) {
	doc := openResultsPDF(t, []pageText{
		{50, 700, "6.400 15.766 (1) 5.800 14.500 (2) 5.600 13.900 (3) 5.400 13.600 (4) 57.766"},
		{50, 680, "1 101 SMITH Jane USA D E"},
		{50, 660, "9.366 8.700 8.300 8.200"},
	})

	table, err := NewProcessor(nil, nil).RunIndividual(context.Background(), doc)
	require.NoError(t, err)

	assert.Equal(t, domain.RecordColumns(), table.Columns)
	require.Len(t, table.Rows, 1)

	row := table.Rows[0]
	assert.Equal(t, domain.Number(1), row[0])
	assert.Equal(t, domain.Number(101), row[1])
	assert.Equal(t, domain.Text("SMITH Jane"), row[2])
	assert.Equal(t, domain.Text("USA"), row[3])
	assert.Equal(t, domain.Number(57.766), row[len(row)-1])
}

func TestProcessorRunIndividualNothingExtracted(t *testing.T) {
	doc := openResultsPDF(t, []pageText{
		{50, 700, "medal ceremony schedule"},
	})

	_, err := NewProcessor(nil, nil).RunIndividual(context.Background(), doc)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNothingExtracted)
}

func TestProcessorRunTeam(t *testing.T) {
	doc := openResultsPDF(t, []pageText{
		{50, 700, "1 USA - United States of America 43.299 (1) 42.801 (2) 41.965 (1) 42.032 (1) 170.097"},
		{50, 680, "101 BILES Simone D E 6.400 15.766 5.800 14.500 5.600 13.900 5.400 13.600"},
		{50, 660, "9.366 8.700 8.300 8.200"},
		{50, 640, "102 LEE Suni D E 5.300 13.233 6.500 15.300"},
		{50, 620, "7.933 8.800"},
	})

	table, records, err := NewProcessor(nil, nil).RunTeam(context.Background(), doc)
	require.NoError(t, err)

	require.Len(t, records, 2)
	assert.Equal(t, "BILES Simone", records[0].Name)
	assert.Equal(t, 4, records[0].ResolvedApparatusCount())
	assert.Equal(t, "LEE Suni", records[1].Name)
	assert.Equal(t, 2, records[1].ResolvedApparatusCount())

	assert.Equal(t, domain.RecordColumns(), table.Columns)
	assert.Len(t, table.Rows, 2)
}

func TestProcessorRunEvents(t *testing.T) {
	doc := openResultsPDF(t, []pageText{
		{50, 740, "Women's Vault"},
		{50, 700, "Rank"}, {150, 700, "Name"}, {250, 700, "Score"},
		{50, 680, "1"}, {150, 680, "BILES Simone"}, {250, 680, "15.766"},
		{50, 660, "2"}, {150, 660, "ANDRADE Rebeca"}, {250, 660, "15.300"},
	})

	table, err := NewProcessor(nil, nil).RunEvents(context.Background(), doc)
	require.NoError(t, err)

	assert.Equal(t, []string{"Event", "Rank", "Name", "Score"}, table.Columns)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, domain.Text("Vault"), table.Rows[0][0])
	assert.Equal(t, domain.Text("BILES Simone"), table.Rows[0][2])
	assert.Equal(t, domain.Number(15.766), table.Rows[0][3])
	assert.Equal(t, domain.Number(2), table.Rows[1][1])
}

func TestProcessorRunEventsNothingExtracted(t *testing.T) {
	doc := openResultsPDF(t, []pageText{})

	_, err := NewProcessor(nil, nil).RunEvents(context.Background(), doc)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNothingExtracted)
}
