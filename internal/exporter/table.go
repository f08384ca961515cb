package exporter

import (
	"log/slog"

	"gymcli/internal/config"
	apperrors "gymcli/internal/errors"
	"gymcli/pkg/contracts/domain"
)

// TableExporter renders result tables to CSV through the shared CSVWriter.
type TableExporter struct {
	csv    *CSVWriter
	logger *slog.Logger
}

// NewTableExporter creates a table exporter writing under paths.
func NewTableExporter(paths *config.Paths, logger *slog.Logger) *TableExporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &TableExporter{
		csv:    NewCSVWriter(paths),
		logger: logger.With(slog.String("component", "table_exporter")),
	}
}

// ExportCSV streams the table to filePath row by row. The header row is
// the table's column set; unknown cells serialize as empty fields.
func (e *TableExporter) ExportCSV(filePath string, t *domain.Table) error {
	if t == nil || len(t.Columns) == 0 {
		return apperrors.NewStorageError("refusing to export table with no columns", nil)
	}

	sw, err := e.csv.CreateStreamWriter(filePath, t.Columns)
	if err != nil {
		return apperrors.NewStorageError("create result csv", err).
			WithContext("file", filePath)
	}
	for _, row := range t.Rows {
		if err := sw.WriteRecord(formatRow(row)); err != nil {
			sw.Close()
			return apperrors.NewStorageError("write result csv", err).
				WithContext("file", filePath)
		}
	}
	if err := sw.Close(); err != nil {
		return apperrors.NewStorageError("flush result csv", err).
			WithContext("file", filePath)
	}

	e.logger.Info("Result table exported",
		slog.String("file", filePath),
		slog.Int("rows", len(t.Rows)),
		slog.Int("columns", len(t.Columns)))
	return nil
}
