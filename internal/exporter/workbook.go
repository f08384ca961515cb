package exporter

import (
	"log/slog"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"gymcli/internal/config"
	apperrors "gymcli/internal/errors"
	"gymcli/pkg/contracts/domain"
)

// WorkbookExporter renders result tables to xlsx workbooks. Numeric cells
// are written as numbers, text cells as strings, unknown cells are left
// blank.
type WorkbookExporter struct {
	paths  *config.Paths
	logger *slog.Logger
}

// NewWorkbookExporter creates a workbook exporter writing under paths.
func NewWorkbookExporter(paths *config.Paths, logger *slog.Logger) *WorkbookExporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &WorkbookExporter{
		paths:  paths,
		logger: logger.With(slog.String("component", "workbook_exporter")),
	}
}

// ExportWorkbook writes the table to an xlsx file with one sheet.
func (e *WorkbookExporter) ExportWorkbook(filePath, sheetName string, t *domain.Table) error {
	if t == nil || len(t.Columns) == 0 {
		return apperrors.NewStorageError("refusing to export table with no columns", nil)
	}
	if sheetName == "" {
		sheetName = "Results"
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return apperrors.NewStorageError("rename workbook sheet", err)
	}

	header := make([]interface{}, len(t.Columns))
	for i, c := range t.Columns {
		header[i] = c
	}
	if err := e.writeRow(f, sheetName, 1, header); err != nil {
		return err
	}

	for i, row := range t.Rows {
		cells := make([]interface{}, len(row))
		for j, v := range row {
			switch v.Kind {
			case domain.KindNumeric:
				cells[j] = v.Num
			case domain.KindText:
				cells[j] = v.Str
			default:
				cells[j] = nil
			}
		}
		if err := e.writeRow(f, sheetName, i+2, cells); err != nil {
			return err
		}
	}

	fullPath := filePath
	if !filepath.IsAbs(fullPath) {
		fullPath = e.paths.GetReportPath(filePath)
	}
	if err := f.SaveAs(fullPath); err != nil {
		return apperrors.NewStorageError("save workbook", err).
			WithContext("file", fullPath)
	}

	e.logger.Info("Result workbook exported",
		slog.String("file", fullPath),
		slog.String("sheet", sheetName),
		slog.Int("rows", len(t.Rows)))
	return nil
}

func (e *WorkbookExporter) writeRow(f *excelize.File, sheet string, rowNum int, cells []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return apperrors.NewStorageError("compute cell coordinates", err)
	}
	if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
		return apperrors.NewStorageError("write workbook row", err)
	}
	return nil
}
