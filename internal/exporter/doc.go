// Package exporter writes extraction result tables to disk.
//
// CSVWriter opens streaming writers that emit a header row and a UTF-8
// BOM for Excel compatibility, then take rows one at a time.
//
// TableExporter renders a result table to CSV, with the unknown marker
// serialized as an empty field.
//
// WorkbookExporter renders the same table to an xlsx workbook, typing
// numeric cells as numbers so spreadsheet formulas work on them.
package exporter
