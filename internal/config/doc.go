// Package config provides centralized configuration management for the
// results-extraction binaries. It handles environment-backed settings with
// defaults, compile-time pipeline constants, and executable-relative path
// resolution.
//
// # Configuration Sources
//
// Configuration is loaded from the following sources in order of precedence:
//
//  1. Environment variables (GYM_* namespace)
//  2. Default values
//
// Every setting has a default, so no environment is required to run. The
// pipeline tunables themselves - regex literals, event-name markers, the
// canonical output schema - are deliberately fixed constants (see
// constants.go), since they encode the report formats being parsed.
//
// # Path Management
//
// The package provides centralized path management through the Paths type,
// which resolves all file system paths relative to the executable location:
//
//	paths, err := config.GetPaths()
//	pdfPath := paths.GetDownloadPath("events.pdf")
//	csvPath := paths.GetReportPath("events.csv")
package config
