// Package files provides file discovery utilities for the extraction
// binaries.
//
// Discovery locates candidate input PDFs under a base directory, and
// GetLatestFile picks the newest of a set.
// The binaries fall back to the newest downloaded PDF when the
// conventional input file is absent.
package files
