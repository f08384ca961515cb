// Package pdftables adapts a PDF text-layer reader into the two inputs the
// extraction pipelines consume: per-page plain text (for event
// classification) and per-page cell grids (for line reconstruction).
//
// The package makes no attempt at faithful table-structure recovery. Text
// fragments are grouped into rows by the reader, clustered into cells by
// horizontal gaps, and split into candidate tables by vertical gaps; the
// downstream line normalizer and role matchers tolerate the resulting
// imprecision. This mirrors the role of a stream-mode table extractor: a
// grid of loosely positioned strings, not a semantic table.
package pdftables
