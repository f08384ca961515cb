// Package dataprocessing implements the line-reconstruction pipeline that
// turns raw PDF cell grids into scoring records.
//
// The stages run strictly forward, each producing a fresh structure:
//
//	raw cell grid -> normalized lines -> role matches -> records -> table
//
// Line normalization collapses each raw row into one whitespace-normalized
// string. Role matchers classify lines by regex (team header, athlete
// identity, difficulty/score triplets, execution/penalty pairs). The
// assemblers stitch adjacent lines into records: the individual all-around
// pipeline uses fixed offsets around each identity line with an
// all-or-nothing policy, while the team pipeline runs a single forward
// scan carrying the current team as mutable context and accepts partial
// records. The schema normalizer aligns heterogeneous blocks onto one
// canonical column union and applies best-effort numeric coercion.
//
// Pattern literals are the most fragile part of the system - they encode
// the actual report layouts - so each lives in a named constant with unit
// tests of its own.
package dataprocessing
