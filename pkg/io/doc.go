// Package io reads and writes graphs in structured document and adjacency
// matrix formats.
//
// # Overview
//
// Two kinds of encodings are supported:
//
//   - Structured documents: a list of vertex records and a list of edge
//     records, available as JSON (the primary format), TOML and YAML.
//   - Delimited matrix: an N×N grid of weights, one row per line.
//
// Every reader runs a full reconciliation pass before returning, so a graph
// obtained from this package always has edges whose endpoints exist.
//
// # Document Format
//
// The document has two required top-level arrays:
//
//	{
//	  "vertices": [
//	    {"number": 0},
//	    {"number": 1},
//	    {"number": 2}
//	  ],
//	  "edges": [
//	    {"from": 0, "weight": 5, "to": 1},
//	    {"from": 1, "weight": 3, "to": 2}
//	  ]
//	}
//
// All fields are required. Derived per-vertex adjacency is never written.
// TOML and YAML use the same keys:
//
//	[[vertices]]
//	number = 0
//
//	[[edges]]
//	from = 0
//	weight = 5
//	to = 1
//
// # Matrix Format
//
// One row per line, cells separated by a single character ([DefaultSeparator]
// is ';'). A numeric cell at row y, column x is the weight of edge y→x; blank
// or non-numeric cells mean no edge:
//
//	;5;
//	;;3
//	;;
//
// The matrix holds at most one weight per ordered pair, which matches the
// graph's rule of at most one edge per pair.
//
// # Files
//
// Use [Load] and [Save] to pick the codec from the file extension
// (.json, .toml, .yaml/.yml, .csv/.txt/.matrix) or from [Options]. The
// Import*/Export* helpers are shortcuts for a fixed format. Files are read
// and written whole; a failed write may leave a truncated file.
//
// # Errors
//
// Malformed input and missing fields are PARSE_ERROR, edges that reference
// unknown vertices are NOT_FOUND, missing files are FILE_NOT_FOUND and
// unknown formats are UNSUPPORTED (codes from pkg/errors).
package io
