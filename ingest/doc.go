// Package ingest turns user input into a validated, deduplicated edge list.
//
// Accepted sources:
//   - Text: one edge per line. The separator is detected per line, first
//     match wins: ",", tab, "-", "|", otherwise runs of whitespace. Only the
//     first three fields are used: source, target, weight.
//   - Inline: like Text, with ";" also accepted as a line break
//     ("A B 1; B C 2").
//   - CSV and XLSX tables: the first row is a header and is skipped; the
//     first three columns are source, target, weight; blank rows are skipped.
//   - YAML and JSON documents: {edges: [{source, target, weight}]} or a bare
//     list of such records.
//
// Every edge goes through core.NormalizeID and core.Validate. Invalid lines
// are reported in Report.Skipped; repeated unordered pairs keep the first
// occurrence and are reported in Report.Duplicates. Neither is an error: the
// only failure for well-formed input is ErrNoEdges when nothing survives.
package ingest
