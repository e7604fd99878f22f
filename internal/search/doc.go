// Package search implements the people-search result pipeline: query
// validation and normalization, result filtering, stable sorting, location
// grouping, sanitation, and summary aggregation.
//
// Every function in this package is a pure transformation over its
// arguments: inputs are never mutated, outputs are freshly allocated, and
// no function fails on empty input — the zero value of the return type is
// the universal fallback. This keeps the pipeline total and trivially
// testable without any runtime context.
package search
