// Package dataset models labeled multi-dimensional arrays: variables
// with named dimensions backed by ordered coordinate arrays, grouped
// into datasets with shared coordinates and metadata attributes.
//
// Datasets are persisted as self-describing JSON documents; see
// [Load] and [Save]. Individual 1-D variables can be exported as CSV
// for downstream tooling.
package dataset
