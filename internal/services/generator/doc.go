// Package generator mediates access to the external barcode generator.
//
// It runs a prepared barcode.Invocation exactly once, captures stdout and
// stderr separately, and turns the generator's one-line stdout into a Result.
// Any failure carries the generator's own diagnostic text so it can be shown
// to the operator unchanged. There is deliberately no retry or timeout: a run
// may allocate a sequence number, and an unresponsive generator blocks the
// request until it exits.
package generator
