// Package barcode models a single barcode request and the generator command
// line derived from it.
//
// A Request is a closed sum type with three variants (Tomorrow, ExplicitDate,
// SpecialSequence). BuildInvocation maps a request onto the argv contract of
// the external generator; it performs no I/O so the shape of every command
// line can be tested without running the generator.
package barcode
