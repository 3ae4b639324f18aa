// Package preflight provides readiness checks for the executables and
// filesystem paths a barcode request depends on.
//
// The "starbarcode check" command renders every result as a table. The
// request command runs the same checks before prompting so an operator does
// not answer prompts for a request that cannot complete.
package preflight
