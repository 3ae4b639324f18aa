// Package edition computes the identifiers printed on a daily edition's
// barcode: ISO week, price code, sequence number, the header line, and the
// file name the generator uses.
//
// The orchestrator never uses these values to fill in prompts; they back the
// "edition" command so operators can look up what to type in special
// sequence mode.
package edition
