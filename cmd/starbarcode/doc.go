// Package main hosts the starbarcode CLI entrypoint and command graph.
//
// Running starbarcode with no subcommand performs one barcode request:
// prompt for the mode and its inputs, run the generator, and hand the
// artifact to the configured placement target. The remaining commands look up
// edition values, check the environment, and scaffold configuration.
//
// Keep this package lean: behaviour belongs in the internal packages, and
// commands here only wire configuration, logging, and terminal streams into
// them.
package main
