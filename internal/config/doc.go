// Package config loads, normalizes, and validates starbarcode configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment overrides such as
// STARBARCODE_GENERATOR. The Config type centralizes the fixed values the
// request flow depends on: the generator executable, the output directory
// passed as --directory, and the placement target.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
