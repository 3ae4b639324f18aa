// Package services defines shared utilities consumed by the request
// orchestrator and the adapters for external tools.
//
// Key responsibilities:
//   - Context helpers that stamp request IDs, modes, and stage names for
//     logging and tracing.
//   - Structured error markers plus the Wrap helper so failures from external
//     tools and configuration carry consistent, classifiable context.
//   - The Executor abstraction that makes subprocess execution testable.
//
// Use these helpers when wiring new adapters so error handling and
// observability stay uniform across the tool.
package services
