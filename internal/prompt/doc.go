// Package prompt defines the operator prompt capability used by the request
// orchestrator and ships two implementations: a survey-based terminal UI and a
// plain line reader for pipes and non-interactive sessions.
package prompt
