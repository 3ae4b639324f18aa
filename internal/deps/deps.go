// Package deps reports whether the external executables a request shells out
// to can be found.
package deps

import (
	"fmt"
	"os/exec"
	"strings"
)

// Requirement defines an external executable starbarcode relies on.
type Requirement struct {
	Name        string
	Command     string
	Description string
	Optional    bool
}

// Status reports the availability of a dependency.
type Status struct {
	Name        string
	Command     string
	Description string
	Optional    bool
	Available   bool
	// Path is the resolved location when Available.
	Path   string
	Detail string
}

// Missing reports whether a required dependency could not be found.
func (s Status) Missing() bool {
	return !s.Available && !s.Optional
}

// CheckBinaries evaluates the provided requirements and reports availability.
// Commands containing a path separator are checked in place; bare names are
// looked up on PATH.
func CheckBinaries(requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		cmd := strings.TrimSpace(req.Command)
		status := Status{
			Name:        req.Name,
			Command:     cmd,
			Description: strings.TrimSpace(req.Description),
			Optional:    req.Optional,
		}
		if cmd == "" {
			status.Detail = "command not configured"
			results = append(results, status)
			continue
		}
		resolved, err := exec.LookPath(cmd)
		if err != nil {
			status.Detail = fmt.Sprintf("binary %q not found", cmd)
			results = append(results, status)
			continue
		}
		status.Available = true
		status.Path = resolved
		results = append(results, status)
	}
	return results
}

// AnyMissing reports whether a required dependency is unavailable.
func AnyMissing(statuses []Status) bool {
	for _, s := range statuses {
		if s.Missing() {
			return true
		}
	}
	return false
}
