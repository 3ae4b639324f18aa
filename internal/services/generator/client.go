package generator

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
	"strings"

	"starbarcode/internal/barcode"
	"starbarcode/internal/services"
)

// Result is what a successful generator run reported.
type Result struct {
	// ArtifactPath is the trimmed stdout of the run.
	ArtifactPath string
	Stdout       string
	Stderr       string
	// Name holds the parsed file name when it follows the edition naming
	// convention.
	Name *ArtifactName
}

// Failure describes an unsuccessful run. Diagnostic is the generator's own
// output, preferring stderr.
type Failure struct {
	ExitCode   int
	Diagnostic string
	Err        error
}

func (f *Failure) Error() string {
	var b strings.Builder
	switch {
	case f.Err != nil:
		b.WriteString(f.Err.Error())
	case f.ExitCode != 0:
		fmt.Fprintf(&b, "exit status %d", f.ExitCode)
	default:
		b.WriteString("generator run failed")
	}
	if f.Diagnostic != "" {
		b.WriteString(": ")
		b.WriteString(f.Diagnostic)
	}
	return b.String()
}

func (f *Failure) Unwrap() error { return f.Err }

// Option configures the client.
type Option func(*Client)

// WithExecutor injects a custom executor (primarily for tests).
func WithExecutor(exec services.Executor) Option {
	return func(c *Client) {
		if exec != nil {
			c.exec = exec
		}
	}
}

// WithFailOnStderr controls whether diagnostic output on a zero exit status
// counts as a failure.
func WithFailOnStderr(enabled bool) Option {
	return func(c *Client) {
		c.failOnStderr = enabled
	}
}

// Client runs the barcode generator.
type Client struct {
	exec         services.Executor
	failOnStderr bool
}

// New constructs a generator client.
func New(opts ...Option) *Client {
	client := &Client{
		exec:         services.CommandExecutor{},
		failOnStderr: true,
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// Generate executes inv and returns the artifact location it printed. Once
// started the subprocess is not tied to ctx cancellation.
func (c *Client) Generate(ctx context.Context, inv barcode.Invocation) (Result, error) {
	if strings.TrimSpace(inv.Binary) == "" {
		return Result{}, services.Wrap(services.ErrConfiguration, "generator", "run", "generator binary not configured", nil)
	}

	out, err := c.exec.Run(context.WithoutCancel(ctx), inv.Binary, inv.Args)
	stderr := strings.TrimSpace(out.Stderr)
	stdout := strings.TrimSpace(out.Stdout)
	if err != nil {
		marker := services.ErrExternalTool
		if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
			marker = services.ErrNotFound
		}
		return Result{}, &Failure{
			ExitCode:   out.ExitCode,
			Diagnostic: firstNonEmpty(stderr, stdout),
			Err:        services.Wrap(marker, "generator", "run", "", err),
		}
	}
	if out.ExitCode != 0 {
		return Result{}, &Failure{ExitCode: out.ExitCode, Diagnostic: firstNonEmpty(stderr, stdout)}
	}
	if c.failOnStderr && stderr != "" {
		return Result{}, &Failure{
			Diagnostic: stderr,
			Err:        errors.New("generator wrote to stderr"),
		}
	}
	if stdout == "" {
		return Result{}, &Failure{Err: errors.New("generator reported no artifact path")}
	}

	result := Result{
		ArtifactPath: stdout,
		Stdout:       out.Stdout,
		Stderr:       out.Stderr,
	}
	if name, ok := ParseArtifactName(stdout); ok {
		result.Name = &name
	}
	return result, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
