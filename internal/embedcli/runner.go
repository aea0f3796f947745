// Package embedcli wraps the external s3vectors-embed command line tool.
// Embedding operations shell out to it rather than calling Bedrock
// directly, so the tool owns model invocation, batching, and retries.
package embedcli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/charmbracelet/log"
)

// Subcommands of the embedding tool.
const (
	SubcommandPut   = "put"
	SubcommandQuery = "query"
)

// ExecError reports a non-zero exit from the embedding tool.
type ExecError struct {
	Command  string
	ExitCode int
	Stderr   string
}

func (e *ExecError) Error() string {
	msg := fmt.Sprintf("%s exited with code %d", e.Command, e.ExitCode)
	if s := strings.TrimSpace(e.Stderr); s != "" {
		msg += ": " + s
	}
	return msg
}

// Result is the decoded output of an embedding tool invocation. When the
// tool prints JSON, Decoded is true and Value holds the parsed document;
// otherwise Text carries the raw output (the tool's table format, for
// example) verbatim.
type Result struct {
	Decoded bool   `json:"decoded"`
	Value   any    `json:"value,omitempty"`
	Text    string `json:"text,omitempty"`
}

// Runner executes the embedding tool. Global flags are rebuilt for every
// invocation; the runner holds no per-call state.
type Runner struct {
	Tool    string
	Region  string
	Profile string
	Debug   bool
}

// NewRunner returns a runner for the given tool binary and AWS settings.
func NewRunner(tool, region, profile string, debug bool) *Runner {
	return &Runner{Tool: tool, Region: region, Profile: profile, Debug: debug}
}

// globalFlags returns a fresh flag list. Callers append to the returned
// slice, so sharing a backing array across invocations would leak one
// call's arguments into the next.
func (r *Runner) globalFlags() []string {
	var flags []string
	if r.Debug {
		flags = append(flags, "--debug")
	}
	if r.Profile != "" {
		flags = append(flags, "--profile", r.Profile)
	}
	if r.Region != "" {
		flags = append(flags, "--region", r.Region)
	}
	return flags
}

// Run invokes the tool with global flags, the subcommand, and the given
// arguments, and returns its stdout. A non-zero exit yields an *ExecError
// carrying the exit code and stderr.
func (r *Runner) Run(ctx context.Context, subcommand string, args []string) (string, error) {
	argv := append(r.globalFlags(), subcommand)
	argv = append(argv, args...)

	log.Debug("Running embedding tool", "tool", r.Tool, "args", argv)

	cmd := exec.CommandContext(ctx, r.Tool, argv...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return "", &ExecError{
			Command:  r.Tool + " " + subcommand,
			ExitCode: exitCode,
			Stderr:   stderr.String(),
		}
	}

	return stdout.String(), nil
}

// Decode parses tool output as JSON when possible and falls back to the
// raw text otherwise. The output is never evaluated or interpreted beyond
// JSON parsing.
func Decode(output string) *Result {
	trimmed := strings.TrimSpace(output)

	var value any
	if err := json.Unmarshal([]byte(trimmed), &value); err == nil {
		return &Result{Decoded: true, Value: value}
	}
	return &Result{Decoded: false, Text: output}
}
