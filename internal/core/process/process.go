// Package process runs external programs and captures their output.
package process

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Runner executes name with args and returns what it wrote to stdout.
// A non-zero exit must be reported as an error.
type Runner func(name string, args ...string) ([]byte, error)

// ExitError is returned by Run when the program exits unsuccessfully.
type ExitError struct {
	Command  string
	ExitCode int
	Stderr   string
	Err      error
}

func (e *ExitError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("%s exited with code %d: %s", e.Command, e.ExitCode, e.Stderr)
	}
	return fmt.Sprintf("%s exited with code %d", e.Command, e.ExitCode)
}

func (e *ExitError) Unwrap() error { return e.Err }

// Run is the default Runner. It blocks until the program exits.
func Run(name string, args ...string) ([]byte, error) {
	cmd := exec.Command(name, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err == nil {
		return out, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return nil, &ExitError{
			Command:  strings.TrimSpace(name + " " + strings.Join(args, " ")),
			ExitCode: exitErr.ExitCode(),
			Stderr:   strings.TrimSpace(stderr.String()),
			Err:      err,
		}
	}
	return nil, fmt.Errorf("failed to run %s: %w", name, err)
}
