// Package clitest runs cargo-extra commands against a scripted cargo binary.
package clitest

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/nightconcept/cargo-extra-go/internal/cli/app"
	"github.com/nightconcept/cargo-extra-go/internal/core/toolchain"
)

//go:embed testdata/metadata.json
var metadataJSON []byte

// Cargo describes how the scripted cargo answers each subcommand.
type Cargo struct {
	// Output of `cargo tree`
	Tree string
	// Subcommand that exits 3 after printing "boom" to stderr
	Fail string
}

// Install writes the scripted cargo into a temporary directory and points
// the CARGO variable at it. It returns the file that records every
// invocation, one line of arguments per call.
func Install(t *testing.T, fake Cargo) string {
	t.Helper()
	dir := t.TempDir()

	metaPath := filepath.Join(dir, "metadata.json")
	require.NoError(t, os.WriteFile(metaPath, metadataJSON, 0644))
	treePath := filepath.Join(dir, "tree.txt")
	require.NoError(t, os.WriteFile(treePath, []byte(fake.Tree), 0644))
	callsPath := filepath.Join(dir, "calls")

	var script strings.Builder
	script.WriteString("#!/bin/sh\n")
	fmt.Fprintf(&script, "echo \"$*\" >> %q\n", callsPath)
	if fake.Fail != "" {
		fmt.Fprintf(&script, "if [ \"$1\" = %q ]; then echo boom >&2; exit 3; fi\n", fake.Fail)
	}
	script.WriteString("case \"$1\" in\n")
	fmt.Fprintf(&script, "metadata) cat %q ;;\n", metaPath)
	fmt.Fprintf(&script, "tree) cat %q ;;\n", treePath)
	script.WriteString("*) echo \"$*\" ;;\n")
	script.WriteString("esac\n")

	bin := filepath.Join(dir, "cargo-fake")
	require.NoError(t, os.WriteFile(bin, []byte(script.String()), 0755))
	t.Setenv(toolchain.BinEnv, bin)
	return callsPath
}

// Calls returns the recorded invocations.
func Calls(t *testing.T, callsPath string) []string {
	t.Helper()
	data, err := os.ReadFile(callsPath)
	if os.IsNotExist(err) {
		return nil
	}
	require.NoError(t, err)
	return strings.Split(strings.TrimSpace(string(data)), "\n")
}

// Run executes the application with argv (without the program name) and
// returns what it wrote to stdout and stderr. The defaults file is looked up
// in an empty temporary directory.
func Run(t *testing.T, argv ...string) (stdout, stderr string, err error) {
	t.Helper()
	return RunWithConfig(t, t.TempDir(), argv...)
}

// RunWithConfig is Run with the defaults file read from configDir.
func RunWithConfig(t *testing.T, configDir string, argv ...string) (stdout, stderr string, err error) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")
	color.NoColor = true

	var outBuf, errBuf bytes.Buffer
	a := app.New("v0.1.0")
	a.Writer = &outBuf
	a.ErrWriter = &errBuf
	a.ExitErrHandler = func(*cli.Context, error) {}

	full := []string{"cargo-extra", "--config", configDir}
	err = a.Run(append(full, argv...))
	return outBuf.String(), errBuf.String(), err
}
