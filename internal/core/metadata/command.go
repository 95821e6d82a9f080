package metadata

import (
	"fmt"
	"strings"

	"github.com/nightconcept/cargo-extra-go/internal/core/process"
)

// Command describes a `cargo metadata` invocation.
type Command struct {
	// CargoPath is the cargo binary. Empty means "cargo".
	CargoPath         string
	ManifestPath      string
	AllFeatures       bool
	NoDefaultFeatures bool
	Features          []string
	// OtherOptions are appended after the generated flags.
	OtherOptions []string
	// Run executes the query. Nil means process.Run.
	Run process.Runner
}

// NewCommand returns a query for the manifest in the current directory.
func NewCommand() *Command {
	return &Command{}
}

// Args returns the arguments passed to cargo.
func (c *Command) Args() []string {
	args := []string{"metadata", "--format-version", fmt.Sprint(FormatVersion)}
	if c.ManifestPath != "" {
		args = append(args, "--manifest-path", c.ManifestPath)
	}
	if c.AllFeatures {
		args = append(args, "--all-features")
	}
	if c.NoDefaultFeatures {
		args = append(args, "--no-default-features")
	}
	if len(c.Features) > 0 {
		args = append(args, "--features", strings.Join(c.Features, " "))
	}
	return append(args, c.OtherOptions...)
}

// Exec runs the query and decodes its output.
func (c *Command) Exec() (*Metadata, error) {
	bin := c.CargoPath
	if bin == "" {
		bin = "cargo"
	}
	run := c.Run
	if run == nil {
		run = process.Run
	}

	out, err := run(bin, c.Args()...)
	if err != nil {
		if c.ManifestPath != "" {
			return nil, fmt.Errorf("failed to query cargo metadata for %s: %w", c.ManifestPath, err)
		}
		return nil, fmt.Errorf("failed to query cargo metadata: %w", err)
	}
	return Parse(out)
}
