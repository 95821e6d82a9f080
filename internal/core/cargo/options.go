// Package cargo combines the argument groups into one set of cargo options
// and answers questions about the workspace they point at.
package cargo

import (
	"log/slog"
	"sync"

	"github.com/nightconcept/cargo-extra-go/internal/core/args"
	"github.com/nightconcept/cargo-extra-go/internal/core/build"
	"github.com/nightconcept/cargo-extra-go/internal/core/features"
	"github.com/nightconcept/cargo-extra-go/internal/core/manifest"
	"github.com/nightconcept/cargo-extra-go/internal/core/metadata"
	"github.com/nightconcept/cargo-extra-go/internal/core/process"
	"github.com/nightconcept/cargo-extra-go/internal/core/toolchain"
	"github.com/nightconcept/cargo-extra-go/internal/core/workspace"
)

// Options is every argument group plus the arguments passed through to cargo
// after `--`.
//
// The metadata accessors cache the first successful `cargo metadata` result
// for the lifetime of the value. Options must not be copied after first use.
type Options struct {
	Features  features.Features   `toml:"features" yaml:"features"`
	Manifest  manifest.Manifest   `toml:"manifest" yaml:"manifest"`
	Workspace workspace.Workspace `toml:"workspace" yaml:"workspace"`
	Toolchain toolchain.Toolchain `toml:"toolchain" yaml:"toolchain"`
	Build     build.Options       `toml:"build" yaml:"build"`

	// Extra arguments passed to cargo after `--`
	Slop []string `toml:"extra_args,omitempty" yaml:"extra_args,omitempty"`

	mu     sync.Mutex
	meta   *metadata.Metadata
	logger *slog.Logger
	run    process.Runner
}

var (
	_ args.Args             = (*Options)(nil)
	_ args.Merger[*Options] = (*Options)(nil)
)

// ToArgs serializes the groups in the order workspace, features, build,
// manifest. The toolchain is applied when the command is created and Slop is
// appended by AddArgsToCmd, so neither is part of the result.
func (o *Options) ToArgs() []string {
	out := o.Workspace.ToArgs()
	out = append(out, o.Features.ToArgs()...)
	out = append(out, o.Build.ToArgs()...)
	return append(out, o.Manifest.ToArgs()...)
}

// Merge combines other into o, o taking precedence. The metadata cache is
// not touched.
func (o *Options) Merge(other *Options) {
	if other == nil {
		return
	}
	o.Features.Merge(other.Features)
	o.Manifest.Merge(other.Manifest)
	o.Workspace.Merge(other.Workspace)
	o.Toolchain.Merge(other.Toolchain)
	o.Build.Merge(other.Build)
	o.Slop = append(o.Slop, other.Slop...)
}

// SetLogger sets the logger used for skipped dependency lines.
func (o *Options) SetLogger(logger *slog.Logger) {
	o.logger = logger
}

// SetRunner replaces the function used to run cargo subprocesses.
func (o *Options) SetRunner(run process.Runner) {
	o.run = run
}

func (o *Options) log() *slog.Logger {
	if o.logger == nil {
		return slog.Default()
	}
	return o.logger
}

func (o *Options) runner() process.Runner {
	if o.run == nil {
		return process.Run
	}
	return o.run
}
