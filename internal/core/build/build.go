// Package build holds the cargo build flags.
package build

import "github.com/nightconcept/cargo-extra-go/internal/core/args"

// Flags passed when Optimize is set. They require a nightly toolchain.
var optimizeFlags = []string{
	"-Z=build-std=std,panic_abort",
	"-Z=build-std-features=panic_immediate_abort",
}

// Options are the flags of `cargo build`.
type Options struct {
	// Add additional nightly features for optimizing
	Optimize bool `toml:"optimize,omitempty" yaml:"optimize,omitempty"`
	// Build for the target triple
	Target string `toml:"target,omitempty" yaml:"target,omitempty"`
	// Build all targets
	AllTargets bool `toml:"all_targets,omitempty" yaml:"all_targets,omitempty"`
	// Strip the binary through linker arguments
	LinkArgs bool `toml:"link_args,omitempty" yaml:"link_args,omitempty"`
	// Build artifacts in release mode, with optimizations
	Release bool `toml:"release,omitempty" yaml:"release,omitempty"`
	// Build artifacts with the specified profile
	Profile string `toml:"profile,omitempty" yaml:"profile,omitempty"`
}

var (
	_ args.Args            = Options{}
	_ args.Merger[Options] = (*Options)(nil)
)

// ProfileName is the profile the build will use. An explicit Profile wins
// over Release.
func (o Options) ProfileName() string {
	if o.Profile != "" {
		return o.Profile
	}
	if o.Release {
		return "release"
	}
	return "debug"
}

func (o Options) ToArgs() []string {
	out := []string{}
	if o.Optimize {
		out = append(out, optimizeFlags...)
	}
	out = args.Append(out, "--target", o.Target)
	if o.AllTargets {
		out = append(out, "--all-targets")
	}
	if o.Release {
		out = append(out, "--release")
	}
	return args.Append(out, "--profile", o.Profile)
}

func (o *Options) Merge(other Options) {
	o.Optimize = o.Optimize || other.Optimize
	o.Target = args.FirstSet(o.Target, other.Target)
	o.AllTargets = o.AllTargets || other.AllTargets
	o.LinkArgs = o.LinkArgs || other.LinkArgs
	o.Release = o.Release || other.Release
	o.Profile = args.FirstSet(o.Profile, other.Profile)
}
