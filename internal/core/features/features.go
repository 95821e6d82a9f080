// Package features holds the cargo feature-selection flags.
package features

import (
	"strings"

	"github.com/nightconcept/cargo-extra-go/internal/core/args"
	"github.com/nightconcept/cargo-extra-go/internal/core/metadata"
)

// Features selects which cargo features are activated.
type Features struct {
	// Activate all available features
	AllFeatures bool `toml:"all_features,omitempty" yaml:"all_features,omitempty"`
	// Do not activate the `default` feature
	NoDefaultFeatures bool `toml:"no_default_features,omitempty" yaml:"no_default_features,omitempty"`
	// Features to activate, in command-line order
	Features []string `toml:"features,omitempty" yaml:"features,omitempty"`
}

var (
	_ args.Args             = Features{}
	_ args.Merger[Features] = (*Features)(nil)
)

// ToArgs serializes the selection. AllFeatures and Features are emitted
// independently; cargo resolves the overlap.
func (f Features) ToArgs() []string {
	args := make([]string, 0, 4)
	if f.AllFeatures {
		args = append(args, "--all-features")
	}
	if f.NoDefaultFeatures {
		args = append(args, "--no-default-features")
	}
	if len(f.Features) > 0 {
		args = append(args, "--features", strings.Join(f.Features, " "))
	}
	return args
}

// Merge OR's the flags and appends other's features.
func (f *Features) Merge(other Features) {
	f.AllFeatures = f.AllFeatures || other.AllFeatures
	f.NoDefaultFeatures = f.NoDefaultFeatures || other.NoDefaultFeatures
	f.Features = append(f.Features, other.Features...)
}

// ForwardMetadata passes the selection on to a metadata query so that
// optional dependencies are resolved the same way the build will.
func (f Features) ForwardMetadata(cmd *metadata.Command) {
	cmd.AllFeatures = f.AllFeatures
	cmd.NoDefaultFeatures = f.NoDefaultFeatures
	cmd.Features = append([]string(nil), f.Features...)
}
