// Package toolchain selects the cargo binary and rustup channel.
package toolchain

import (
	"os"

	"github.com/nightconcept/cargo-extra-go/internal/core/args"
)

const (
	// BinEnv overrides the cargo binary. Cargo sets it for its subcommands.
	BinEnv = "CARGO"
	// DefaultBin is used when BinEnv is unset.
	DefaultBin = "cargo"
	// DefaultChannel is used when no channel was given.
	DefaultChannel = "stable"
)

// Toolchain picks the toolchain cargo runs with.
type Toolchain struct {
	// stable, beta, nightly, or a custom toolchain name
	Channel string `toml:"channel,omitempty" yaml:"channel,omitempty"`
}

// ChannelOrDefault returns the configured channel or DefaultChannel.
func (t Toolchain) ChannelOrDefault() string {
	return args.FirstSet(t.Channel, DefaultChannel)
}

// Bin returns the cargo binary to run.
func (t Toolchain) Bin() string {
	if bin := os.Getenv(BinEnv); bin != "" {
		return bin
	}
	return DefaultBin
}

var (
	_ args.Args              = Toolchain{}
	_ args.Merger[Toolchain] = (*Toolchain)(nil)
)

// ToArgs emits --channel only when one was set explicitly.
func (t Toolchain) ToArgs() []string {
	return args.Append([]string{}, "--channel", t.Channel)
}

// Merge adopts other's channel only when none is set.
func (t *Toolchain) Merge(other Toolchain) {
	t.Channel = args.FirstSet(t.Channel, other.Channel)
}
