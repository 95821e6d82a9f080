// Package manifest holds the --manifest-path flag.
package manifest

import (
	"path/filepath"

	"github.com/nightconcept/cargo-extra-go/internal/core/args"
	"github.com/nightconcept/cargo-extra-go/internal/core/metadata"
)

// DefaultPath is used when no manifest path was given.
const DefaultPath = "./Cargo.toml"

// Manifest points cargo at a Cargo.toml.
type Manifest struct {
	// Path to Cargo.toml; empty means the current directory's manifest.
	ManifestPath string `toml:"manifest_path,omitempty" yaml:"manifest_path,omitempty"`
}

var (
	_ args.Args             = Manifest{}
	_ args.Merger[Manifest] = (*Manifest)(nil)
)

// ToArgs emits --manifest-path when a path is set.
func (m Manifest) ToArgs() []string {
	if m.ManifestPath == "" {
		return []string{}
	}
	return []string{"--manifest-path", m.ManifestPath}
}

// Merge adopts other's path only when none is set.
func (m *Manifest) Merge(other Manifest) {
	if m.ManifestPath == "" {
		m.ManifestPath = other.ManifestPath
	}
}

// MetadataCommand returns a metadata query for this manifest.
func (m Manifest) MetadataCommand() *metadata.Command {
	cmd := metadata.NewCommand()
	cmd.ManifestPath = m.ManifestPath
	return cmd
}

// Resolve returns the manifest path, falling back to DefaultPath, joined to
// cwd when relative.
func (m Manifest) Resolve(cwd string) string {
	p := m.ManifestPath
	if p == "" {
		p = DefaultPath
	}
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(cwd, p)
}
