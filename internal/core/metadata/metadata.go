// Package metadata models the output of `cargo metadata --format-version 1`
// and runs the query.
package metadata

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// FormatVersion is the only output format this package understands.
const FormatVersion = 1

// PackageID is cargo's opaque package identifier.
type PackageID string

// Metadata is the workspace description returned by cargo.
type Metadata struct {
	Packages                []*Package  `json:"packages"`
	WorkspaceMembers        []PackageID `json:"workspace_members"`
	WorkspaceDefaultMembers []PackageID `json:"workspace_default_members,omitempty"`
	Resolve                 *Resolve    `json:"resolve"`
	TargetDirectory         string      `json:"target_directory"`
	WorkspaceRoot           string      `json:"workspace_root"`
	Version                 int         `json:"version"`
}

// Package is a single crate in the dependency graph.
type Package struct {
	ID           PackageID           `json:"id"`
	Name         string              `json:"name"`
	Version      *semver.Version     `json:"version"`
	Source       *string             `json:"source"`
	ManifestPath string              `json:"manifest_path"`
	Dependencies []Dependency        `json:"dependencies"`
	Targets      []Target            `json:"targets"`
	Features     map[string][]string `json:"features,omitempty"`
}

// Dependency is a dependency declaration inside a package manifest.
type Dependency struct {
	Name     string         `json:"name"`
	Req      string         `json:"req"`
	Kind     DependencyKind `json:"kind"`
	Optional bool           `json:"optional"`
	Rename   *string        `json:"rename,omitempty"`
	Target   *string        `json:"target,omitempty"`
	Path     string         `json:"path,omitempty"`
}

// Target is a build target (lib, bin, test, ...) of a package.
type Target struct {
	Name       string   `json:"name"`
	Kind       []string `json:"kind"`
	CrateTypes []string `json:"crate_types"`
	SrcPath    string   `json:"src_path"`
}

// Resolve is the resolved dependency graph. Only the root is used here.
type Resolve struct {
	Root  *PackageID `json:"root"`
	Nodes []Node     `json:"nodes,omitempty"`
}

// Node is a package in the resolved graph.
type Node struct {
	ID           PackageID   `json:"id"`
	Dependencies []PackageID `json:"dependencies"`
}

// Parse decodes a `cargo metadata` JSON document.
func Parse(data []byte) (*Metadata, error) {
	var meta Metadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("failed to decode cargo metadata: %w", err)
	}
	if meta.Version != 0 && meta.Version != FormatVersion {
		return nil, fmt.Errorf("unsupported cargo metadata format version %d", meta.Version)
	}
	return &meta, nil
}

// Package looks up a package by id.
func (m *Metadata) Package(id PackageID) *Package {
	for _, p := range m.Packages {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// WorkspacePackages returns the workspace members in the order cargo lists
// packages.
func (m *Metadata) WorkspacePackages() []*Package {
	members := make(map[PackageID]bool, len(m.WorkspaceMembers))
	for _, id := range m.WorkspaceMembers {
		members[id] = true
	}
	var pkgs []*Package
	for _, p := range m.Packages {
		if members[p.ID] {
			pkgs = append(pkgs, p)
		}
	}
	return pkgs
}

// VersionString returns the package version, or "" when cargo reported none.
func (p *Package) VersionString() string {
	if p.Version == nil {
		return ""
	}
	return p.Version.String()
}

// WasmBinName is the file name rustc gives the target when compiled to wasm.
func (t Target) WasmBinName() string {
	return strings.ReplaceAll(t.Name, "-", "_") + ".wasm"
}
