// Package deptree builds and parses `cargo tree` invocations that print a
// flat dependency list.
package deptree

import (
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/nightconcept/cargo-extra-go/internal/core/metadata"
)

// Entry is one line of `cargo tree --prefix none` output.
type Entry struct {
	Name    string
	Version *semver.Version
}

// Key matches the key produced for metadata packages by Key.
func (e Entry) Key() string {
	return Key(e.Name, e.Version)
}

// Key identifies a package by name and version, e.g. "serdev1.0.197".
func Key(name string, v *semver.Version) string {
	if v == nil {
		return name + "v"
	}
	return name + "v" + v.String()
}

// Args returns the cargo arguments listing every dependency of the manifest's
// package reachable through edges of the given kind.
func Args(kind metadata.DependencyKind, manifestPath string) []string {
	return []string{
		"tree",
		"--prefix", "none",
		"--edges", kind.Edges(),
		"--manifest-path", manifestPath,
	}
}

// Parse reads `name vX.Y.Z [suffix...]` lines of any length. Blank lines are
// ignored; lines that do not start with a name and a version are returned in
// skipped.
func Parse(out []byte) (entries []Entry, skipped []string) {
	for _, line := range strings.Split(string(out), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			skipped = append(skipped, line)
			continue
		}
		v, err := semver.NewVersion(fields[1])
		if err != nil {
			skipped = append(skipped, line)
			continue
		}
		entries = append(entries, Entry{Name: fields[0], Version: v})
	}
	return entries, skipped
}
