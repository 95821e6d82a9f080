// Package workspace holds the flags that select packages in a cargo
// workspace.
package workspace

import (
	"slices"

	"github.com/nightconcept/cargo-extra-go/internal/core/args"
	"github.com/nightconcept/cargo-extra-go/internal/core/metadata"
)

// Workspace selects the packages a cargo command operates on.
type Workspace struct {
	// Package to process
	Package []string `toml:"package,omitempty" yaml:"package,omitempty"`
	// Process all packages in the workspace
	Workspace bool `toml:"workspace,omitempty" yaml:"workspace,omitempty"`
	// Deprecated synonym for Workspace
	All bool `toml:"all,omitempty" yaml:"all,omitempty"`
	// Exclude packages from being processed
	Exclude []string `toml:"exclude,omitempty" yaml:"exclude,omitempty"`
}

var (
	_ args.Args              = Workspace{}
	_ args.Merger[Workspace] = (*Workspace)(nil)
)

// ToArgs emits --workspace, then every --package, then every --exclude.
func (w Workspace) ToArgs() []string {
	out := make([]string, 0, 4)
	if w.Workspace || w.All {
		out = append(out, "--workspace")
	}
	out = args.Repeat(out, "--package", w.Package)
	return args.Repeat(out, "--exclude", w.Exclude)
}

// Merge OR's the flags and appends other's package lists.
func (w *Workspace) Merge(other Workspace) {
	w.Package = append(w.Package, other.Package...)
	w.Workspace = w.Workspace || other.Workspace
	w.All = w.All || other.All
	w.Exclude = append(w.Exclude, other.Exclude...)
}

// PartitionPackages splits meta's packages into those selected by the flags
// and the rest.
//
// Without flags the resolve root is selected, or every workspace member for
// a virtual manifest. --workspace selects every member. --package selects
// packages by exact name. Excluded names are removed from the selection.
func (w Workspace) PartitionPackages(meta *metadata.Metadata) (included, excluded []*metadata.Package) {
	base := w.baseIDs(meta)
	for _, p := range meta.Packages {
		if base[p.ID] && !slices.Contains(w.Exclude, p.Name) {
			included = append(included, p)
		} else {
			excluded = append(excluded, p)
		}
	}
	return included, excluded
}

func (w Workspace) baseIDs(meta *metadata.Metadata) map[metadata.PackageID]bool {
	ids := make(map[metadata.PackageID]bool)
	members := func() map[metadata.PackageID]bool {
		for _, id := range meta.WorkspaceMembers {
			ids[id] = true
		}
		return ids
	}

	switch {
	case w.Workspace || w.All:
		return members()
	case len(w.Package) > 0:
		for _, p := range meta.Packages {
			if slices.Contains(w.Package, p.Name) {
				ids[p.ID] = true
			}
		}
		return ids
	case meta.Resolve != nil && meta.Resolve.Root != nil:
		ids[*meta.Resolve.Root] = true
		return ids
	default:
		return members()
	}
}
