package cargo

import (
	"fmt"

	"github.com/nightconcept/cargo-extra-go/internal/core/deptree"
	"github.com/nightconcept/cargo-extra-go/internal/core/metadata"
)

// GetDeps returns every package p depends on, directly or transitively,
// through edges of the given kind. Unknown means every kind.
//
// The list comes from `cargo tree`. Lines that cannot be parsed or that name
// a package missing from the metadata are logged and skipped. p itself is
// never part of the result and each dependency appears once.
func (o *Options) GetDeps(p *metadata.Package, kind metadata.DependencyKind) ([]*metadata.Package, error) {
	meta, err := o.Metadata()
	if err != nil {
		return nil, err
	}

	index := make(map[string]*metadata.Package, len(meta.Packages))
	for _, pkg := range meta.Packages {
		index[deptree.Key(pkg.Name, pkg.Version)] = pkg
	}

	out, err := o.runner()(o.Toolchain.Bin(), deptree.Args(kind, p.ManifestPath)...)
	if err != nil {
		return nil, fmt.Errorf("failed to run cargo tree on %s: %w", p.Name, err)
	}

	log := o.log().With("package", p.Name, "edges", kind.Edges())
	entries, skipped := deptree.Parse(out)
	for _, line := range skipped {
		log.Warn("skipping unrecognized cargo tree line", "line", line)
	}

	seen := map[metadata.PackageID]bool{p.ID: true}
	var deps []*metadata.Package
	for _, e := range entries {
		dep, ok := index[e.Key()]
		if !ok {
			log.Warn("dependency not found in metadata", "dependency", e.Key())
			continue
		}
		if seen[dep.ID] {
			continue
		}
		seen[dep.ID] = true
		deps = append(deps, dep)
	}
	return deps, nil
}
