package cargo

import (
	"fmt"
	"os"
	"slices"

	"github.com/nightconcept/cargo-extra-go/internal/core/metadata"
)

// Metadata returns the workspace metadata, running `cargo metadata` on the
// first call. The manifest path and feature selection at that moment decide
// the query; later changes are not seen. A failed query is not cached.
func (o *Options) Metadata() (*metadata.Metadata, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.meta != nil {
		return o.meta, nil
	}

	cmd := o.Manifest.MetadataCommand()
	o.Features.ForwardMetadata(cmd)
	cmd.CargoPath = o.Toolchain.Bin()
	cmd.Run = o.runner()
	o.log().Debug("querying cargo metadata", "command", cmd.Args())

	meta, err := cmd.Exec()
	if err != nil {
		return nil, err
	}
	o.meta = meta
	return meta, nil
}

// ManifestPath is the absolute path of the manifest in context.
func (o *Options) ManifestPath() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current directory: %w", err)
	}
	return o.Manifest.Resolve(cwd), nil
}

// TargetDir is the directory build artifacts go to.
func (o *Options) TargetDir() (string, error) {
	meta, err := o.Metadata()
	if err != nil {
		return "", err
	}
	return meta.TargetDirectory, nil
}

// CurrentPackages returns the packages selected by the workspace flags.
func (o *Options) CurrentPackages() ([]*metadata.Package, error) {
	meta, err := o.Metadata()
	if err != nil {
		return nil, err
	}
	included, _ := o.Workspace.PartitionPackages(meta)
	return included, nil
}

// Packages returns every package in the dependency graph.
func (o *Options) Packages() ([]*metadata.Package, error) {
	meta, err := o.Metadata()
	if err != nil {
		return nil, err
	}
	return slices.Clone(meta.Packages), nil
}
