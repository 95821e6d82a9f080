package deps

import (
	"errors"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/nightconcept/cargo-extra-go/internal/cli/flags"
	"github.com/nightconcept/cargo-extra-go/internal/cli/output"
	"github.com/nightconcept/cargo-extra-go/internal/core/cargo"
	"github.com/nightconcept/cargo-extra-go/internal/core/metadata"
)

// NewDepsCommand returns the `deps` command.
func NewDepsCommand() *cli.Command {
	return &cli.Command{
		Name:      "deps",
		Usage:     "Lists the transitive dependencies of a package, or of the selected packages",
		ArgsUsage: "[flags] [name]",
		Flags: append(flags.All(), &cli.StringFlag{
			Name:  "edges",
			Usage: "Dependency kinds to follow: normal, dev, build or all",
			Value: "normal",
		}),
		Action: depsAction,
	}
}

func depsAction(c *cli.Context) error {
	if stray := flags.StrayFlag(c); stray != "" {
		return cli.Exit(fmt.Sprintf("Error: flag %s must come before the package name", stray), 1)
	}
	if c.NArg() > 1 {
		return cli.Exit("Error: deps accepts at most one package name", 1)
	}
	kind, err := metadata.ParseDependencyKind(c.String("edges"))
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error: %v", err), 1)
	}

	opts, err := flags.Resolve(c)
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error: %v", err), 1)
	}
	opts.Slop = nil

	pkgs, err := targets(opts, c.Args().First())
	if err != nil {
		return err
	}

	w := c.App.Writer
	for i, p := range pkgs {
		deps, err := opts.GetDeps(p, kind)
		if err != nil {
			return cli.Exit(fmt.Sprintf("Error: %v", err), 1)
		}
		if i > 0 {
			fmt.Fprintln(w)
		}
		title := fmt.Sprintf("%s@%s %s dependencies", p.Name, p.VersionString(), kind.Edges())
		output.Packages(w, title, deps, "No dependencies found.")
	}
	return nil
}

// targets is the named package, or the packages selected by the workspace
// flags when name is empty.
func targets(opts *cargo.Options, name string) ([]*metadata.Package, error) {
	if name == "" {
		pkgs, err := opts.CurrentPackages()
		if err != nil {
			return nil, cli.Exit(fmt.Sprintf("Error: %v", err), 1)
		}
		return pkgs, nil
	}

	p, err := opts.FindPackage(name)
	var similar *cargo.SimilarPackageError
	switch {
	case errors.As(err, &similar):
		return nil, cli.Exit(fmt.Sprintf("Error: package %s not found, did you mean %s?", similar.Name, similar.Similar), 1)
	case err != nil:
		return nil, cli.Exit(fmt.Sprintf("Error: %v", err), 1)
	case p == nil:
		return nil, cli.Exit(fmt.Sprintf("Error: package %s not found", name), 1)
	}
	return []*metadata.Package{p}, nil
}
