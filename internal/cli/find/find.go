package find

import (
	"errors"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/nightconcept/cargo-extra-go/internal/cli/flags"
	"github.com/nightconcept/cargo-extra-go/internal/cli/output"
	"github.com/nightconcept/cargo-extra-go/internal/core/cargo"
)

// NewFindCommand returns the `find` command.
func NewFindCommand() *cli.Command {
	return &cli.Command{
		Name:      "find",
		Usage:     "Finds a package of the dependency graph by name",
		ArgsUsage: "[flags] <name>",
		Flags:     flags.All(),
		Action:    findAction,
	}
}

func findAction(c *cli.Context) error {
	if stray := flags.StrayFlag(c); stray != "" {
		return cli.Exit(fmt.Sprintf("Error: flag %s must come before the package name", stray), 1)
	}
	if c.NArg() != 1 {
		return cli.Exit("Error: find requires exactly one package name", 1)
	}
	name := c.Args().First()

	opts, err := flags.Resolve(c)
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error: %v", err), 1)
	}
	opts.Slop = nil

	p, err := opts.FindPackage(name)
	var similar *cargo.SimilarPackageError
	switch {
	case errors.As(err, &similar):
		return cli.Exit(fmt.Sprintf("Error: package %s not found, did you mean %s?", similar.Name, similar.Similar), 1)
	case err != nil:
		return cli.Exit(fmt.Sprintf("Error: %v", err), 1)
	case p == nil:
		return cli.Exit(fmt.Sprintf("Error: package %s not found", name), 1)
	}

	output.Package(c.App.Writer, p)
	return nil
}
