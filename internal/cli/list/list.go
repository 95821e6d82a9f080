package list

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/nightconcept/cargo-extra-go/internal/cli/flags"
	"github.com/nightconcept/cargo-extra-go/internal/cli/output"
	"github.com/nightconcept/cargo-extra-go/internal/core/metadata"
)

// NewListCommand returns the `list` command.
func NewListCommand() *cli.Command {
	return &cli.Command{
		Name:    "list",
		Aliases: []string{"ls"},
		Usage:   "Displays the packages selected by the package flags",
		Flags: append(flags.All(), &cli.BoolFlag{
			Name:  "every",
			Usage: "List every package in the dependency graph",
		}),
		Action: listAction,
	}
}

func listAction(c *cli.Context) error {
	opts, err := flags.Resolve(c)
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error: %v", err), 1)
	}

	meta, err := opts.Metadata()
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error: %v", err), 1)
	}

	var pkgs []*metadata.Package
	if c.Bool("every") {
		pkgs, err = opts.Packages()
	} else {
		pkgs, err = opts.CurrentPackages()
	}
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error: %v", err), 1)
	}

	w := c.App.Writer
	output.Root(w, meta.WorkspaceRoot)
	output.Packages(w, "packages", pkgs, "No packages found.")
	return nil
}
