// Package app assembles the cargo-extra command-line application.
package app

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/nightconcept/cargo-extra-go/internal/cli/args"
	"github.com/nightconcept/cargo-extra-go/internal/cli/build"
	"github.com/nightconcept/cargo-extra-go/internal/cli/deps"
	"github.com/nightconcept/cargo-extra-go/internal/cli/find"
	"github.com/nightconcept/cargo-extra-go/internal/cli/list"
	"github.com/nightconcept/cargo-extra-go/internal/cli/self"
	"github.com/nightconcept/cargo-extra-go/internal/cli/targetdir"
	"github.com/nightconcept/cargo-extra-go/internal/ctxlog"
)

// Global returns the flags shared by every command.
func Global() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:      "config",
			Usage:     "Directory holding cargo-extra.toml defaults",
			Value:     ".",
			TakesFile: true,
		},
		&cli.BoolFlag{
			Name:  "verbose",
			Usage: "Enable debug logging",
		},
		&cli.StringFlag{
			Name:  "log-format",
			Usage: "Log output format: text or json",
			Value: "text",
		},
	}
}

// Before installs the logger selected by the global flags on the context.
func Before(c *cli.Context) error {
	format := c.String("log-format")
	if format != "text" && format != "json" {
		return cli.Exit(fmt.Sprintf("Error: unknown log format %q, expected text or json", format), 1)
	}

	level := "info"
	if c.Bool("verbose") {
		level = "debug"
	}
	logger := ctxlog.New(level, format, c.App.ErrWriter)
	c.Context = ctxlog.WithLogger(c.Context, logger)
	return nil
}

// Commands returns every cargo-extra command.
func Commands() []*cli.Command {
	return []*cli.Command{
		args.NewArgsCommand(),
		list.NewListCommand(),
		find.NewFindCommand(),
		deps.NewDepsCommand(),
		build.NewBuildCommand(),
		targetdir.NewTargetDirCommand(),
		self.NewSelfCommand(),
	}
}

// New returns the application for the given version.
func New(version string) *cli.App {
	return &cli.App{
		Name:                 "cargo-extra",
		Usage:                "Inspect and build cargo workspaces with shared cargo options",
		Version:              version,
		Flags:                Global(),
		Before:               Before,
		Commands:             Commands(),
		EnableBashCompletion: true,
		Action: func(c *cli.Context) error {
			return cli.ShowAppHelp(c)
		},
	}
}
