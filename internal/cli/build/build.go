package build

import (
	"errors"
	"fmt"
	"os/exec"
	"slices"

	"github.com/urfave/cli/v2"

	"github.com/nightconcept/cargo-extra-go/internal/cli/flags"
	"github.com/nightconcept/cargo-extra-go/internal/core/cargo"
	"github.com/nightconcept/cargo-extra-go/internal/ctxlog"
)

// NewBuildCommand returns the `build` command.
func NewBuildCommand() *cli.Command {
	return &cli.Command{
		Name:      "build",
		Usage:     "Runs cargo build with the given options",
		ArgsUsage: "[-- <extra cargo arguments>]",
		Flags: append(flags.All(), &cli.BoolFlag{
			Name:  "print-artifacts",
			Usage: "Print the wasm binary path of every cdylib target after building",
		}),
		Action: buildAction,
	}
}

func buildAction(c *cli.Context) error {
	opts, err := flags.Resolve(c)
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error: %v", err), 1)
	}

	cmd := opts.BuildCmd()
	cmd.Stdout = c.App.Writer
	cmd.Stderr = c.App.ErrWriter
	ctxlog.FromContext(c.Context).Debug("running cargo build", "command", cmd.Args)

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return cli.Exit(fmt.Sprintf("Error: cargo build exited with code %d", exitErr.ExitCode()), exitErr.ExitCode())
		}
		return cli.Exit(fmt.Sprintf("Error: failed to run cargo build: %v", err), 1)
	}

	if c.Bool("print-artifacts") {
		return printArtifacts(c, opts)
	}
	return nil
}

func printArtifacts(c *cli.Context, opts *cargo.Options) error {
	pkgs, err := opts.CurrentPackages()
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error: %v", err), 1)
	}
	for _, p := range pkgs {
		for _, target := range p.Targets {
			if !slices.Contains(target.CrateTypes, "cdylib") {
				continue
			}
			bin, err := opts.BuiltBin(target)
			if err != nil {
				return cli.Exit(fmt.Sprintf("Error: %v", err), 1)
			}
			fmt.Fprintln(c.App.Writer, bin)
		}
	}
	return nil
}
