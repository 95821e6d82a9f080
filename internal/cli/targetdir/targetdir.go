package targetdir

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/nightconcept/cargo-extra-go/internal/cli/flags"
)

// NewTargetDirCommand returns the `target-dir` command.
func NewTargetDirCommand() *cli.Command {
	return &cli.Command{
		Name:   "target-dir",
		Usage:  "Prints the directory cargo writes build artifacts to",
		Flags:  flags.All(),
		Action: targetDirAction,
	}
}

func targetDirAction(c *cli.Context) error {
	opts, err := flags.Resolve(c)
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error: %v", err), 1)
	}
	dir, err := opts.TargetDir()
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error: %v", err), 1)
	}
	fmt.Fprintln(c.App.Writer, dir)
	return nil
}
