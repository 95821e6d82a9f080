package args

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/urfave/cli/v2"
	"go.yaml.in/yaml/v3"

	"github.com/nightconcept/cargo-extra-go/internal/cli/flags"
	"github.com/nightconcept/cargo-extra-go/internal/core/cargo"
	"github.com/nightconcept/cargo-extra-go/internal/core/config"
	"github.com/nightconcept/cargo-extra-go/internal/ctxlog"
)

// dump is what `args` prints: the resolved options and the argument vector
// they serialize to.
type dump struct {
	Args    []string       `toml:"args" yaml:"args"`
	Options *cargo.Options `toml:"options" yaml:"options"`
}

// NewArgsCommand returns the `args` command.
func NewArgsCommand() *cli.Command {
	return &cli.Command{
		Name:      "args",
		Usage:     "Prints the parsed cargo options and the arguments they produce",
		ArgsUsage: "[-- <extra cargo arguments>]",
		Flags: append(flags.All(),
			&cli.StringFlag{
				Name:  "format",
				Usage: "Output format: toml or yaml",
				Value: "toml",
			},
			&cli.BoolFlag{
				Name:  "save",
				Usage: "Also write the resolved options to cargo-extra.toml in the --config directory",
			},
		),
		Action: argsAction,
	}
}

func argsAction(c *cli.Context) error {
	opts, err := flags.Resolve(c)
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error: %v", err), 1)
	}

	d := dump{Args: opts.ToArgs(), Options: opts}
	if err := encode(c.App.Writer, c.String("format"), d); err != nil {
		return cli.Exit(fmt.Sprintf("Error: %v", err), 1)
	}

	if c.Bool("save") {
		dir := flags.ConfigDir(c)
		if err := config.Write(dir, opts); err != nil {
			return cli.Exit(fmt.Sprintf("Error: %v", err), 1)
		}
		ctxlog.FromContext(c.Context).Info("saved defaults", "path", filepath.Join(dir, config.FileName))
	}
	return nil
}

func encode(w io.Writer, format string, d dump) error {
	switch format {
	case "toml":
		if err := toml.NewEncoder(w).Encode(d); err != nil {
			return fmt.Errorf("failed to encode options as toml: %w", err)
		}
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(d); err != nil {
			return fmt.Errorf("failed to encode options as yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("failed to encode options as yaml: %w", err)
		}
	default:
		return fmt.Errorf("unknown format %q, expected toml or yaml", format)
	}
	return nil
}
