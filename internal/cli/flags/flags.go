// Package flags declares the command-line flags for every cargo option group
// and reads them back into a cargo.Options.
package flags

import (
	"io"
	"strings"
	"unicode"

	"github.com/urfave/cli/v2"

	"github.com/nightconcept/cargo-extra-go/internal/core/build"
	"github.com/nightconcept/cargo-extra-go/internal/core/cargo"
	"github.com/nightconcept/cargo-extra-go/internal/core/config"
	"github.com/nightconcept/cargo-extra-go/internal/core/features"
	"github.com/nightconcept/cargo-extra-go/internal/core/manifest"
	"github.com/nightconcept/cargo-extra-go/internal/core/toolchain"
	"github.com/nightconcept/cargo-extra-go/internal/core/workspace"
	"github.com/nightconcept/cargo-extra-go/internal/ctxlog"
)

const (
	categoryFeatures  = "Feature Selection"
	categoryManifest  = "Manifest"
	categoryWorkspace = "Package Selection"
	categoryToolchain = "Toolchain"
	categoryBuild     = "Compilation Options"
)

// repeatable declares a list flag and its one-letter form as two flags
// writing into one list, so `-p a --package b` keeps both values in command
// line order. urfave/cli rejects mixing the forms of an aliased flag.
func repeatable(name, short, usage, category string) []cli.Flag {
	dest := cli.NewStringSlice()
	return []cli.Flag{
		&cli.StringSliceFlag{
			Name:        name,
			Usage:       usage + " (short: -" + short + ")",
			Category:    category,
			Destination: dest,
		},
		&cli.StringSliceFlag{
			Name:        short,
			Usage:       usage,
			Hidden:      true,
			Category:    category,
			Destination: dest,
		},
	}
}

// FeatureFlags returns the feature selection flags.
func FeatureFlags() []cli.Flag {
	return append([]cli.Flag{
		&cli.BoolFlag{
			Name:     "all-features",
			Usage:    "Activate all available features",
			Category: categoryFeatures,
		},
		&cli.BoolFlag{
			Name:     "no-default-features",
			Usage:    "Do not activate the 'default' feature",
			Category: categoryFeatures,
		},
	}, repeatable("features", "F", "Space or comma separated list of features to activate", categoryFeatures)...)
}

// ManifestFlags returns the manifest path flag.
func ManifestFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:      "manifest-path",
			Usage:     "Path to Cargo.toml",
			TakesFile: true,
			Category:  categoryManifest,
		},
	}
}

// WorkspaceFlags returns the package selection flags.
func WorkspaceFlags() []cli.Flag {
	return append(repeatable("package", "p", "Package to process (see 'cargo help pkgid')", categoryWorkspace),
		&cli.BoolFlag{
			Name:     "workspace",
			Usage:    "Process all packages in the workspace",
			Category: categoryWorkspace,
		},
		&cli.BoolFlag{
			Name:     "all",
			Usage:    "Process all packages in the workspace",
			Hidden:   true,
			Category: categoryWorkspace,
		},
		&cli.StringSliceFlag{
			Name:     "exclude",
			Usage:    "Exclude packages from being processed",
			Category: categoryWorkspace,
		},
	)
}

// ToolchainFlags returns the toolchain selection flag.
func ToolchainFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "channel",
			Usage:       "Toolchain channel to build with",
			DefaultText: toolchain.DefaultChannel,
			Category:    categoryToolchain,
		},
	}
}

// BuildFlags returns the compilation flags.
func BuildFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:     "optimize",
			Usage:    "Rebuild std with size optimizations (requires nightly)",
			Category: categoryBuild,
		},
		&cli.StringFlag{
			Name:     "target",
			Usage:    "Build for the target triple",
			Category: categoryBuild,
		},
		&cli.BoolFlag{
			Name:     "all-targets",
			Usage:    "Build all targets",
			Category: categoryBuild,
		},
		&cli.BoolFlag{
			Name:     "link-args",
			Usage:    "Strip the binary through linker arguments",
			Category: categoryBuild,
		},
		&cli.BoolFlag{
			Name:     "release",
			Aliases:  []string{"r"},
			Usage:    "Build artifacts in release mode, with optimizations",
			Category: categoryBuild,
		},
		&cli.StringFlag{
			Name:     "profile",
			Usage:    "Build artifacts with the specified profile",
			Category: categoryBuild,
		},
	}
}

// All returns the flags of every group.
func All() []cli.Flag {
	var all []cli.Flag
	all = append(all, FeatureFlags()...)
	all = append(all, ManifestFlags()...)
	all = append(all, WorkspaceFlags()...)
	all = append(all, ToolchainFlags()...)
	return append(all, BuildFlags()...)
}

// FromContext reads the group flags set on c. Positional arguments, including
// everything after `--`, become Slop.
func FromContext(c *cli.Context) *cargo.Options {
	opts := &cargo.Options{
		Features: features.Features{
			AllFeatures:       c.Bool("all-features"),
			NoDefaultFeatures: c.Bool("no-default-features"),
			Features:          splitFeatures(values(c, "features", "F")),
		},
		Manifest: manifest.Manifest{
			ManifestPath: c.String("manifest-path"),
		},
		Workspace: workspace.Workspace{
			Package:   values(c, "package", "p"),
			Workspace: c.Bool("workspace"),
			All:       c.Bool("all"),
			Exclude:   values(c, "exclude"),
		},
		Toolchain: toolchain.Toolchain{
			Channel: c.String("channel"),
		},
		Build: build.Options{
			Optimize:   c.Bool("optimize"),
			Target:     c.String("target"),
			AllTargets: c.Bool("all-targets"),
			LinkArgs:   c.Bool("link-args"),
			Release:    c.Bool("release"),
			Profile:    c.String("profile"),
		},
	}
	if c.Args().Present() {
		opts.Slop = c.Args().Slice()
	}
	return opts
}

// Resolve reads the group flags set on c, fills anything left unset from the
// defaults file in the directory named by the global --config flag and
// attaches the context logger.
func Resolve(c *cli.Context) (*cargo.Options, error) {
	opts := FromContext(c)
	dir := ConfigDir(c)
	if err := config.Apply(dir, opts); err != nil {
		return nil, err
	}

	logger := ctxlog.FromContext(c.Context)
	opts.SetLogger(logger)
	logger.Debug("resolved cargo options", "config", dir, "args", opts.ToArgs(), "extra_args", opts.Slop)
	return opts, nil
}

// StrayFlag returns the first positional argument after the first one that
// looks like a flag, or "". Flag parsing stops at the first positional
// argument, so such a token was never applied.
func StrayFlag(c *cli.Context) string {
	for _, a := range c.Args().Tail() {
		if a == "--" {
			return ""
		}
		if strings.HasPrefix(a, "-") {
			return a
		}
	}
	return ""
}

// ConfigDir is the directory named by the global --config flag.
func ConfigDir(c *cli.Context) string {
	if dir := c.String("config"); dir != "" {
		return dir
	}
	return "."
}

// Parse reads argv, whose first element is the program name, as a standalone
// command line made of the group flags.
func Parse(argv []string) (*cargo.Options, error) {
	if len(argv) == 0 {
		argv = []string{""}
	}

	var opts *cargo.Options
	app := &cli.App{
		Name:           "cargo-extra",
		Flags:          All(),
		HideHelp:       true,
		HideVersion:    true,
		Writer:         io.Discard,
		ErrWriter:      io.Discard,
		ExitErrHandler: func(*cli.Context, error) {},
		OnUsageError:   func(_ *cli.Context, err error, _ bool) error { return err },
		Action: func(c *cli.Context) error {
			opts = FromContext(c)
			return nil
		},
	}
	if err := app.Run(argv); err != nil {
		return nil, err
	}
	return opts, nil
}

// splitFeatures breaks values like "a b" or "a,b" into separate features.
func splitFeatures(in []string) []string {
	var out []string
	for _, v := range in {
		out = append(out, strings.FieldsFunc(v, func(r rune) bool {
			return r == ',' || unicode.IsSpace(r)
		})...)
	}
	return out
}

// values returns the list collected under name, or nil when neither name nor
// any of its other forms appeared. The forms share one destination, so the
// list is read through name alone.
func values(c *cli.Context, name string, forms ...string) []string {
	set := c.IsSet(name)
	for _, f := range forms {
		set = set || c.IsSet(f)
	}
	if !set {
		return nil
	}
	return c.StringSlice(name)
}
