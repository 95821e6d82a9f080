package self

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/creativeprojects/go-selfupdate"
	"github.com/urfave/cli/v2"

	"github.com/nightconcept/cargo-extra-go/internal/ctxlog"
)

// DefaultRepository is the GitHub repository releases are fetched from.
const DefaultRepository = "nightconcept/cargo-extra-go"

// NewSelfCommand returns the `self` command and its `update` subcommand.
func NewSelfCommand() *cli.Command {
	return &cli.Command{
		Name:  "self",
		Usage: "Manage the cargo-extra binary itself",
		Subcommands: []*cli.Command{
			{
				Name:  "update",
				Usage: "Update cargo-extra to the latest release",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "yes",
						Aliases: []string{"y"},
						Usage:   "Automatically confirm the update",
					},
					&cli.BoolFlag{
						Name:  "check",
						Usage: "Check for available updates without installing",
					},
					&cli.StringFlag{
						Name:  "source",
						Usage: "GitHub repository to update from, as 'owner/repo'",
						Value: DefaultRepository,
					},
				},
				Action: updateAction,
			},
		},
	}
}

// parseVersion accepts vX.Y.Z as well as X.Y.Z.
func parseVersion(version string) (*semver.Version, error) {
	v, err := semver.NewVersion(strings.TrimPrefix(version, "v"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse version %q: %w", version, err)
	}
	return v, nil
}

// repositorySlug validates an 'owner/repo' string.
func repositorySlug(source string) (string, error) {
	owner, repo, ok := strings.Cut(source, "/")
	if !ok || owner == "" || repo == "" || strings.Contains(repo, "/") {
		return "", fmt.Errorf("invalid source %q, expected 'owner/repo'", source)
	}
	return source, nil
}

func updateAction(c *cli.Context) error {
	log := ctxlog.FromContext(c.Context)
	w := c.App.Writer

	current, err := parseVersion(c.App.Version)
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error: %v", err), 1)
	}
	slug, err := repositorySlug(c.String("source"))
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error: %v", err), 1)
	}
	log.Debug("checking for updates", "current", current.String(), "repository", slug)

	source, err := selfupdate.NewGitHubSource(selfupdate.GitHubConfig{})
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error: failed to create GitHub source: %v", err), 1)
	}
	updater, err := selfupdate.NewUpdater(selfupdate.Config{Source: source})
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error: failed to initialize updater: %v", err), 1)
	}

	latest, found, err := updater.DetectLatest(c.Context, selfupdate.ParseSlug(slug))
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error: failed to detect latest version: %v", err), 1)
	}
	if !found || !latest.GreaterThan(current.String()) {
		fmt.Fprintf(w, "Current version %s is already the latest.\n", c.App.Version)
		return nil
	}
	log.Debug("latest release", "version", latest.Version(), "url", latest.URL, "asset", latest.AssetURL)

	fmt.Fprintf(w, "New version available: %s (current: %s)\n", latest.Version(), c.App.Version)
	if c.Bool("check") {
		return nil
	}

	if !c.Bool("yes") {
		fmt.Fprint(w, "Do you want to update? (y/N): ")
		input, _ := bufio.NewReader(c.App.Reader).ReadString('\n')
		if strings.TrimSpace(strings.ToLower(input)) != "y" {
			fmt.Fprintln(w, "Update cancelled.")
			return nil
		}
	}

	execPath, err := os.Executable()
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error: could not get executable path: %v", err), 1)
	}
	fmt.Fprintf(w, "Updating to %s...\n", latest.Version())
	if err := updater.UpdateTo(c.Context, latest, execPath); err != nil {
		return cli.Exit(fmt.Sprintf("Error: failed to update: %v", err), 1)
	}

	fmt.Fprintf(w, "Successfully updated to version %s.\n", latest.Version())
	return nil
}
