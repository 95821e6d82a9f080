package self

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func TestParseVersion(t *testing.T) {
	t.Parallel()
	for _, in := range []string{"v0.1.0", "0.1.0"} {
		v, err := parseVersion(in)
		require.NoError(t, err, in)
		assert.Equal(t, "0.1.0", v.String())
	}

	_, err := parseVersion("dev")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `failed to parse version "dev"`)
}

func TestRepositorySlug(t *testing.T) {
	t.Parallel()
	slug, err := repositorySlug("nightconcept/cargo-extra-go")
	require.NoError(t, err)
	assert.Equal(t, DefaultRepository, slug)

	for _, bad := range []string{"", "owner", "/repo", "owner/", "a/b/c"} {
		_, err := repositorySlug(bad)
		assert.Error(t, err, bad)
	}
}

func runSelf(t *testing.T, version string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := &cli.App{
		Name:           "cargo-extra",
		Version:        version,
		Writer:         &out,
		ErrWriter:      &out,
		Commands:       []*cli.Command{NewSelfCommand()},
		ExitErrHandler: func(*cli.Context, error) {},
	}
	err := app.Run(append([]string{"cargo-extra", "self", "update"}, args...))
	return out.String(), err
}

func TestUpdate_InvalidCurrentVersion(t *testing.T) {
	t.Parallel()
	_, err := runSelf(t, "dev", "--check")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse version")
}

func TestUpdate_InvalidSource(t *testing.T) {
	t.Parallel()
	_, err := runSelf(t, "v0.1.0", "--source", "not-a-slug", "--check")
	require.Error(t, err)
	assert.Equal(t, `Error: invalid source "not-a-slug", expected 'owner/repo'`, err.Error())
}
