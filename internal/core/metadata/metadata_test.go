package metadata_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nightconcept/cargo-extra-go/internal/core/metadata"
)

func loadFixture(t *testing.T) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", "workspace.json"))
	require.NoError(t, err, "Failed to read metadata fixture")
	return data
}

func TestParse_Workspace(t *testing.T) {
	t.Parallel()
	meta, err := metadata.Parse(loadFixture(t))
	require.NoError(t, err)

	assert.Equal(t, "/work/fixtures/target", meta.TargetDirectory)
	assert.Equal(t, "/work/fixtures", meta.WorkspaceRoot)
	assert.Len(t, meta.Packages, 5)
	assert.Len(t, meta.WorkspaceMembers, 4)
	require.NotNil(t, meta.Resolve)
	assert.Nil(t, meta.Resolve.Root, "virtual workspace has no resolve root")

	triple := meta.Package("path+file:///work/fixtures/triple-dep#0.1.0")
	require.NotNil(t, triple)
	assert.Equal(t, "triple-dep", triple.Name)
	assert.Equal(t, "0.1.0", triple.VersionString())
	assert.Equal(t, "/work/fixtures/triple-dep/Cargo.toml", triple.ManifestPath)
	require.Len(t, triple.Dependencies, 3)
	assert.Equal(t, metadata.Normal, triple.Dependencies[0].Kind, "null kind decodes as normal")
	assert.Equal(t, metadata.Development, triple.Dependencies[2].Kind)
}

func TestParse_InvalidJSON(t *testing.T) {
	t.Parallel()
	_, err := metadata.Parse([]byte(`{"packages": [`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode cargo metadata")
}

func TestParse_UnsupportedFormatVersion(t *testing.T) {
	t.Parallel()
	_, err := metadata.Parse([]byte(`{"packages": [], "version": 2}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported cargo metadata format version 2")
}

func TestWorkspacePackages(t *testing.T) {
	t.Parallel()
	meta, err := metadata.Parse(loadFixture(t))
	require.NoError(t, err)

	var names []string
	for _, p := range meta.WorkspacePackages() {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"double-dep", "single-dep", "triple-dep", "zero-dep"}, names)
}

func TestTarget_WasmBinName(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "triple_dep.wasm", metadata.Target{Name: "triple-dep"}.WasmBinName())
	assert.Equal(t, "zero_dep.wasm", metadata.Target{Name: "zero_dep"}.WasmBinName())
}

func TestDependencyKind(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input string
		kind  metadata.DependencyKind
		edges string
	}{
		{"normal", metadata.Normal, "normal"},
		{"", metadata.Normal, "normal"},
		{"dev", metadata.Development, "dev"},
		{"Development", metadata.Development, "dev"},
		{"build", metadata.Build, "build"},
		{"all", metadata.Unknown, "all"},
	}
	for _, tt := range tests {
		kind, err := metadata.ParseDependencyKind(tt.input)
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.kind, kind, "input %q", tt.input)
		assert.Equal(t, tt.edges, kind.Edges(), "input %q", tt.input)
	}

	_, err := metadata.ParseDependencyKind("optional")
	assert.Error(t, err)
}

func TestCommand_Args(t *testing.T) {
	t.Parallel()
	cmd := metadata.NewCommand()
	assert.Equal(t, []string{"metadata", "--format-version", "1"}, cmd.Args())

	cmd.ManifestPath = "fixtures/Cargo.toml"
	cmd.AllFeatures = true
	cmd.NoDefaultFeatures = true
	cmd.Features = []string{"serde", "std"}
	cmd.OtherOptions = []string{"--locked"}
	assert.Equal(t, []string{
		"metadata", "--format-version", "1",
		"--manifest-path", "fixtures/Cargo.toml",
		"--all-features",
		"--no-default-features",
		"--features", "serde std",
		"--locked",
	}, cmd.Args())
}

func TestCommand_Exec(t *testing.T) {
	t.Parallel()
	fixture := loadFixture(t)

	var gotName string
	var gotArgs []string
	cmd := &metadata.Command{
		CargoPath:    "/opt/cargo/bin/cargo",
		ManifestPath: "/work/fixtures/Cargo.toml",
		Run: func(name string, args ...string) ([]byte, error) {
			gotName = name
			gotArgs = args
			return fixture, nil
		},
	}

	meta, err := cmd.Exec()
	require.NoError(t, err)
	assert.Equal(t, "/opt/cargo/bin/cargo", gotName)
	assert.Equal(t, cmd.Args(), gotArgs)
	assert.Len(t, meta.Packages, 5)
}

func TestCommand_ExecFailure(t *testing.T) {
	t.Parallel()
	boom := errors.New("could not find `Cargo.toml`")
	cmd := &metadata.Command{
		ManifestPath: "missing/Cargo.toml",
		Run: func(string, ...string) ([]byte, error) {
			return nil, boom
		},
	}

	_, err := cmd.Exec()
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "missing/Cargo.toml")
}
